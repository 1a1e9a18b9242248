// This file is part of GoKIM1.
//
// GoKIM1 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GoKIM1 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GoKIM1.  If not, see <https://www.gnu.org/licenses/>.

package cpu_test

import (
	"testing"

	"github.com/gokim1/gokim1/hardware/cpu"
	"github.com/gokim1/gokim1/test"
)

type mockMem struct {
	internal [0x10000]uint8
}

func newMockMem() *mockMem {
	mem := &mockMem{}

	// vectors
	mem.internal[cpu.NMIVector] = 0x00
	mem.internal[cpu.NMIVector+1] = 0x03
	mem.internal[cpu.ResetVector] = 0x00
	mem.internal[cpu.ResetVector+1] = 0x02
	mem.internal[cpu.IRQVector] = 0x00
	mem.internal[cpu.IRQVector+1] = 0x04

	return mem
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Peek(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

func TestReset(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	r := mc.Registers()
	test.ExpectEquality(t, r.PC, 0x0200)
	test.ExpectEquality(t, r.SP, 0xfd)
	test.ExpectEquality(t, r.Status&cpu.StatusInterrupt, cpu.StatusInterrupt)
	test.ExpectEquality(t, r.String(), "PC=0200 A=00 X=00 Y=00 SP=fd SR=nv-bdIzc")
}

func TestInstructions(t *testing.T) {
	mem := newMockMem()

	// LDA #$42; STA $10
	mem.putInstructions(0x0200, 0xa9, 0x42, 0x85, 0x10)

	mc := cpu.NewCPU(mem)
	mc.Reset()

	test.ExpectEquality(t, mc.Step(), 2)
	test.ExpectEquality(t, mc.Registers().A, 0x42)
	test.ExpectEquality(t, mc.Step(), 3)
	test.ExpectEquality(t, mem.internal[0x10], 0x42)
	test.ExpectEquality(t, mc.Cycles(), 5)

	test.ExpectEquality(t, mc.InstructionCycles(0xa9), 2)
	test.ExpectEquality(t, mc.InstructionCycles(0x85), 3)
}

func TestResetLine(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x0200, 0xea, 0xea, 0xea)

	mc := cpu.NewCPU(mem)
	mc.Reset()
	mc.Step()
	test.ExpectEquality(t, mc.PC(), 0x0201)

	// CPU is held while RESET is asserted
	mc.SetLine(cpu.Reset, true)
	test.ExpectSuccess(t, mc.Line(cpu.Reset))
	for range 10 {
		test.ExpectEquality(t, mc.Step(), 1)
	}
	test.ExpectEquality(t, mc.PC(), 0x0201)

	// releasing RESET loads the reset vector
	mc.SetLine(cpu.Reset, false)
	test.ExpectEquality(t, mc.PC(), 0x0200)
	test.ExpectEquality(t, mc.Step(), 2)
	test.ExpectEquality(t, mc.PC(), 0x0201)
}

func TestNMI(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x0200, 0xea, 0xea)
	mem.putInstructions(0x0300, 0xea, 0xea)

	mc := cpu.NewCPU(mem)
	mc.Reset()
	mc.Step()

	mc.SetLine(cpu.NMI, true)
	test.ExpectEquality(t, mc.Step(), 7)
	test.ExpectEquality(t, mc.PC(), 0x0300)

	// return address and status on the stack
	test.ExpectEquality(t, mem.internal[0x01fd], 0x02)
	test.ExpectEquality(t, mem.internal[0x01fc], 0x01)
	test.ExpectEquality(t, mem.internal[0x01fb]&cpu.StatusBreak, 0)
	test.ExpectEquality(t, mem.internal[0x01fb]&cpu.StatusUnused, cpu.StatusUnused)
	test.ExpectEquality(t, mc.Registers().SP, 0xfa)

	// NMI is edge triggered. holding the line does not cause another
	// interrupt
	mc.SetLine(cpu.NMI, true)
	test.ExpectEquality(t, mc.Step(), 2)
	test.ExpectEquality(t, mc.PC(), 0x0301)

	// a new edge does
	mc.SetLine(cpu.NMI, false)
	mc.SetLine(cpu.NMI, true)
	test.ExpectFailure(t, mc.Executing())
	test.ExpectEquality(t, mc.Step(), 7)
	test.ExpectEquality(t, mc.PC(), 0x0300)
	test.ExpectSuccess(t, mc.Executing())

	// triggered NMI ignores the state of the line
	mc.TriggerNMI()
	test.ExpectEquality(t, mc.Step(), 7)
	test.ExpectEquality(t, mc.PC(), 0x0300)
}

func TestIRQ(t *testing.T) {
	mem := newMockMem()

	// NOP; CLI; NOP
	mem.putInstructions(0x0200, 0xea, 0x58, 0xea)

	mc := cpu.NewCPU(mem)
	mc.Reset()

	// interrupt disable flag is set after reset
	mc.SetLine(cpu.IRQ, true)
	test.ExpectEquality(t, mc.Step(), 2)
	test.ExpectEquality(t, mc.PC(), 0x0201)
	test.ExpectSuccess(t, mc.InterruptDisabled())

	test.ExpectEquality(t, mc.Step(), 2)
	test.ExpectFailure(t, mc.InterruptDisabled())

	test.ExpectEquality(t, mc.Step(), 7)
	test.ExpectEquality(t, mc.PC(), 0x0400)
	test.ExpectSuccess(t, mc.InterruptDisabled())
}

func TestSetRegisters(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	r := cpu.Registers{
		PC:     0x1c4f,
		A:      0x01,
		X:      0x02,
		Y:      0x03,
		SP:     0xf0,
		Status: cpu.StatusUnused | cpu.StatusCarry | cpu.StatusSign,
	}
	mc.SetRegisters(r)
	test.ExpectEquality(t, mc.Registers(), r)
}
