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

package cpu

import (
	"fmt"

	m6502 "github.com/beevik/go6502/cpu"
)

// Bus defines the memory operations required by the CPU. Peek should return
// the same value as Read but without side effects.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
	Peek(address uint16) uint8
}

// Line identifies one of the input lines of the CPU.
type Line int

// List of valid Line values.
const (
	Reset Line = iota
	NMI
	IRQ
)

func (l Line) String() string {
	switch l {
	case Reset:
		return "RESET"
	case NMI:
		return "NMI"
	case IRQ:
		return "IRQ"
	}
	return "unknown line"
}

// Interrupt vectors.
const (
	NMIVector   = uint16(0xfffa)
	ResetVector = uint16(0xfffc)
	IRQVector   = uint16(0xfffe)
)

// the number of cycles taken to service an interrupt
const interruptCycles = 7

// CPU is the 6502 of the KIM-1.
type CPU struct {
	core *m6502.CPU
	mem  Bus

	// state of the input lines
	reset bool
	nmi   bool
	irq   bool

	// an asserting edge of NMI has been seen and is yet to be serviced
	nmiPending bool
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// program counter is not loaded until Reset() is called.
func NewCPU(mem Bus) *CPU {
	mc := &CPU{
		mem: mem,
	}
	mc.core = m6502.NewCPU(m6502.NMOS, &busAdapter{bus: mem})
	return mc
}

func (mc *CPU) String() string {
	return mc.Registers().String()
}

// Reset the CPU. The interrupt disable flag is set and the program counter is
// loaded from the reset vector. The cycle count is not changed.
func (mc *CPU) Reset() {
	mc.core.Reg.SP = 0xfd
	mc.core.Reg.InterruptDisable = true
	mc.core.Reg.Decimal = false
	mc.core.SetPC(readAddress(mc.mem, ResetVector))
	mc.nmiPending = false
}

// SetLine changes the state of one of the input lines. The asserted argument
// is the logical state of the line, regardless of the active level of the
// physical pin.
func (mc *CPU) SetLine(line Line, asserted bool) {
	switch line {
	case Reset:
		if mc.reset && !asserted {
			mc.reset = false
			mc.Reset()
			return
		}
		mc.reset = asserted
	case NMI:
		if asserted && !mc.nmi {
			mc.nmiPending = true
		}
		mc.nmi = asserted
	case IRQ:
		mc.irq = asserted
	}
}

// Line returns the state of an input line.
func (mc *CPU) Line(line Line) bool {
	switch line {
	case Reset:
		return mc.reset
	case NMI:
		return mc.nmi
	case IRQ:
		return mc.irq
	}
	return false
}

// TriggerNMI causes an NMI to be taken before the next instruction,
// regardless of the state of the NMI line.
func (mc *CPU) TriggerNMI() {
	mc.nmiPending = true
}

// Executing returns true if the next call to Step() will execute an
// instruction. It returns false if the CPU is held by the RESET line or if an
// interrupt will be serviced instead.
func (mc *CPU) Executing() bool {
	if mc.reset || mc.nmiPending {
		return false
	}
	return !(mc.irq && !mc.core.Reg.InterruptDisable)
}

// InterruptDisabled returns the state of the I flag.
func (mc *CPU) InterruptDisabled() bool {
	return mc.core.Reg.InterruptDisable
}

// Cycles returns the total number of cycles executed since the CPU was
// created.
func (mc *CPU) Cycles() uint64 {
	return mc.core.Cycles
}

// PC returns the current value of the program counter.
func (mc *CPU) PC() uint16 {
	return mc.core.Reg.PC
}

// InstructionCycles returns the base number of cycles of the instruction
// with the opcode. Page crossing and branch penalties are not included.
func (mc *CPU) InstructionCycles(opcode uint8) int {
	inst := mc.core.InstSet.Lookup(opcode)
	if inst == nil || inst.Cycles == 0 {
		return 2
	}
	return int(inst.Cycles)
}

// Step executes one instruction, or services a pending interrupt, and
// returns the number of cycles consumed.
func (mc *CPU) Step() int {
	// the CPU is held while RESET is asserted
	if mc.reset {
		mc.core.Cycles++
		return 1
	}

	if mc.nmiPending {
		mc.nmiPending = false
		mc.interrupt(NMIVector)
		return interruptCycles
	}

	if mc.irq && !mc.core.Reg.InterruptDisable {
		mc.interrupt(IRQVector)
		return interruptCycles
	}

	before := mc.core.Cycles
	mc.core.Step()
	return int(mc.core.Cycles - before)
}

func (mc *CPU) push(data uint8) {
	mc.mem.Write(0x0100|uint16(mc.core.Reg.SP), data)
	mc.core.Reg.SP--
}

func (mc *CPU) interrupt(vector uint16) {
	pc := mc.core.Reg.PC
	mc.push(uint8(pc >> 8))
	mc.push(uint8(pc))
	mc.push(mc.Registers().Status &^ StatusBreak)
	mc.core.Reg.InterruptDisable = true
	mc.core.SetPC(readAddress(mc.mem, vector))
	mc.core.Cycles += interruptCycles
}

func readAddress(mem Bus, address uint16) uint16 {
	return uint16(mem.Read(address)) | uint16(mem.Read(address+1))<<8
}

// Registers returns a copy of the CPU registers.
func (mc *CPU) Registers() Registers {
	r := mc.core.Reg
	reg := Registers{
		PC:     r.PC,
		A:      r.A,
		X:      r.X,
		Y:      r.Y,
		SP:     r.SP,
		Status: StatusUnused,
	}
	for _, f := range []struct {
		set bool
		bit uint8
	}{
		{r.Sign, StatusSign},
		{r.Overflow, StatusOverflow},
		{r.Decimal, StatusDecimal},
		{r.InterruptDisable, StatusInterrupt},
		{r.Zero, StatusZero},
		{r.Carry, StatusCarry},
	} {
		if f.set {
			reg.Status |= f.bit
		}
	}
	return reg
}

// SetRegisters loads all registers from a previous call to Registers().
func (mc *CPU) SetRegisters(reg Registers) {
	r := &mc.core.Reg
	r.A = reg.A
	r.X = reg.X
	r.Y = reg.Y
	r.SP = reg.SP
	r.Sign = reg.Status&StatusSign == StatusSign
	r.Overflow = reg.Status&StatusOverflow == StatusOverflow
	r.Decimal = reg.Status&StatusDecimal == StatusDecimal
	r.InterruptDisable = reg.Status&StatusInterrupt == StatusInterrupt
	r.Zero = reg.Status&StatusZero == StatusZero
	r.Carry = reg.Status&StatusCarry == StatusCarry
	mc.core.SetPC(reg.PC)
}

// List of bits in the status register.
const (
	StatusSign      = uint8(0x80)
	StatusOverflow  = uint8(0x40)
	StatusUnused    = uint8(0x20)
	StatusBreak     = uint8(0x10)
	StatusDecimal   = uint8(0x08)
	StatusInterrupt = uint8(0x04)
	StatusZero      = uint8(0x02)
	StatusCarry     = uint8(0x01)
)

// Registers is a copy of the CPU registers.
type Registers struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status uint8
}

func (r Registers) String() string {
	flags := []byte("nv-bdizc")
	for i := range flags {
		if r.Status&(0x80>>i) != 0 && flags[i] != '-' {
			flags[i] -= 'a' - 'A'
		}
	}
	return fmt.Sprintf("PC=%04x A=%02x X=%02x Y=%02x SP=%02x SR=%s", r.PC, r.A, r.X, r.Y, r.SP, flags)
}
