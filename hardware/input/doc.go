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

// Package input coordinates the input into the KIM-1 from front ends.
//
// Front ends run in their own goroutine and must not touch the emulation
// directly. Instead they push events onto a queue with PushEvent(). The
// queue is drained by the emulation's run loop between quanta, with
// HandlePushed().
//
// Events that are generated from the emulation goroutine itself can be
// handled immediately with HandleEvent().
package input
