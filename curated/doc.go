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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function. The pattern argument
// is kept with the error and is used to differentiate errors. Packages that
// return errors the caller may want to react to export the pattern as a
// constant string. For example, from the tape package:
//
//	const UnsupportedFormat = "tape: unsupported format (%s)"
//
//	if curated.Is(err, tape.UnsupportedFormat) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf("memory: rom size (%d)", 100)
//	f := curated.Errorf("kim1: %v", e)
//
//	curated.Has(f, "memory: rom size (%d)") // true
//	curated.Is(f, "memory: rom size (%d)")  // false
//
// The Error() implementation normalises the message so that adjacent
// duplicate parts are removed. A chain is composed of parts separated by the
// sub-string ": ". This means that wrapping an error with the same package
// prefix it already has does not produce "tape: tape: ..." messages.
package curated
