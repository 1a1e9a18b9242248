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

package video

import "strings"

// Mode selects the decoding of the video window.
type Mode int

// List of valid Mode values.
const (
	Simplified Mode = iota
	CycleAccurate
)

func (m Mode) String() string {
	switch m {
	case Simplified:
		return "SIMPLIFIED"
	case CycleAccurate:
		return "CYCLEACCURATE"
	}
	return "unknown"
}

// ParseMode returns the Mode named by the string. Unrecognised strings return
// the Simplified mode.
func ParseMode(s string) Mode {
	if strings.ToUpper(s) == CycleAccurate.String() {
		return CycleAccurate
	}
	return Simplified
}
