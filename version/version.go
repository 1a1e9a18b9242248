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

// Package version reports the version of the program. The version number is
// set by the linker for release builds. Other builds report the VCS revision
// recorded by the Go toolchain, if there is one.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "GoKIM1"

// set with -ldflags "-X github.com/gokim1/gokim1/version.number=v0.1.0"
var number string

// Info describes the build of the running program.
type Info struct {
	// the release number, "unreleased" for a build from a VCS checkout or
	// "local" when there is no version information at all
	Version string

	// VCS revision. suffixed with "+dirty" if the checkout had uncommitted
	// changes
	Revision string

	Release bool
}

func (inf Info) String() string {
	if inf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Version, inf.Revision)
}

// Version returns information about the build.
func Version() Info {
	inf := Info{
		Version:  number,
		Revision: "no revision information",
		Release:  number != "",
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		if !inf.Release {
			inf.Version = "local"
		}
		return inf
	}

	var vcs, modified bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			inf.Revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if modified {
		inf.Revision += "+dirty"
	}

	if !inf.Release {
		if vcs {
			inf.Version = "unreleased"
		} else {
			inf.Version = "local"
		}
	}

	return inf
}
