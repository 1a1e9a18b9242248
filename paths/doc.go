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

// Package paths contains functions to prepare paths to GoKIM1 resources.
//
// The ResourcePath() function returns the path to a resource prepended with
// the appropriate config directory. For example, the following will return
// the path to the preferences file:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// For development builds the resource directory is ".gokim1" in the current
// working directory. Release builds (built with the "release" tag) use the
// user's config directory as returned by os.UserConfigDir(). On a modern
// Linux system that means:
//
//	/home/user/.config/gokim1/preferences
package paths
