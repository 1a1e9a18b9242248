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

package paths_test

import (
	"strings"
	"testing"

	"github.com/gokim1/gokim1/paths"
	"github.com/gokim1/gokim1/test"
)

func TestPaths(t *testing.T) {
	t.Chdir(t.TempDir())

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gokim1/foo/bar/baz")

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gokim1/foo/bar")

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gokim1/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gokim1")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("tape", "kvos", "wav")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "tape_kvos_"))
	test.ExpectSuccess(t, strings.HasSuffix(fn, ".wav"))

	fn = paths.UniqueFilename("tape", " ", "")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "tape_"))
	test.ExpectFailure(t, strings.Contains(fn, "."))
}
