// This file is part of Prism.
//
// Prism is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Prism is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Prism.  If not, see <https://www.gnu.org/licenses/>.

package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/jetsetilly/prism/test"
)

func TestParse(t *testing.T) {
	inf := parse("", nil)
	test.ExpectEquality(t, inf, Info{Number: "local", Revision: "no revision information"})

	settings := []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "abc123"},
		{Key: "vcs.modified", Value: "true"},
	}
	inf = parse("", settings)
	test.ExpectEquality(t, inf, Info{Number: "unreleased", Revision: "abc123+dirty"})

	inf = parse("v0.1.0", settings[:2])
	test.ExpectEquality(t, inf, Info{Number: "v0.1.0", Revision: "abc123", Release: true})
}

func TestVersion(t *testing.T) {
	test.ExpectSuccess(t, strings.HasPrefix(Version(), ApplicationName+" "))
}
