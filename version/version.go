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

// Package version reports the version of the program. The number is set at
// link time:
//
//	go build -ldflags "-X github.com/jetsetilly/prism/version.number=v0.1.0"
//
// Without a number the version is taken from the build information.
package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "Prism"

// set with the -X linker flag
var number string

// Info about the build.
type Info struct {
	// the version number. "unreleased" if there is vcs information but no
	// number, "local" if there is neither
	Number string

	// the vcs revision, suffixed with "+dirty" if the source had been
	// modified
	Revision string

	// true if the build has a version number
	Release bool
}

var info = sync.OnceValue(func() Info {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return parse(number, nil)
	}
	return parse(number, bi.Settings)
})

func parse(num string, settings []debug.BuildSetting) Info {
	var vcs bool
	var modified bool
	var inf Info

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			inf.Revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if inf.Revision == "" {
		inf.Revision = "no revision information"
	} else if modified {
		inf.Revision = fmt.Sprintf("%s+dirty", inf.Revision)
	}

	switch {
	case num != "":
		inf.Number = num
		inf.Release = true
	case vcs:
		inf.Number = "unreleased"
	default:
		inf.Number = "local"
	}

	return inf
}

// Get returns information about the build.
func Get() Info {
	return info()
}

// Version returns a one line description of the version.
func Version() string {
	inf := info()
	if inf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Number)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Number, inf.Revision)
}
