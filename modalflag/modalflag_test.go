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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/prism/modalflag"
	"github.com/jetsetilly/prism/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
	test.ExpectEquality(t, md.GetArg(0), "")
}

func TestFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "-diagonal", "40", "photo.png", "other.png"})
	testFlag := md.AddBool("test", false, "test flag")
	diagonal := md.AddFloat64("diagonal", 32, "diagonal")
	display := md.AddInt("display", -1, "display")

	test.ExpectEquality(t, *testFlag, false)

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *testFlag, true)
	test.ExpectEquality(t, *diagonal, 40.0)
	test.ExpectEquality(t, *display, -1)

	test.ExpectSuccess(t, md.Visited("diagonal"))
	test.ExpectFailure(t, md.Visited("display"))

	test.DemandEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "photo.png")
	test.ExpectEquality(t, md.GetArg(1), "other.png")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-unknown"})

	p, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, p, modalflag.ParseError)
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "compose", "-width", "800", "photo.png"})
	log := md.AddBool("log", false, "echo log")
	md.AddSubModes("PLAY", "COMPOSE")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *log, true)
	test.ExpectEquality(t, md.Mode(), "COMPOSE")

	md.NewMode()
	width := md.AddInt("width", 1920, "width")
	p, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *width, 800)
	test.ExpectEquality(t, md.GetArg(0), "photo.png")
	test.ExpectEquality(t, md.Path(), "COMPOSE")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"photo.png"})
	md.AddSubModes("play", "compose")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "PLAY")

	// the argument was not a mode and so is still available
	md.NewMode()
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.GetArg(0), "photo.png")
	test.ExpectEquality(t, md.String(), "PLAY")
}

func TestNoHelpAvailable(t *testing.T) {
	var b strings.Builder

	md := modalflag.Modes{Output: &b}
	md.NewArgs([]string{"-help"})

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, b.String(), "usage\n  no flags or modes\n")
}

func TestHelpFlags(t *testing.T) {
	var b strings.Builder

	md := modalflag.Modes{Output: &b}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "usage\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n"
	test.ExpectEquality(t, b.String(), expectedHelp)
}

func TestHelpFlagsAndModes(t *testing.T) {
	var b strings.Builder

	md := modalflag.Modes{Output: &b}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")
	md.AdditionalHelp("more help")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "usage\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n" +
		"\n" +
		"  modes: A, B, C (default A)\n" +
		"\n" +
		"more help\n"
	test.ExpectEquality(t, b.String(), expectedHelp)
}

func TestHelpForMode(t *testing.T) {
	var b strings.Builder

	md := modalflag.Modes{Output: &b}
	md.NewArgs([]string{"compose", "-help"})
	md.AddSubModes("PLAY", "COMPOSE")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)

	md.NewMode()
	md.AddString("o", "", "output file")
	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, strings.HasPrefix(b.String(), "usage for COMPOSE mode\n"))
	test.ExpectSuccess(t, strings.Contains(b.String(), "output file"))
}
