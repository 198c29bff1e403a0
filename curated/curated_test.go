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

package curated_test

import (
	"errors"
	"os"
	"testing"

	"github.com/jetsetilly/prism/curated"
	"github.com/jetsetilly/prism/test"
)

const testPattern = "test: %d"
const wrapPattern = "wrap: %v"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("video: %v", curated.Errorf("video: cannot open %s", "foo.mp4"))
	test.ExpectEquality(t, e.Error(), "video: cannot open foo.mp4")

	// duplicates further down the chain are also removed
	e = curated.Errorf("session: %v", e)
	e = curated.Errorf("session: %v", e)
	test.ExpectEquality(t, e.Error(), "session: video: cannot open foo.mp4")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))
	test.ExpectSuccess(t, curated.IsAny(e))

	f := curated.Errorf(wrapPattern, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Is(f, wrapPattern))

	test.ExpectFailure(t, curated.Is(nil, testPattern))
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	f := curated.Errorf(wrapPattern, e)
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))
	test.ExpectFailure(t, curated.Has(f, "not a pattern"))
	test.ExpectFailure(t, curated.Has(errors.New("plain"), testPattern))
}

func TestUnwrap(t *testing.T) {
	_, err := os.Open("/this/file/does/not/exist")
	test.DemandFailure(t, err)

	e := curated.Errorf("media: %v", err)
	test.ExpectSuccess(t, errors.Is(e, os.ErrNotExist))

	var pe *os.PathError
	test.ExpectSuccess(t, errors.As(e, &pe))
}
