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

package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GoroutineID returns the ID of the calling goroutine, as shown in a stack
// trace. It should only be used to enforce thread affinity and never as a
// means of program logic.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Thread records the goroutine it was created on.
type Thread uint64

// CurrentThread returns a Thread value for the calling goroutine.
func CurrentThread() Thread {
	return Thread(GoroutineID())
}

// IsCurrent returns true if the calling goroutine is the recorded goroutine.
func (t Thread) IsCurrent() bool {
	return uint64(t) == GoroutineID()
}

// Check panics if the calling goroutine is not the recorded goroutine.
func (t Thread) Check(function string) {
	if !t.IsCurrent() {
		panic(fmt.Sprintf("%s: called from goroutine %d but must be called from goroutine %d", function, GoroutineID(), t))
	}
}
