// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package hamt

import (
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"
)

// TestConcurrentReadersAcrossVersions is spec.md §8 property 6 under real
// goroutines: any number of readers may traverse any live version
// concurrently without synchronization, while a separate goroutine keeps
// building successor versions from it. Grounded on the teacher's use of
// golang.org/x/sync/errgroup as its concurrency-fan-out tool.
func TestConcurrentReadersAcrossVersions(t *testing.T) {
	const keys = 500
	const readers = 32

	base := Empty(DefaultConfig())
	for i := 0; i < keys; i++ {
		next := Assoc(base, stringKey(fmt.Sprintf("base-%d", i)), i)
		base.Release()
		base = next
	}
	defer base.Release()

	base.Retain() // the builder goroutine below needs its own share of base
	var g errgroup.Group

	g.Go(func() error {
		r := base
		for i := 0; i < keys; i++ {
			next := Assoc(r, stringKey(fmt.Sprintf("extra-%d", i)), i)
			r.Release()
			r = next
		}
		r.Release()
		return nil
	})

	for i := 0; i < readers; i++ {
		i := i
		g.Go(func() error {
			for j := 0; j < keys; j++ {
				want := j
				got, ok := Get(base, stringKey(fmt.Sprintf("base-%d", j)))
				if !ok {
					return fmt.Errorf("reader %d: get(base-%d) not found", i, j)
				}
				if got != want {
					return fmt.Errorf("reader %d: get(base-%d) = %v, want %d", i, j, got, want)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	// base itself must still be exactly as built: untouched by either the
	// concurrent readers or the builder goroutine's successor versions.
	for i := 0; i < keys; i++ {
		if got := mustGet(t, base, stringKey(fmt.Sprintf("base-%d", i))); got != i {
			t.Fatalf("get(base-%d) after concurrent use = %v, want %d", i, got, i)
		}
		mustAbsent(t, base, stringKey(fmt.Sprintf("extra-%d", i)))
	}
}
