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
)

// benchTrie builds a trie of n keys and returns it along with the keys,
// so Get/Without benchmarks measure the operation alone.
func benchTrie(n int) (Root, []stringKey) {
	keys := make([]stringKey, n)
	r := Empty(nil)
	for i := 0; i < n; i++ {
		keys[i] = stringKey(fmt.Sprintf("bench-key-%d", i))
		next := Assoc(r, keys[i], i)
		r.Release()
		r = next
	}
	return r, keys
}

func BenchmarkAssoc(b *testing.B) {
	for _, n := range []int{10, 1_000, 100_000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			r, _ := benchTrie(n)
			defer r.Release()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				next := Assoc(r, stringKey(fmt.Sprintf("probe-%d", i)), i)
				next.Release()
			}
		})
	}
}

func BenchmarkGet(b *testing.B) {
	for _, n := range []int{10, 1_000, 100_000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			r, keys := benchTrie(n)
			defer r.Release()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Get(r, keys[i%len(keys)])
			}
		})
	}
}

func BenchmarkWithout(b *testing.B) {
	for _, n := range []int{10, 1_000, 100_000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			r, keys := benchTrie(n)
			defer r.Release()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				next := Without(r, keys[i%len(keys)])
				next.Release()
			}
		})
	}
}
