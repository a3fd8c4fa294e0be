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

import "github.com/cespare/xxhash/v2"

// stringKey is the example Key a real host binding would hand the trie
// for string-keyed maps — exactly the §3.1 contract, hashed with xxhash
// (present in the retrieved pack's geth-family go.mod files as an
// indirect metrics dependency).
type stringKey string

func (s stringKey) Hash() uint32 {
	return uint32(xxhash.Sum64String(string(s)))
}

func (s stringKey) Equal(other Key) bool {
	o, ok := other.(stringKey)
	return ok && o == s
}

// toyKey lets a test pin an exact 32-bit hash independent of the key's
// identity, to exercise specific slot arrangements deterministically
// (spec.md §8 scenarios S3–S6, which are all specified in terms of exact
// hash bit patterns).
type toyKey struct {
	name string
	hash uint32
}

func (k toyKey) Hash() uint32 { return k.hash }

func (k toyKey) Equal(other Key) bool {
	o, ok := other.(toyKey)
	return ok && o.name == k.name
}

// refCountingPayload is a Refable test double used to verify the §4.4/§6
// retain/release hooks actually fire on Leaf construction/destruction.
type refCountingPayload struct {
	shares *int
}

func (p refCountingPayload) Retain()  { *p.shares++ }
func (p refCountingPayload) Release() { *p.shares-- }
