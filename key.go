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

// Key is the contract a host binding must satisfy for anything stored as
// a trie key. Hash must be pure and total; Equal must be an equivalence
// relation consistent with Hash (equal keys hash equal). The trie never
// calls Hash on a value already carrying one — the caller computes it
// once at the Root API boundary and threads it through the recursion.
type Key interface {
	Hash() uint32
	Equal(other Key) bool
}

// Refable is an optional capability a Key or stored value may implement.
// A Leaf retains both its key and value on construction and releases both
// on destruction, but only for payloads that opt in; a payload that does
// not implement Refable is left untouched by the trie's lifetime
// management.
type Refable interface {
	Retain()
	Release()
}

func retainPayload(v interface{}) {
	if r, ok := v.(Refable); ok {
		r.Retain()
	}
}

func releasePayload(v interface{}) {
	if r, ok := v.(Refable); ok {
		r.Release()
	}
}
