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

// Package hamt implements a persistent, structurally-shared
// hash-array-mapped trie. Every mutating operation returns a new logical
// Root that shares the unmodified subtrees of the version it was built
// from; the old Root remains valid and observable.
//
// The package has no runtime-error surface under well-formed inputs.
// Allocation failure — the one error kind spec'd for the original C
// source — has no recoverable counterpart in Go (make/new panic the
// runtime rather than returning an error), so Assoc/Without do not return
// one; a non-pure Hash or inconsistent Equal on a host Key is a contract
// violation this package does not detect (it may fail to find entries it
// contains, or store duplicates).
package hamt

// Root is an opaque handle to one version of the trie. The zero Root is
// not valid; construct one with Empty.
type Root struct {
	cfg  *Config
	node node
}

// Empty returns the canonical empty trie under cfg. Passing a nil cfg
// selects DefaultConfig (atomic reference counting).
func Empty(cfg *Config) Root {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return Root{cfg: cfg, node: null}
}

// Assoc returns a Root equal to r with key mapped to value, inserted or
// replaced. r is left valid and unaffected.
func Assoc(r Root, key Key, value interface{}) Root {
	h := key.Hash()
	leaf := newLeafNode(r.cfg, h, key, value)
	next := r.node.assoc(r.cfg, h, 0, leaf)
	return Root{cfg: r.cfg, node: next}
}

// Without returns a Root equal to r with key removed, if present. If key
// is absent, the returned Root shares r's node reference exactly (no
// allocation, per spec.md §8 property 4).
func Without(r Root, key Key) Root {
	h := key.Hash()
	next := r.node.without(r.cfg, h, 0, key)
	return Root{cfg: r.cfg, node: next}
}

// Get returns the value mapped to key, if any.
func Get(r Root, key Key) (interface{}, bool) {
	h := key.Hash()
	leaf, ok := r.node.get(h, 0, key)
	if !ok {
		return nil, false
	}
	return leaf.value, true
}

// Retain acquires an additional share of r's node, keeping it alive for
// an additional logical owner.
func (r Root) Retain() {
	r.node.retain()
}

// Release drops a share of r's node, freeing it (and recursively its
// unshared children) once the last share is gone.
func (r Root) Release() {
	r.node.release()
}

// IsEmpty reports whether r is the canonical empty trie.
func (r Root) IsEmpty() bool {
	return isEmpty(r.node)
}
