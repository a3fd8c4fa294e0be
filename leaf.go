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

// leafNode holds one (hash, key, value) triple. Its hash field is fixed
// at construction time and never mutates afterwards (§3.2).
type leafNode struct {
	header
	hash  uint32
	key   Key
	value interface{}
}

func newLeafNode(cfg *Config, h uint32, key Key, value interface{}) *leafNode {
	retainPayload(key)
	retainPayload(value)
	return &leafNode{header: newHeader(cfg), hash: h, key: key, value: value}
}

func (l *leafNode) retain() { l.header.retain() }

func (l *leafNode) release() {
	if l.header.dec() {
		releasePayload(l.key)
		releasePayload(l.value)
	}
}

func (l *leafNode) assoc(cfg *Config, h uint32, s uint, newLeaf *leafNode) node {
	if l.hash == h && l.key.Equal(newLeaf.key) {
		// Replacement: no allocation on the branch-path side.
		return newLeaf
	}
	if l.hash == h {
		// Same hash, different key: a collision, not a differentiable
		// pair of slots.
		c := newCollisionNode(cfg, h, []*leafNode{l, newLeaf})
		newLeaf.release()
		return c
	}
	return promote(cfg, l, l.hash, newLeaf, s)
}

func (l *leafNode) without(cfg *Config, h uint32, s uint, probeKey Key) node {
	if l.hash == h && l.key.Equal(probeKey) {
		return null
	}
	return l
}

func (l *leafNode) get(h uint32, s uint, probeKey Key) (*leafNode, bool) {
	if l.hash == h && l.key.Equal(probeKey) {
		return l, true
	}
	return nil, false
}
