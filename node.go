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

// node is the sum type of the four trie variants: *leafNode,
// *collisionNode, *dispatchNode, and the nullNode singleton. It plays the
// role the teacher's VerkleNode interface plays in tree.go, but the
// operations return a new node sharing the input's untouched children
// instead of mutating the receiver in place.
type node interface {
	// assoc returns a trie equal to the receiver with newLeaf's mapping
	// inserted or replaced. h is newLeaf's hash; s is the current shift.
	assoc(cfg *Config, h uint32, s uint, newLeaf *leafNode) node

	// without returns a trie equal to the receiver with probeKey
	// removed, or the receiver itself (same reference) if absent.
	without(cfg *Config, h uint32, s uint, probeKey Key) node

	// get returns the leaf matching probeKey, if any.
	get(h uint32, s uint, probeKey Key) (*leafNode, bool)

	retain()
	release()
}

// nullNode is the canonical empty trie (§3.5, §4.5). It is a singleton:
// every Config shares the same instance, its retain/release are no-ops,
// and it is excluded from the live-node accounting entirely, per the
// Design Notes' "process-wide immortal object" guidance.
type nullNode struct{}

var null = &nullNode{}

func (n *nullNode) assoc(cfg *Config, h uint32, s uint, newLeaf *leafNode) node {
	return newLeaf
}

func (n *nullNode) without(cfg *Config, h uint32, s uint, probeKey Key) node {
	return n
}

func (n *nullNode) get(h uint32, s uint, probeKey Key) (*leafNode, bool) {
	return nil, false
}

func (n *nullNode) retain()  {}
func (n *nullNode) release() {}

// isEmpty reports whether n is the null sentinel.
func isEmpty(n node) bool {
	_, ok := n.(*nullNode)
	return ok
}
