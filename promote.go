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

// promote builds the smallest Dispatch chain that separates an existing
// node (a Leaf or a Collision, borrowed — it is still part of whatever
// older version referenced it, so its share is never released here) from
// a freshly-constructed leaf being inserted, per §4.3. The caller
// guarantees existingHash != newLeaf.hash; this function does not handle
// the equal-hash case (that is the Collision path, see leaf.go/collision.go).
//
// Generalizes the teacher's tree.go InternalNode.Insert branch that
// allocates "a new branch node to differentiate between two keys" — the
// teacher only ever needed one level of differentiation for its 8/10-bit
// slice width; this loop handles arbitrarily many shared prefix bits.
func promote(cfg *Config, existing node, existingHash uint32, newLeaf *leafNode, s uint) node {
	i1 := slice(existingHash, s)
	i2 := slice(newLeaf.hash, s)

	if i1 != i2 {
		d := newDispatchNode2(cfg, i1, existing, i2, newLeaf)
		// newLeaf was fresh (owned solely by this call) until the
		// constructor above retained it; drop the transient share so
		// the new Dispatch is its sole owner. existing is borrowed —
		// its share belongs to whatever still references the old
		// version, and is left untouched.
		newLeaf.release()
		return d
	}

	inner := promote(cfg, existing, existingHash, newLeaf, s+SliceBits)
	d := newDispatchNode1(cfg, i1, inner)
	inner.release()
	return d
}
