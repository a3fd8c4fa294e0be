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

import "github.com/bits-and-blooms/bitset"

// dispatchNode is a B-wide branch node, indexed by the S-bit slice of the
// hash at the current shift. occupied tracks which slots are non-empty so
// the canonical-form check in without doesn't need to scan all 32
// children — the teacher's tree.go prunes by scanning n.children directly
// (see its Delete's emptyCount loop); this generalizes that scan into an
// O(1) popcount, grounded on bits-and-blooms/bitset (already an indirect
// teacher dependency via go-ipa).
type dispatchNode struct {
	header
	children [BranchFactor]node
	occupied *bitset.BitSet
}

func emptyChildren() [BranchFactor]node {
	var arr [BranchFactor]node
	for i := range arr {
		arr[i] = null
	}
	return arr
}

// newDispatchNode stamps a fresh Dispatch, acquiring one additional share
// on every non-empty slot it stores (§4.4). children and occupied are
// consumed: the caller must not reuse occupied afterwards (it is stored
// directly, not cloned, to avoid an extra allocation on every insert/
// delete — every call site below constructs a fresh bitset for this
// purpose and never touches it again).
func newDispatchNode(cfg *Config, children [BranchFactor]node, occupied *bitset.BitSet) *dispatchNode {
	d := &dispatchNode{header: newHeader(cfg), children: children, occupied: occupied}
	for i := 0; i < BranchFactor; i++ {
		if !isEmpty(children[i]) {
			children[i].retain()
		}
	}
	return d
}

func newDispatchNode1(cfg *Config, i uint32, child node) *dispatchNode {
	children := emptyChildren()
	children[i] = child
	occ := bitset.New(BranchFactor)
	occ.Set(uint(i))
	return newDispatchNode(cfg, children, occ)
}

func newDispatchNode2(cfg *Config, i1 uint32, c1 node, i2 uint32, c2 node) *dispatchNode {
	children := emptyChildren()
	children[i1] = c1
	children[i2] = c2
	occ := bitset.New(BranchFactor)
	occ.Set(uint(i1))
	occ.Set(uint(i2))
	return newDispatchNode(cfg, children, occ)
}

func (d *dispatchNode) retain() { d.header.retain() }

func (d *dispatchNode) release() {
	if d.header.dec() {
		for i := 0; i < BranchFactor; i++ {
			if !isEmpty(d.children[i]) {
				d.children[i].release()
			}
		}
	}
}

func (d *dispatchNode) assoc(cfg *Config, h uint32, s uint, newLeaf *leafNode) node {
	i := slice(h, s)
	child := d.children[i]

	if isEmpty(child) {
		children := d.children
		children[i] = newLeaf
		occ := d.occupied.Clone()
		occ.Set(uint(i))
		nd := newDispatchNode(cfg, children, occ)
		newLeaf.release()
		return nd
	}

	childPrime := child.assoc(cfg, h, s+SliceBits, newLeaf)
	if childPrime == child {
		return d
	}

	children := d.children
	children[i] = childPrime
	nd := newDispatchNode(cfg, children, d.occupied.Clone())
	childPrime.release()
	return nd
}

func (d *dispatchNode) without(cfg *Config, h uint32, s uint, probeKey Key) node {
	i := slice(h, s)
	child := d.children[i]
	if isEmpty(child) {
		return d
	}

	childPrime := child.without(cfg, h, s+SliceBits, probeKey)
	if childPrime == child {
		return d
	}

	children := d.children
	children[i] = childPrime
	occ := d.occupied.Clone()
	if isEmpty(childPrime) {
		occ.Clear(uint(i))
	}

	switch occ.Count() {
	case 0:
		return null
	case 1:
		j, _ := occ.NextSet(0)
		survivor := children[j]
		if _, isDispatch := survivor.(*dispatchNode); !isDispatch {
			if j == i {
				// d was already down to a single occupied slot
				// before this call (the case-1 collapse one level
				// down just replaced that slot's occupant in
				// place); childPrime already carries the one
				// share transferred out of the nested without,
				// so it is returned as-is, not re-retained.
				return childPrime
			}
			// slot i went empty and j is the untouched sibling,
			// still borrowed from d, which remains valid for
			// whoever still holds it; mint the extra share this
			// independent return value needs.
			survivor.retain()
			return survivor
		}
	}

	nd := newDispatchNode(cfg, children, occ)
	childPrime.release()
	return nd
}

func (d *dispatchNode) get(h uint32, s uint, probeKey Key) (*leafNode, bool) {
	i := slice(h, s)
	child := d.children[i]
	if isEmpty(child) {
		return nil, false
	}
	return child.get(h, s+SliceBits, probeKey)
}
