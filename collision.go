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

// collisionNode holds the bucket of leaves that share a full-width hash
// but are unequal under Key.Equal (§3.3). The teacher's tree.go has no
// analogue — a verkle key never collides with another by construction —
// so this is grounded on the HAMT collision-bucket shape in
// _examples/other_examples/ad5d4e8f_lleo-hamt-functional__hamt.go.go,
// reworked to spec.md §4.2/§4.4's explicit copy/replace/retain discipline
// (the source bugs named in spec.md §9 — transposed memcpy arguments, a
// calloc sized with sizeof(void), an off-by-one append index — are
// exactly what the discipline below avoids).
//
// Ordering within members is not observable (spec.md §9); it is an
// ordinary slice, not the source's raw pointer + length.
type collisionNode struct {
	header
	hash    uint32
	members []*leafNode
}

// newCollisionNode acquires one additional share on every member it
// stores (§4.4); it never stores fewer than two members (§3.3).
func newCollisionNode(cfg *Config, h uint32, members []*leafNode) *collisionNode {
	c := &collisionNode{header: newHeader(cfg), hash: h, members: members}
	for _, m := range members {
		m.retain()
	}
	return c
}

func (c *collisionNode) retain() { c.header.retain() }

func (c *collisionNode) release() {
	if c.header.dec() {
		for _, m := range c.members {
			m.release()
		}
	}
}

func (c *collisionNode) indexOf(key Key) int {
	for i, m := range c.members {
		if m.key.Equal(key) {
			return i
		}
	}
	return -1
}

func (c *collisionNode) assoc(cfg *Config, h uint32, s uint, newLeaf *leafNode) node {
	if h != c.hash {
		// Behave as a Leaf would: separate the (borrowed) collision
		// bucket from the fresh leaf with the same two-way promotion
		// used for two plain leaves — their slot indices can still
		// coincide for one or more levels before diverging.
		return promote(cfg, c, c.hash, newLeaf, s)
	}

	if i := c.indexOf(newLeaf.key); i >= 0 {
		members := make([]*leafNode, len(c.members))
		copy(members, c.members)
		members[i] = newLeaf
		nc := newCollisionNode(cfg, h, members)
		newLeaf.release()
		return nc
	}

	members := make([]*leafNode, len(c.members)+1)
	copy(members, c.members)
	members[len(c.members)] = newLeaf
	nc := newCollisionNode(cfg, h, members)
	newLeaf.release()
	return nc
}

func (c *collisionNode) without(cfg *Config, h uint32, s uint, probeKey Key) node {
	if h != c.hash {
		return c
	}
	i := c.indexOf(probeKey)
	if i < 0 {
		return c
	}

	if len(c.members) == 2 {
		survivor := c.members[1-i]
		// survivor is borrowed from c, which remains valid for
		// whoever still holds it; mint the extra share this
		// independently-returned leaf now needs.
		survivor.retain()
		return survivor
	}

	members := make([]*leafNode, 0, len(c.members)-1)
	for j, m := range c.members {
		if j != i {
			members = append(members, m)
		}
	}
	return newCollisionNode(cfg, h, members)
}

func (c *collisionNode) get(h uint32, s uint, probeKey Key) (*leafNode, bool) {
	if h != c.hash {
		return nil, false
	}
	if i := c.indexOf(probeKey); i >= 0 {
		return c.members[i], true
	}
	return nil, false
}
