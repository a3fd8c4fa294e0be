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

import "sync"

const (
	// HashBits is the width W of a full hash, in bits.
	HashBits = 32

	// SliceBits is the slice width S: the number of hash bits consumed
	// per trie level.
	SliceBits = 5

	// BranchFactor is B = 2^S, the fan-out of a Dispatch node.
	BranchFactor = 1 << SliceBits

	// MaxDepth is D = ceil(W/S), the deepest level a Dispatch node may
	// occupy before the algorithm must have already reached a Leaf or
	// Collision.
	MaxDepth = (HashBits + SliceBits - 1) / SliceBits

	branchMask = BranchFactor - 1
)

// slice extracts the B-wide slot index of hash h at bit-offset s.
func slice(h uint32, s uint) uint32 {
	return (h >> s) & branchMask
}

// Config carries per-trie policy that is not part of the algorithm
// itself: right now that is exactly one knob, which Counter
// implementation new node headers are stamped with (see refcount.go and
// spec §5's "configuration decision at the node-header level, not an
// algorithmic one").
type Config struct {
	newCounter func() counter
}

var (
	defaultConfig *Config
	defaultOnce   sync.Once
)

// DefaultConfig returns the package-wide default configuration: atomic
// reference counting, safe to share a Root across goroutines.
func DefaultConfig() *Config {
	defaultOnce.Do(func() {
		defaultConfig = &Config{newCounter: newAtomicCounter}
	})
	return defaultConfig
}

// NewConfig builds a Config that stamps every node it constructs with a
// plain, non-atomic counter. Only safe when a Root built under this
// configuration is never shared across goroutines (including via
// Retain/Release racing with an assoc/without/get on another goroutine).
func NewConfig() *Config {
	return &Config{newCounter: newPlainCounter}
}

func (c *Config) counter() counter {
	if c == nil {
		return newAtomicCounter()
	}
	return c.newCounter()
}
