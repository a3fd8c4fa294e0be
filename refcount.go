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

import "sync/atomic"

// counter is the node-header reference count. Whether it is atomic or
// plain is a Config-level choice (see config.go), not an algorithmic one.
type counter interface {
	retain()
	// release decrements the count and reports whether it reached zero.
	release() bool
}

type atomicCounter struct{ v int32 }

func newAtomicCounter() counter { return &atomicCounter{v: 1} }

func (c *atomicCounter) retain() { atomic.AddInt32(&c.v, 1) }

func (c *atomicCounter) release() bool {
	return atomic.AddInt32(&c.v, -1) == 0
}

type plainCounter struct{ v int }

func newPlainCounter() counter { return &plainCounter{v: 1} }

func (c *plainCounter) retain() { c.v++ }

func (c *plainCounter) release() bool {
	c.v--
	return c.v == 0
}

// header is embedded in every non-singleton node variant. A fresh header
// starts at one share, representing the share the constructor's caller
// holds (§4.4): the constructor acquires its own share on top of that for
// every child it stores, it does not consume the caller's share.
type header struct {
	cnt counter
}

func newHeader(cfg *Config) header {
	atomic.AddInt64(&liveNodes, 1)
	return header{cnt: cfg.counter()}
}

func (h *header) retain() { h.cnt.retain() }

// dec reports whether this was the last outstanding share.
func (h *header) dec() bool {
	zero := h.cnt.release()
	if zero {
		atomic.AddInt64(&liveNodes, -1)
	}
	return zero
}

// liveNodes counts constructed-but-not-yet-destroyed Leaf/Collision/
// Dispatch nodes across the whole process (the null sentinel is excluded
// from counting, per the Design Notes). Exposed via LiveNodes so hosts —
// and this package's own tests (spec.md §8 property 8) — can assert that
// a sequence of constructions and releases returns to its baseline.
var liveNodes int64

// LiveNodes reports the number of trie nodes currently constructed and
// not yet destroyed.
func LiveNodes() int64 {
	return atomic.LoadInt64(&liveNodes)
}
