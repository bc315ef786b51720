// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"golang.org/x/image/math/fixed"
)

// sizeCache is a least recently used cache of measured text blocks.
type sizeCache struct {
	m          map[sizeKey]*sizeElem
	head, tail *sizeElem
}

type sizeElem struct {
	next, prev *sizeElem
	key        sizeKey
	size       block
}

type sizeKey struct {
	maxWidth fixed.Int26_6
	str      string
}

// block is the measured extent of a wrapped string.
type block struct {
	width fixed.Int26_6
	lines int
}

const maxSize = 1000

func (c *sizeCache) Get(k sizeKey) (block, bool) {
	if e, ok := c.m[k]; ok {
		c.remove(e)
		c.insert(e)
		return e.size, true
	}
	return block{}, false
}

func (c *sizeCache) Put(k sizeKey, b block) {
	if c.m == nil {
		c.m = make(map[sizeKey]*sizeElem)
		c.head = new(sizeElem)
		c.tail = new(sizeElem)
		c.head.prev = c.tail
		c.tail.next = c.head
	}
	if e, ok := c.m[k]; ok {
		c.remove(e)
	}
	e := &sizeElem{key: k, size: b}
	c.m[k] = e
	c.insert(e)
	if len(c.m) > maxSize {
		oldest := c.tail.next
		c.remove(oldest)
		delete(c.m, oldest.key)
	}
}

func (c *sizeCache) remove(e *sizeElem) {
	e.next.prev = e.prev
	e.prev.next = e.next
}

func (c *sizeCache) insert(e *sizeElem) {
	e.next = c.head
	e.prev = c.head.prev
	e.prev.next = e
	e.next.prev = e
}
