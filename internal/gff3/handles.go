// internal/gff3/handles.go
package gff3

import (
	"bufio"
	"container/list"
	"os"

	"liftprep/internal/diag"
	"liftprep/internal/fileio"
)

// appendCache keeps at most cap append-mode handles open with LRU eviction.
// cap == 0 opens, appends and closes on every write.
type appendCache struct {
	cap int
	ll  *list.List
	m   map[string]*list.Element
}

type handle struct {
	path string
	f    *os.File
	w    *bufio.Writer
}

func newAppendCache(capacity int) *appendCache {
	if capacity < 0 {
		capacity = 0
	}
	return &appendCache{cap: capacity, ll: list.New(), m: make(map[string]*list.Element)}
}

// Append writes line to the end of path.
func (c *appendCache) Append(path, line string) error {
	if c.cap == 0 {
		f, err := fileio.OpenAppend(path)
		if err != nil {
			return err
		}
		if _, err := f.WriteString(line); err != nil {
			_ = f.Close()
			return diag.WrapIO(err)
		}
		return diag.WrapIO(f.Close())
	}

	if e, ok := c.m[path]; ok {
		c.ll.MoveToFront(e)
		_, err := e.Value.(*handle).w.WriteString(line)
		return diag.WrapIO(err)
	}
	f, err := fileio.OpenAppend(path)
	if err != nil {
		return err
	}
	h := &handle{path: path, f: f, w: bufio.NewWriter(f)}
	c.m[path] = c.ll.PushFront(h)
	if c.ll.Len() > c.cap {
		if err := c.evict(c.ll.Back()); err != nil {
			return err
		}
	}
	_, err = h.w.WriteString(line)
	return diag.WrapIO(err)
}

func (c *appendCache) evict(e *list.Element) error {
	h := c.ll.Remove(e).(*handle)
	delete(c.m, h.path)
	return h.close()
}

// Close flushes and closes every open handle, returning the first error.
func (c *appendCache) Close() error {
	var first error
	for c.ll.Len() > 0 {
		if err := c.evict(c.ll.Back()); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open reports how many handles are currently held.
func (c *appendCache) Open() int { return c.ll.Len() }

func (h *handle) close() error {
	ferr := h.w.Flush()
	cerr := h.f.Close()
	if ferr != nil {
		return diag.WrapIO(ferr)
	}
	return diag.WrapIO(cerr)
}
