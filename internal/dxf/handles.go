package dxf

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// Layer handles live in [layerHandleBase, layerHandleBase+layerHandleSpan)
// before probing, above the fixed structural handles and the default
// entity counter range.
const (
	layerHandleBase = 0x400
	layerHandleSpan = 1000
)

// DefaultHandleBase is the first handle given to an entity that has none.
const DefaultHandleBase = 0x32

// LayerHandle derives a layer's handle from its name: FNV-1a over the
// UTF-8 bytes, reduced modulo 1000 and offset into the layer range.
// Distinct names can collide; HandleSet.AssignLayer resolves that.
func LayerHandle(name string) string {
	return formatHandle(layerHandleValue(name))
}

func layerHandleValue(name string) uint64 {
	h := fnv.New32a()
	h.Write([]byte(name))
	return layerHandleBase + uint64(h.Sum32()%layerHandleSpan)
}

func formatHandle(v uint64) string {
	return strings.ToUpper(strconv.FormatUint(v, 16))
}

// canonicalHandle normalises case and leading zeros so "01a" and "1A"
// compare equal. Non-hex values are only upper-cased.
func canonicalHandle(h string) string {
	if v, err := strconv.ParseUint(h, 16, 64); err == nil {
		return formatHandle(v)
	}
	return strings.ToUpper(h)
}

// HandleSet records every handle already present in an output so newly
// assigned ones never duplicate them.
type HandleSet struct {
	used map[string]struct{}
}

// NewHandleSet returns a set holding reserved.
func NewHandleSet(reserved ...string) *HandleSet {
	s := &HandleSet{used: make(map[string]struct{})}
	for _, h := range reserved {
		s.Reserve(h)
	}
	return s
}

// Reserve marks h as taken.
func (s *HandleSet) Reserve(h string) {
	if h == "" {
		return
	}
	s.used[canonicalHandle(h)] = struct{}{}
}

// Has reports whether h is taken.
func (s *HandleSet) Has(h string) bool {
	_, ok := s.used[canonicalHandle(h)]
	return ok
}

// Len returns the number of taken handles.
func (s *HandleSet) Len() int {
	return len(s.used)
}

// ReserveText scans text as code/value lines and reserves every value
// carried by group code 5 or 105.
func (s *HandleSet) ReserveText(text string) {
	lines := strings.Split(text, "\n")
	for i := 0; i+1 < len(lines); i += 2 {
		switch strings.TrimSpace(lines[i]) {
		case "5", "105":
			s.Reserve(strings.TrimSpace(lines[i+1]))
		}
	}
}

// AssignLayer returns the handle for the named layer, stepping past taken
// values. Results depend only on the names and the order they are assigned.
func (s *HandleSet) AssignLayer(name string) string {
	v := layerHandleValue(name)
	for s.Has(formatHandle(v)) {
		v++
	}
	h := formatHandle(v)
	s.Reserve(h)
	return h
}

// Counter hands out strictly increasing entity handles from a base value,
// skipping any handle held by its set.
type Counter struct {
	next uint64
	set  *HandleSet
}

// Counter returns an allocator starting at base.
func (s *HandleSet) Counter(base uint64) *Counter {
	return &Counter{next: base, set: s}
}

// Next returns the next free handle.
func (c *Counter) Next() string {
	for c.set.Has(formatHandle(c.next)) {
		c.next++
	}
	h := formatHandle(c.next)
	c.set.Reserve(h)
	c.next++
	return h
}
