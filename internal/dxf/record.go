package dxf

import (
	"sort"
	"strings"
)

// Group codes the record model reads.
const (
	codeHandle     = "5"
	codeName       = "2"
	codeLayer      = "8"
	codeLineType   = "6"
	codeColor      = "62"
	codeLineWeight = "370"
	codeOwner      = "330"
	codeSubclass   = "100"
	codeFlags      = "70"
	codePlotStyle  = "390"
)

// DefaultLayer is the layer every drawing carries.
const DefaultLayer = "0"

// Layer defaults used when a record does not carry the property.
const (
	DefaultColor      = "7"
	DefaultLineType   = "CONTINUOUS"
	DefaultLineWeight = "0"
)

// EntityKinds is the allow-list of entity types kept from the ENTITIES
// section. Anything not listed is dropped.
type EntityKinds map[string]struct{}

// NewEntityKinds builds an allow-list from kinds.
func NewEntityKinds(kinds ...string) EntityKinds {
	k := make(EntityKinds, len(kinds))
	for _, kind := range kinds {
		k[kind] = struct{}{}
	}
	return k
}

// DefaultEntityKinds returns LINE, CIRCLE and ARC.
func DefaultEntityKinds() EntityKinds {
	return NewEntityKinds("LINE", "CIRCLE", "ARC")
}

// Has reports whether kind is allowed.
func (k EntityKinds) Has(kind string) bool {
	_, ok := k[kind]
	return ok
}

// List returns the allowed kinds sorted.
func (k EntityKinds) List() []string {
	out := make([]string, 0, len(k))
	for kind := range k {
		out = append(out, kind)
	}
	sort.Strings(out)
	return out
}

func (k EntityKinds) String() string {
	return strings.Join(k.List(), ",")
}

// Entity is a drawable record captured from the ENTITIES section. Its
// properties are kept in encounter order.
type Entity struct {
	kind  string
	props []Pair
}

// NewEntity returns an entity owning a copy of props.
func NewEntity(kind string, props []Pair) Entity {
	return Entity{kind: kind, props: clonePairs(props)}
}

// Kind returns the entity type, e.g. LINE.
func (e Entity) Kind() string { return e.kind }

// Properties returns a copy of the captured pairs.
func (e Entity) Properties() []Pair { return clonePairs(e.props) }

// Layer returns the value of the last group code 8, or layer "0".
func (e Entity) Layer() string {
	return lastValue(e.props, codeLayer, DefaultLayer)
}

// Handle returns the first group code 5 value, if any.
func (e Entity) Handle() (string, bool) {
	for _, p := range e.props {
		if p.Code == codeHandle {
			return p.Value, true
		}
	}
	return "", false
}

// withHandle returns a copy of e with handle inserted as its first property.
func (e Entity) withHandle(handle string) Entity {
	props := make([]Pair, 0, len(e.props)+1)
	props = append(props, Pair{Code: codeHandle, Value: handle})
	props = append(props, e.props...)
	return Entity{kind: e.kind, props: props}
}

// Layer is a LAYER table record. Codes that are regenerated on output
// (5, 330, 100, 70) are never stored in its properties.
type Layer struct {
	name  string
	props []Pair
}

// NewLayer returns a layer owning a copy of props.
func NewLayer(name string, props []Pair) Layer {
	return Layer{name: name, props: clonePairs(props)}
}

// Derived fields read the last matching property and fall back to the
// layer defaults.
func (l Layer) Name() string { return l.name }
func (l Layer) Properties() []Pair { return clonePairs(l.props) }
func (l Layer) Color() string { return lastValue(l.props, codeColor, DefaultColor) }
func (l Layer) LineType() string { return lastValue(l.props, codeLineType, DefaultLineType) }
func (l Layer) LineWeight() string { return lastValue(l.props, codeLineWeight, DefaultLineWeight) }

// Drawing is the parse result: layers keyed by name in first-seen order
// and the captured entities in file order.
type Drawing struct {
	order    []string
	layers   map[string]Layer
	entities []Entity
	skipped  map[string]int
}

func newDrawing() *Drawing {
	return &Drawing{
		layers:  make(map[string]Layer),
		skipped: make(map[string]int),
	}
}

// putLayer stores l. A redefinition replaces the earlier record but keeps
// its position.
func (d *Drawing) putLayer(l Layer) {
	if _, ok := d.layers[l.name]; !ok {
		d.order = append(d.order, l.name)
	}
	d.layers[l.name] = l
}

// Layers returns all layers in insertion order.
func (d *Drawing) Layers() []Layer {
	out := make([]Layer, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.layers[name])
	}
	return out
}

// Layer looks up a layer by name.
func (d *Drawing) Layer(name string) (Layer, bool) {
	l, ok := d.layers[name]
	return l, ok
}

// LayerCount returns the number of distinct layers.
func (d *Drawing) LayerCount() int {
	return len(d.order)
}

// Entities returns the captured entities in file order.
func (d *Drawing) Entities() []Entity {
	out := make([]Entity, len(d.entities))
	copy(out, d.entities)
	return out
}

// Skipped returns how many records of each non-allowed entity type were
// dropped from the ENTITIES section.
func (d *Drawing) Skipped() map[string]int {
	out := make(map[string]int, len(d.skipped))
	for k, v := range d.skipped {
		out[k] = v
	}
	return out
}

// EntityCounts returns the number of captured entities per kind.
func (d *Drawing) EntityCounts() map[string]int {
	out := make(map[string]int)
	for _, e := range d.entities {
		out[e.kind]++
	}
	return out
}

func clonePairs(p []Pair) []Pair {
	if len(p) == 0 {
		return nil
	}
	out := make([]Pair, len(p))
	copy(out, p)
	return out
}

func lastValue(props []Pair, code, def string) string {
	for i := len(props) - 1; i >= 0; i-- {
		if props[i].Code == code {
			return props[i].Value
		}
	}
	return def
}
