package dxf

// regeneratedLayerCodes are rebuilt canonically on output and never
// captured from a source LAYER record.
var regeneratedLayerCodes = map[string]bool{
	codeHandle:   true,
	codeOwner:    true,
	codeSubclass: true,
	codeFlags:    true,
}

// Parse walks lines once and captures the LAYER table records and the
// allowed entities. It never fails: unrecognised sections, tables and
// entity types are passed over. Layer "0" is always present in the result.
func Parse(lines []string, kinds EntityKinds) *Drawing {
	d := newDrawing()
	c := NewCursor(lines)
	var t Tracker

	for !c.Done() {
		if t.Step(c) {
			continue
		}
		p, _ := c.Current()
		if p.Code != recordStart {
			c.Next()
			continue
		}

		switch t.State() {
		case StateTablesLayer:
			c.Next()
			if p.Value != markerLayer {
				continue
			}
			if l, ok := extractLayer(c); ok {
				d.putLayer(l)
			}
		case StateEntities:
			c.Next()
			if !kinds.Has(p.Value) {
				skipRecord(c)
				if !structuralMarkers[p.Value] {
					d.skipped[p.Value]++
				}
				continue
			}
			d.entities = append(d.entities, extractEntity(p.Value, c))
		default:
			c.Next()
		}
	}

	if _, ok := d.layers[DefaultLayer]; !ok {
		d.putLayer(NewLayer(DefaultLayer, nil))
	}
	return d
}

// extractLayer consumes the body of a LAYER record up to, not including,
// the next group code 0. The last code 2 names the layer; a record without
// a non-empty name is discarded.
func extractLayer(c *Cursor) (Layer, bool) {
	var name string
	var props []Pair
	for p, ok := c.Current(); ok && p.Code != recordStart; p, ok = c.Current() {
		switch {
		case p.Code == codeName:
			name = p.Value
		case !regeneratedLayerCodes[p.Code]:
			props = append(props, p)
		}
		c.Next()
	}
	if name == "" {
		return Layer{}, false
	}
	return Layer{name: name, props: props}, true
}

// extractEntity consumes an entity body up to the next group code 0.
func extractEntity(kind string, c *Cursor) Entity {
	var props []Pair
	for p, ok := c.Current(); ok && p.Code != recordStart; p, ok = c.Current() {
		props = append(props, p)
		c.Next()
	}
	return Entity{kind: kind, props: props}
}

func skipRecord(c *Cursor) {
	for p, ok := c.Current(); ok && p.Code != recordStart; p, ok = c.Current() {
		c.Next()
	}
}
