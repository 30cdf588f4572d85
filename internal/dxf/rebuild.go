package dxf

import (
	"fmt"
	"strconv"
	"strings"
)

// layerTableMarker is the insertion point a header template must contain
// exactly once: the opening of its LAYER table.
const layerTableMarker = "TABLE\n2\nLAYER"

// Fixed handles of the regenerated LAYER table.
const (
	layerTableHandle = "2"
	layerTableOwner  = "0"
)

// minimalLayerCount is the layer count placeholder of the built-in header.
const minimalLayerCount = "70\n1"

// WarningKind classifies a recovered problem.
type WarningKind string

const (
	WarnTemplateMissing WarningKind = "template-missing"
	WarnHeaderFormat    WarningKind = "header-format-mismatch"
)

// Warning is a problem that was recovered from but lowers output fidelity.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}

// Templates holds the two text blobs wrapped around the rebuilt content.
type Templates struct {
	Header string
	Footer string
}

// DefaultTemplates returns the built-in header and footer.
func DefaultTemplates() Templates {
	return Templates{Header: MinimalHeader, Footer: MinimalFooter}
}

// HeaderTemplate is a header blob split at its LAYER table insertion point.
type HeaderTemplate struct {
	text   string
	prefix string
	split  bool
}

// ParseHeader splits text at the LAYER table marker. The split only holds
// when the marker occurs exactly once.
func ParseHeader(text string) HeaderTemplate {
	h := HeaderTemplate{text: text}
	parts := strings.Split(text, layerTableMarker)
	if len(parts) == 2 {
		h.prefix = parts[0]
		h.split = true
	}
	return h
}

// HasInsertionPoint reports whether the marker was found exactly once.
func (h HeaderTemplate) HasInsertionPoint() bool { return h.split }

// IsMinimal reports whether the template is the built-in header or a copy
// of it.
func (h HeaderTemplate) IsMinimal() bool {
	return strings.Contains(h.text, minimalHeaderBanner)
}

// Render returns the header followed by the opening of a LAYER table that
// announces layerCount records. Without an insertion point the template is
// returned as is, apart from the built-in header whose count placeholder is
// patched, and a warning is reported.
func (h HeaderTemplate) Render(layerCount int) (string, *Warning) {
	count := strconv.Itoa(layerCount)
	if h.split {
		var b strings.Builder
		b.WriteString(h.prefix)
		b.WriteString(layerTableMarker)
		b.WriteByte('\n')
		writePairs(&b,
			Pair{codeHandle, layerTableHandle},
			Pair{codeOwner, layerTableOwner},
			Pair{codeSubclass, "AcDbSymbolTable"},
			Pair{codeFlags, count},
		)
		return b.String(), nil
	}

	text := h.text
	warn := &Warning{Kind: WarnHeaderFormat}
	if h.IsMinimal() {
		if i := strings.LastIndex(text, minimalLayerCount); i >= 0 {
			text = text[:i] + codeFlags + "\n" + count + text[i+len(minimalLayerCount):]
		}
		warn.Message = "LAYER table marker not found exactly once in header template; patched built-in layer count"
	} else {
		warn.Message = "LAYER table marker not found exactly once in header template; header emitted unmodified"
	}
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text, warn
}

// RebuildOptions tunes the rebuild.
type RebuildOptions struct {
	// HandleBase is the first handle synthesised for an entity without one.
	// Zero means DefaultHandleBase.
	HandleBase uint64
}

// Output is a rebuilt drawing file.
type Output struct {
	Text         string
	Warnings     []Warning
	LayerHandles map[string]string
	Synthesized  int
}

// Rebuild emits a complete drawing from d wrapped in t. It does not modify
// d and never fails; header problems degrade the output and are reported
// in Output.Warnings.
func Rebuild(d *Drawing, t Templates, opts RebuildOptions) *Output {
	if opts.HandleBase == 0 {
		opts.HandleBase = DefaultHandleBase
	}
	out := &Output{LayerHandles: make(map[string]string, d.LayerCount())}
	handles := reservedHandles(d, t)

	var b strings.Builder
	header, warn := ParseHeader(t.Header).Render(d.LayerCount())
	if warn != nil {
		out.Warnings = append(out.Warnings, *warn)
	}
	b.WriteString(header)

	for _, l := range layerOrder(d) {
		h := handles.AssignLayer(l.name)
		out.LayerHandles[l.name] = h
		writeLayer(&b, l, h)
	}
	writePairs(&b, Pair{recordStart, markerEndTab})

	b.WriteString(skeleton)

	counter := handles.Counter(opts.HandleBase)
	for _, e := range d.entities {
		if _, ok := e.Handle(); !ok {
			e = e.withHandle(counter.Next())
			out.Synthesized++
		}
		writePairs(&b, Pair{recordStart, e.kind})
		writePairs(&b, e.props...)
	}

	b.WriteString(recordStart + "\n")
	b.WriteString(t.Footer)
	out.Text = b.String()
	return out
}

// reservedHandles collects handles the rebuild must not reuse: those in
// the templates and the fixed skeleton, the LAYER table's own handle and
// every handle already carried by a captured entity.
func reservedHandles(d *Drawing, t Templates) *HandleSet {
	s := NewHandleSet(layerTableHandle)
	s.ReserveText(t.Header)
	s.ReserveText(skeleton)
	// The footer follows a lone "0" line, so realign it before scanning.
	s.ReserveText(recordStart + "\n" + t.Footer)
	for _, e := range d.entities {
		if h, ok := e.Handle(); ok {
			s.Reserve(h)
		}
	}
	return s
}

// layerOrder puts layer "0" first, the rest in insertion order.
func layerOrder(d *Drawing) []Layer {
	out := make([]Layer, 0, len(d.order))
	if l, ok := d.layers[DefaultLayer]; ok {
		out = append(out, l)
	}
	for _, name := range d.order {
		if name != DefaultLayer {
			out = append(out, d.layers[name])
		}
	}
	return out
}

// writeLayer emits the canonical record header then replays the captured
// properties verbatim. A property whose code the header already carries is
// skipped, except subclass markers (100) which may repeat. A plot style
// handle (390) is appended when none was captured.
func writeLayer(b *strings.Builder, l Layer, handle string) {
	header := []Pair{
		{codeHandle, handle},
		{codeOwner, layerTableHandle},
		{codeSubclass, "AcDbSymbolTableRecord"},
		{codeSubclass, "AcDbLayerTableRecord"},
		{codeName, l.name},
		{codeFlags, "0"},
	}

	inHeader := make(map[string]bool, len(header))
	writePairs(b, Pair{recordStart, markerLayer})
	for _, p := range header {
		writePairs(b, p)
		inHeader[p.Code] = true
	}
	plotStyle := false
	for _, p := range l.props {
		if inHeader[p.Code] && p.Code != codeSubclass {
			continue
		}
		writePairs(b, p)
		if p.Code == codePlotStyle {
			plotStyle = true
		}
	}
	if !plotStyle {
		writePairs(b, Pair{codePlotStyle, "F"})
	}
}

func writePairs(b *strings.Builder, pairs ...Pair) {
	for _, p := range pairs {
		b.WriteString(p.Code)
		b.WriteByte('\n')
		b.WriteString(p.Value)
		b.WriteByte('\n')
	}
}
