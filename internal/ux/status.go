package ux

import (
	"fmt"
	"io"
	"sort"

	"github.com/jorge-barreto/dxfclean/internal/dxf"
)

// RenderInspect prints the layer table and entity summary of a parsed
// drawing.
func RenderInspect(w io.Writer, path string, d *dxf.Drawing, kinds dxf.EntityKinds) {
	fmt.Fprintf(w, "%sFile:%s     %s\n", Bold, Reset, path)
	fmt.Fprintf(w, "%sKeeping:%s  %s\n", Bold, Reset, kinds)

	fmt.Fprintf(w, "\n%sLayers (%d):%s\n", Bold, d.LayerCount(), Reset)
	fmt.Fprintf(w, "  %s%-24s %6s  %-16s %s%s\n", Dim, "NAME", "COLOR", "LINETYPE", "WEIGHT", Reset)
	for _, l := range d.Layers() {
		fmt.Fprintf(w, "  %-24s %6s  %-16s %s\n", l.Name(), l.Color(), l.LineType(), l.LineWeight())
	}

	counts := d.EntityCounts()
	fmt.Fprintf(w, "\n%sEntities (%d):%s\n", Bold, len(d.Entities()), Reset)
	if len(counts) == 0 {
		fmt.Fprintf(w, "  %s(none)%s\n", Dim, Reset)
	}
	for _, kind := range sortedKeys(counts) {
		fmt.Fprintf(w, "  %s%-12s%s %d\n", Green, kind, Reset, counts[kind])
	}

	skipped := d.Skipped()
	if len(skipped) > 0 {
		fmt.Fprintf(w, "\n%sSkipped:%s\n", Bold, Reset)
		for _, kind := range sortedKeys(skipped) {
			fmt.Fprintf(w, "  %s%-12s%s %d\n", Dim, kind, Reset, skipped[kind])
		}
	}
	fmt.Fprintln(w)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
