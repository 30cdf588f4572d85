package dxf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wallsDrawing is a small drawing with one extra layer and a mix of allowed
// and ignored entities.
var wallsDrawing = dxfText(
	"0", "SECTION", "2", "HEADER",
	"9", "$ACADVER", "1", "AC1015",
	"0", "ENDSEC",
	"0", "SECTION", "2", "TABLES",
	"0", "TABLE", "2", "LTYPE", "70", "1",
	"0", "LTYPE", "2", "CONTINUOUS", "70", "0",
	"0", "ENDTAB",
	"0", "TABLE", "2", "LAYER", "5", "2", "70", "1",
	"0", "LAYER",
	"5", "10",
	"330", "2",
	"100", "AcDbSymbolTableRecord",
	"100", "AcDbLayerTableRecord",
	"2", "Walls",
	"70", "0",
	"62", "3",
	"6", "CONTINUOUS",
	"0", "ENDTAB",
	"0", "ENDSEC",
	"0", "SECTION", "2", "BLOCKS",
	"0", "BLOCK", "8", "0", "2", "*Model_Space",
	"0", "LINE", "8", "0",
	"0", "ENDBLK",
	"0", "ENDSEC",
	"0", "SECTION", "2", "ENTITIES",
	"0", "LINE", "5", "1A", "8", "Walls", "10", "0", "20", "0", "11", "10", "21", "0",
	"0", "TEXT", "8", "Walls", "1", "hello",
	"0", "LINE", "8", "Walls", "10", "10", "20", "0", "11", "10", "21", "5",
	"0", "ENDSEC",
	"0", "EOF",
)

func TestParse_WallsDrawing(t *testing.T) {
	d := Parse(mustLines(t, wallsDrawing), DefaultEntityKinds())

	names := make([]string, 0)
	for _, l := range d.Layers() {
		names = append(names, l.Name())
	}
	assert.Equal(t, []string{"Walls", "0"}, names)

	walls, ok := d.Layer("Walls")
	require.True(t, ok)
	if diff := cmp.Diff([]Pair{{"62", "3"}, {"6", "CONTINUOUS"}}, walls.Properties()); diff != "" {
		t.Fatalf("Walls properties mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "3", walls.Color())
	assert.Equal(t, "CONTINUOUS", walls.LineType())
	assert.Equal(t, DefaultLineWeight, walls.LineWeight())

	entities := d.Entities()
	require.Len(t, entities, 2)
	assert.Equal(t, "LINE", entities[0].Kind())
	h, ok := entities[0].Handle()
	require.True(t, ok)
	assert.Equal(t, "1A", h)
	_, ok = entities[1].Handle()
	assert.False(t, ok)
	assert.Equal(t, "Walls", entities[1].Layer())

	assert.Equal(t, map[string]int{"TEXT": 1}, d.Skipped())
	assert.Equal(t, map[string]int{"LINE": 2}, d.EntityCounts())
}

func TestParse_PropertyOrderPreserved(t *testing.T) {
	d := Parse(mustLines(t, wallsDrawing), DefaultEntityKinds())
	want := []Pair{
		{"5", "1A"}, {"8", "Walls"},
		{"10", "0"}, {"20", "0"}, {"11", "10"}, {"21", "0"},
	}
	if diff := cmp.Diff(want, d.Entities()[0].Properties()); diff != "" {
		t.Fatalf("property order mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_SynthesizesLayerZero(t *testing.T) {
	d := Parse(mustLines(t, dxfText("0", "SECTION", "2", "ENTITIES", "0", "ENDSEC", "0", "EOF")), DefaultEntityKinds())
	require.Equal(t, 1, d.LayerCount())
	l, ok := d.Layer("0")
	require.True(t, ok)
	assert.Empty(t, l.Properties())
	assert.Equal(t, DefaultColor, l.Color())
	assert.Equal(t, DefaultLineType, l.LineType())
	assert.Equal(t, DefaultLineWeight, l.LineWeight())
}

func TestParse_KeepsDeclaredLayerZero(t *testing.T) {
	text := dxfText(
		"0", "SECTION", "2", "TABLES",
		"0", "TABLE", "2", "LAYER",
		"0", "LAYER", "2", "0", "62", "5",
		"0", "ENDTAB", "0", "ENDSEC",
	)
	d := Parse(mustLines(t, text), DefaultEntityKinds())
	require.Equal(t, 1, d.LayerCount())
	l, _ := d.Layer("0")
	assert.Equal(t, "5", l.Color())
}

func TestParse_LayerWithoutNameDiscarded(t *testing.T) {
	text := dxfText(
		"0", "SECTION", "2", "TABLES",
		"0", "TABLE", "2", "LAYER",
		"0", "LAYER", "62", "1",
		"0", "LAYER", "2", "", "62", "2",
		"0", "LAYER", "2", "Kept",
		"0", "ENDTAB", "0", "ENDSEC",
	)
	d := Parse(mustLines(t, text), DefaultEntityKinds())
	assert.Equal(t, 2, d.LayerCount())
	_, ok := d.Layer("Kept")
	assert.True(t, ok)
}

func TestParse_LayerLastNameWins(t *testing.T) {
	text := dxfText(
		"0", "SECTION", "2", "TABLES",
		"0", "TABLE", "2", "LAYER",
		"0", "LAYER", "2", "First", "62", "4", "2", "Second",
		"0", "ENDTAB", "0", "ENDSEC",
	)
	d := Parse(mustLines(t, text), DefaultEntityKinds())
	_, ok := d.Layer("First")
	assert.False(t, ok)
	l, ok := d.Layer("Second")
	require.True(t, ok)
	assert.Equal(t, []Pair{{"62", "4"}}, l.Properties())
}

func TestParse_LayerRegeneratedCodesSuppressed(t *testing.T) {
	text := dxfText(
		"0", "SECTION", "2", "TABLES",
		"0", "TABLE", "2", "LAYER",
		"0", "LAYER",
		"5", "AB", "330", "2", "100", "AcDbSymbolTableRecord", "70", "64",
		"2", "Hidden", "62", "-1", "370", "25", "390", "F1",
		"0", "ENDTAB", "0", "ENDSEC",
	)
	d := Parse(mustLines(t, text), DefaultEntityKinds())
	l, ok := d.Layer("Hidden")
	require.True(t, ok)
	want := []Pair{{"62", "-1"}, {"370", "25"}, {"390", "F1"}}
	if diff := cmp.Diff(want, l.Properties()); diff != "" {
		t.Fatalf("properties mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "25", l.LineWeight())
}

func TestParse_DuplicateLayerKeepsFirstPosition(t *testing.T) {
	text := dxfText(
		"0", "SECTION", "2", "TABLES",
		"0", "TABLE", "2", "LAYER",
		"0", "LAYER", "2", "A", "62", "1",
		"0", "LAYER", "2", "B",
		"0", "LAYER", "2", "A", "62", "2",
		"0", "ENDTAB", "0", "ENDSEC",
	)
	d := Parse(mustLines(t, text), DefaultEntityKinds())
	layers := d.Layers()
	require.Len(t, layers, 3)
	assert.Equal(t, "A", layers[0].Name())
	assert.Equal(t, "2", layers[0].Color())
	assert.Equal(t, "B", layers[1].Name())
}

func TestParse_LayersOutsideLayerTableIgnored(t *testing.T) {
	text := dxfText(
		"0", "SECTION", "2", "TABLES",
		"0", "TABLE", "2", "LTYPE",
		"0", "LAYER", "2", "NotALayer",
		"0", "ENDTAB", "0", "ENDSEC",
		"0", "SECTION", "2", "ENTITIES",
		"0", "LAYER", "2", "AlsoNot",
		"0", "ENDSEC",
	)
	d := Parse(mustLines(t, text), DefaultEntityKinds())
	assert.Equal(t, 1, d.LayerCount())
}

func TestParse_WhitelistFiltering(t *testing.T) {
	text := dxfText(
		"0", "SECTION", "2", "ENTITIES",
		"0", "POLYLINE", "8", "0", "66", "1",
		"0", "VERTEX", "10", "1",
		"0", "SEQEND",
		"0", "CIRCLE", "8", "0", "40", "2",
		"0", "TEXT", "1", "skip me",
		"0", "ARC", "8", "0", "40", "1", "50", "0", "51", "90",
		"0", "LINE", "8", "0",
		"0", "ENDSEC",
	)
	d := Parse(mustLines(t, text), DefaultEntityKinds())

	var kinds []string
	for _, e := range d.Entities() {
		kinds = append(kinds, e.Kind())
	}
	assert.Equal(t, []string{"CIRCLE", "ARC", "LINE"}, kinds)
	assert.Equal(t, map[string]int{"POLYLINE": 1, "VERTEX": 1, "SEQEND": 1, "TEXT": 1}, d.Skipped())
}

func TestParse_StructuralMarkersNotCountedAsSkipped(t *testing.T) {
	text := dxfText(
		"0", "SECTION", "2", "ENTITIES",
		"0", "LINE", "8", "0",
		"0", "ENDTAB",
		"0", "TABLE", "2", "LAYER",
		"0", "TEXT", "1", "x",
		"0", "EOF",
	)
	d := Parse(mustLines(t, text), DefaultEntityKinds())
	assert.Len(t, d.Entities(), 1)
	assert.Equal(t, map[string]int{"TEXT": 1}, d.Skipped())
}

func TestParse_CustomWhitelist(t *testing.T) {
	text := dxfText(
		"0", "SECTION", "2", "ENTITIES",
		"0", "LINE", "8", "0",
		"0", "TEXT", "1", "keep me",
		"0", "ENDSEC",
	)
	d := Parse(mustLines(t, text), NewEntityKinds("TEXT"))
	entities := d.Entities()
	require.Len(t, entities, 1)
	assert.Equal(t, "TEXT", entities[0].Kind())
	assert.Equal(t, []Pair{{"1", "keep me"}}, entities[0].Properties())
}

func TestParse_EntitiesOutsideEntitiesSectionIgnored(t *testing.T) {
	text := dxfText(
		"0", "SECTION", "2", "BLOCKS",
		"0", "LINE", "8", "0",
		"0", "ENDSEC",
		"0", "LINE", "8", "0",
	)
	d := Parse(mustLines(t, text), DefaultEntityKinds())
	assert.Empty(t, d.Entities())
}

func TestParse_EntityLayerLastWriteWins(t *testing.T) {
	text := dxfText(
		"0", "SECTION", "2", "ENTITIES",
		"0", "LINE", "8", "A", "10", "0", "8", "B",
		"0", "CIRCLE", "40", "1",
		"0", "ENDSEC",
	)
	d := Parse(mustLines(t, text), DefaultEntityKinds())
	entities := d.Entities()
	require.Len(t, entities, 2)
	assert.Equal(t, "B", entities[0].Layer())
	assert.Equal(t, DefaultLayer, entities[1].Layer())
}

func TestParse_UnterminatedEntityAtEndOfInput(t *testing.T) {
	text := dxfText(
		"0", "SECTION", "2", "ENTITIES",
		"0", "LINE", "8", "Walls", "10",
	)
	d := Parse(mustLines(t, text), DefaultEntityKinds())
	entities := d.Entities()
	require.Len(t, entities, 1)
	assert.Equal(t, []Pair{{"8", "Walls"}}, entities[0].Properties())
}

func TestParse_EmptyInput(t *testing.T) {
	d := Parse(nil, DefaultEntityKinds())
	assert.Equal(t, 1, d.LayerCount())
	assert.Empty(t, d.Entities())
}

func TestDrawing_AccessorsReturnCopies(t *testing.T) {
	d := Parse(mustLines(t, wallsDrawing), DefaultEntityKinds())
	props := d.Entities()[0].Properties()
	props[0] = Pair{"5", "FF"}
	h, _ := d.Entities()[0].Handle()
	assert.Equal(t, "1A", h)

	skipped := d.Skipped()
	skipped["TEXT"] = 99
	assert.Equal(t, 1, d.Skipped()["TEXT"])
}

func TestEntityKinds(t *testing.T) {
	k := NewEntityKinds("LINE", "ARC")
	assert.True(t, k.Has("LINE"))
	assert.False(t, k.Has("line"))
	assert.Equal(t, []string{"ARC", "LINE"}, k.List())
	assert.Equal(t, "ARC,CIRCLE,LINE", DefaultEntityKinds().String())
}
