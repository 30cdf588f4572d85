package dxf

// State is the section context the tracker is currently in.
type State int

const (
	StateNone State = iota
	StateEntities
	StateBlocks
	StateTables
	StateTablesLayer
)

func (s State) String() string {
	switch s {
	case StateEntities:
		return "ENTITIES"
	case StateBlocks:
		return "BLOCKS"
	case StateTables:
		return "TABLES"
	case StateTablesLayer:
		return "TABLES-LAYER"
	default:
		return "NONE"
	}
}

// Structural markers carried as the value of a group code 0 pair.
const (
	markerSection = "SECTION"
	markerEndSec  = "ENDSEC"
	markerTable   = "TABLE"
	markerEndTab  = "ENDTAB"
	markerLayer   = "LAYER"
	markerEOF     = "EOF"
)

// structuralMarkers open or close a section, table or the file. They are
// never entities.
var structuralMarkers = map[string]bool{
	markerSection: true,
	markerEndSec:  true,
	markerTable:   true,
	markerEndTab:  true,
	markerEOF:     true,
}

// recordStart is the group code that opens every record and marker.
const recordStart = "0"

var trackedSections = map[string]State{
	"ENTITIES": StateEntities,
	"BLOCKS":   StateBlocks,
	"TABLES":   StateTables,
}

// Tracker is the section/table state machine layered on a Cursor.
// A header is recognised only when its name sits in the pair directly
// after the SECTION or TABLE marker.
type Tracker struct {
	state State
}

// State returns the active context.
func (t *Tracker) State() State {
	return t.state
}

// Step applies the first transition rule matching the pair under c, moving
// c past the consumed header or marker. It reports whether a rule fired;
// when it returns false c is left untouched.
func (t *Tracker) Step(c *Cursor) bool {
	p, ok := c.Current()
	if !ok || p.Code != recordStart {
		return false
	}
	switch {
	case p.Value == markerSection:
		return t.openSection(c)
	case p.Value == markerEndSec:
		t.closeSection(c)
		return true
	case t.inTables() && p.Value == markerTable:
		return t.openTable(c)
	case t.inTables() && p.Value == markerEndTab:
		t.closeTable(c)
		return true
	}
	return false
}

func (t *Tracker) inTables() bool {
	return t.state == StateTables || t.state == StateTablesLayer
}

// openSection handles "0/SECTION" followed by "2/<name>". Untracked names
// drop back to StateNone.
func (t *Tracker) openSection(c *Cursor) bool {
	name, ok := c.Peek(1)
	if !ok {
		return false
	}
	t.state = trackedSections[name.Value]
	c.Advance(2)
	return true
}

func (t *Tracker) closeSection(c *Cursor) {
	t.state = StateNone
	c.Advance(1)
}

// openTable handles "0/TABLE" followed by "2/<name>" inside TABLES. Only the
// LAYER table is tracked; any other table header closes an open LAYER table.
func (t *Tracker) openTable(c *Cursor) bool {
	name, ok := c.Peek(1)
	if !ok {
		return false
	}
	if name.Value == markerLayer {
		t.state = StateTablesLayer
	} else {
		t.state = StateTables
	}
	c.Advance(2)
	return true
}

func (t *Tracker) closeTable(c *Cursor) {
	t.state = StateTables
	c.Advance(1)
}
