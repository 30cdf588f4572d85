package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jorge-barreto/dxfclean/internal/dxf"
	"github.com/jorge-barreto/dxfclean/internal/output"
)

const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type Warning struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Report is the JSON summary of one cleaning run.
type Report struct {
	RunID       string         `json:"run_id"`
	Input       string         `json:"input"`
	Output      string         `json:"output,omitempty"`
	Status      string         `json:"status"` // running, completed, failed
	Error       string         `json:"error,omitempty"`
	EntityTypes []string       `json:"entity_types"`
	Layers      int            `json:"layers"`
	Entities    int            `json:"entities"`
	Synthesized int            `json:"synthesized_handles"`
	Skipped     map[string]int `json:"skipped,omitempty"`
	Warnings    []Warning      `json:"warnings,omitempty"`
	Start       time.Time      `json:"start"`
	End         time.Time      `json:"end,omitempty"`
	Duration    string         `json:"duration,omitempty"`
}

// New starts a report for a run over input.
func New(runID, input string, kinds dxf.EntityKinds) *Report {
	return &Report{
		RunID:       runID,
		Input:       input,
		Status:      StatusRunning,
		EntityTypes: kinds.List(),
		Start:       time.Now(),
	}
}

// Path returns the report path that sits next to a cleaned drawing.
func Path(outputPath string) string {
	return outputPath + ".report.json"
}

// Record copies the counts of a parsed drawing.
func (r *Report) Record(d *dxf.Drawing) {
	r.Layers = d.LayerCount()
	r.Entities = len(d.Entities())
	r.Skipped = d.Skipped()
}

// AddWarnings appends recovered problems.
func (r *Report) AddWarnings(ws ...dxf.Warning) {
	for _, w := range ws {
		r.Warnings = append(r.Warnings, Warning{Kind: string(w.Kind), Message: w.Message})
	}
}

// Finish stamps the end time and the final status. A nil err completes the
// run.
func (r *Report) Finish(err error) {
	r.End = time.Now()
	r.Duration = formatDuration(r.End.Sub(r.Start))
	if err != nil {
		r.Status = StatusFailed
		r.Error = err.Error()
		return
	}
	r.Status = StatusCompleted
}

// Save writes the report to path.
func (r *Report) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return output.WriteFile(path, append(data, '\n'))
}

// Load reads a report written by Save.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report %s: %w", path, err)
	}
	return &r, nil
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %02ds", m, s)
}
