// Package metrics provides Prometheus metrics for cleaning runs
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jorge-barreto/dxfclean/internal/dxf"
)

// Recorder owns a registry scoped to one process so metrics can be exported
// as a node-exporter textfile after the run.
type Recorder struct {
	registry *prometheus.Registry

	Runs             *prometheus.CounterVec
	LayersWritten    prometheus.Counter
	EntitiesWritten  *prometheus.CounterVec
	EntitiesSkipped  *prometheus.CounterVec
	HandlesGenerated prometheus.Counter
	Warnings         *prometheus.CounterVec
	RunDuration      prometheus.Histogram
	OutputBytes      prometheus.Counter
}

// New registers the cleaner metrics on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		Runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dxfclean_runs_total",
				Help: "Total number of cleaning runs",
			},
			[]string{"status"},
		),
		LayersWritten: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "dxfclean_layers_written_total",
				Help: "Layer records written to the rebuilt LAYER table",
			},
		),
		EntitiesWritten: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dxfclean_entities_written_total",
				Help: "Entities kept and written to the ENTITIES section",
			},
			[]string{"kind"},
		),
		EntitiesSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dxfclean_entities_skipped_total",
				Help: "Entities dropped because their kind is not allowed",
			},
			[]string{"kind"},
		),
		HandlesGenerated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "dxfclean_handles_generated_total",
				Help: "Entity handles synthesised during rebuild",
			},
		),
		Warnings: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dxfclean_warnings_total",
				Help: "Recovered problems that lowered output fidelity",
			},
			[]string{"kind"},
		),
		RunDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dxfclean_run_duration_seconds",
				Help:    "Time taken to clean one file",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
			},
		),
		OutputBytes: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "dxfclean_output_bytes_total",
				Help: "Bytes written to cleaned drawings",
			},
		),
	}
}

// Registry exposes the underlying registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// RecordDrawing counts what a parse kept and dropped.
func (r *Recorder) RecordDrawing(d *dxf.Drawing) {
	for kind, n := range d.EntityCounts() {
		r.EntitiesWritten.WithLabelValues(kind).Add(float64(n))
	}
	for kind, n := range d.Skipped() {
		r.EntitiesSkipped.WithLabelValues(kind).Add(float64(n))
	}
}

// RecordOutput counts a rebuild result once it has been written.
func (r *Recorder) RecordOutput(out *dxf.Output) {
	r.LayersWritten.Add(float64(len(out.LayerHandles)))
	r.HandlesGenerated.Add(float64(out.Synthesized))
	r.OutputBytes.Add(float64(len(out.Text)))
}

// RecordWarnings counts recovered problems by kind.
func (r *Recorder) RecordWarnings(ws ...dxf.Warning) {
	for _, w := range ws {
		r.Warnings.WithLabelValues(string(w.Kind)).Inc()
	}
}

// RecordRun counts a finished run and observes its duration.
func (r *Recorder) RecordRun(status string, d time.Duration) {
	r.Runs.WithLabelValues(status).Inc()
	r.RunDuration.Observe(d.Seconds())
}

// WriteTextfile writes every metric in the text exposition format, atomically
// as the node exporter textfile collector expects.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
