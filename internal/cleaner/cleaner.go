package cleaner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jorge-barreto/dxfclean/internal/config"
	"github.com/jorge-barreto/dxfclean/internal/dxf"
	"github.com/jorge-barreto/dxfclean/internal/metrics"
	"github.com/jorge-barreto/dxfclean/internal/output"
	"github.com/jorge-barreto/dxfclean/internal/report"
	"github.com/jorge-barreto/dxfclean/internal/templates"
	"github.com/jorge-barreto/dxfclean/internal/ux"
)

var (
	ErrInputUnreadable = errors.New("input file unreadable")
	ErrOutputWrite     = errors.New("output write failed")
)

// Cleaner drives one file through read, parse, rebuild and write.
type Cleaner struct {
	Config           *config.Config
	Templates        dxf.Templates
	TemplateWarnings []dxf.Warning
	Logger           *zap.Logger
	Metrics          *metrics.Recorder
}

// Result describes a finished run.
type Result struct {
	RunID      string
	Input      string
	Output     string
	ReportPath string
	Drawing    *dxf.Drawing
	Rebuilt    *dxf.Output
	Warnings   []dxf.Warning
	Duration   time.Duration
}

// New loads the configured templates and returns a ready Cleaner. A nil
// logger discards log output.
func New(cfg *config.Config, logger *zap.Logger) *Cleaner {
	if logger == nil {
		logger = zap.NewNop()
	}
	header, footer := cfg.TemplatePaths()
	t, warnings := templates.Load(header, footer)
	return &Cleaner{
		Config:           cfg,
		Templates:        t,
		TemplateWarnings: warnings,
		Logger:           logger,
		Metrics:          metrics.New(),
	}
}

// Clean converts input into a cleaned drawing under the configured output
// directory.
func (c *Cleaner) Clean(ctx context.Context, input string) (*Result, error) {
	start := time.Now()
	res := &Result{RunID: uuid.NewString(), Input: input}
	log := c.Logger.With(zap.String("run_id", res.RunID), zap.String("input", input))
	rep := report.New(res.RunID, input, c.Config.EntityKinds())

	ux.Processing(input)
	log.Debug("run started",
		zap.Strings("entity_types", c.Config.EntityKinds().List()),
		zap.String("handle_base", c.Config.HandleBase))

	fail := func(err error, saveReport bool) (*Result, error) {
		res.Duration = time.Since(start)
		rep.Finish(err)
		log.Error("cleaning failed", zap.Error(err), zap.Duration("duration", res.Duration))
		ux.Failed(input, err.Error())
		if saveReport {
			c.saveReport(log, rep, res)
		}
		c.finishMetrics(log, report.StatusFailed, res.Duration)
		return res, err
	}

	if err := ctx.Err(); err != nil {
		return fail(err, false)
	}
	if err := output.CheckInput(input, c.Config.Extension); err != nil {
		return fail(err, false)
	}
	res.Output = output.Path(input, c.Config.OutputDir, c.Config.Suffix)
	rep.Output = res.Output

	lines, err := readLines(input)
	if err != nil {
		return fail(err, true)
	}
	if err := ctx.Err(); err != nil {
		return fail(err, true)
	}

	d := dxf.Parse(lines, c.Config.EntityKinds())
	res.Drawing = d
	rep.Record(d)
	c.Metrics.RecordDrawing(d)
	ux.Parsed(d.LayerCount(), len(d.Entities()), input)
	ux.Skipped(d.Skipped())
	log.Info("parsed drawing",
		zap.Int("layers", d.LayerCount()),
		zap.Int("entities", len(d.Entities())),
		zap.Any("skipped", d.Skipped()))

	out := dxf.Rebuild(d, c.Templates, dxf.RebuildOptions{HandleBase: c.Config.HandleBaseValue()})
	res.Rebuilt = out
	rep.Synthesized = out.Synthesized

	res.Warnings = append(append([]dxf.Warning{}, c.TemplateWarnings...), out.Warnings...)
	for _, w := range res.Warnings {
		log.Warn(w.Message, zap.String("kind", string(w.Kind)))
		ux.Warn(w)
	}
	rep.AddWarnings(res.Warnings...)
	c.Metrics.RecordWarnings(res.Warnings...)

	if err := ctx.Err(); err != nil {
		return fail(err, true)
	}
	if err := output.WriteFile(res.Output, []byte(out.Text)); err != nil {
		return fail(fmt.Errorf("%w: %s: %v", ErrOutputWrite, res.Output, err), true)
	}
	c.Metrics.RecordOutput(out)
	ux.Saved(res.Output)

	res.Duration = time.Since(start)
	rep.Finish(nil)
	c.saveReport(log, rep, res)
	c.finishMetrics(log, report.StatusCompleted, res.Duration)
	log.Info("cleaned drawing",
		zap.String("output", res.Output),
		zap.Int("synthesized_handles", out.Synthesized),
		zap.Duration("duration", res.Duration))
	ux.Completed(input, res.Duration)
	return res, nil
}

// Inspect reads and parses input without writing anything.
func (c *Cleaner) Inspect(ctx context.Context, input string) (*dxf.Drawing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := output.CheckInput(input, c.Config.Extension); err != nil {
		return nil, err
	}
	lines, err := readLines(input)
	if err != nil {
		return nil, err
	}
	return dxf.Parse(lines, c.Config.EntityKinds()), nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputUnreadable, err)
	}
	defer f.Close()
	lines, err := dxf.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputUnreadable, path, err)
	}
	return lines, nil
}

// saveReport writes the JSON report when enabled. A failure here is logged
// and does not fail the run.
func (c *Cleaner) saveReport(log *zap.Logger, rep *report.Report, res *Result) {
	if !c.Config.Report {
		return
	}
	path := report.Path(res.Output)
	if err := rep.Save(path); err != nil {
		log.Warn("failed to write report", zap.String("path", path), zap.Error(err))
		return
	}
	res.ReportPath = path
}

func (c *Cleaner) finishMetrics(log *zap.Logger, status string, d time.Duration) {
	c.Metrics.RecordRun(status, d)
	if c.Config.MetricsFile == "" {
		return
	}
	if err := c.Metrics.WriteTextfile(c.Config.MetricsFile); err != nil {
		log.Warn("failed to write metrics", zap.String("path", c.Config.MetricsFile), zap.Error(err))
	}
}
