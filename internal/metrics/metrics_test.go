package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge-barreto/dxfclean/internal/dxf"
)

func drawing(t *testing.T) *dxf.Drawing {
	t.Helper()
	text := strings.Join([]string{
		"0", "SECTION", "2", "ENTITIES",
		"0", "LINE", "8", "0",
		"0", "LINE", "5", "1F", "8", "0",
		"0", "CIRCLE", "8", "0", "40", "1",
		"0", "TEXT", "1", "a",
		"0", "MTEXT", "1", "b",
		"0", "ENDSEC", "0", "EOF",
	}, "\n") + "\n"
	lines, err := dxf.ReadLines(strings.NewReader(text))
	require.NoError(t, err)
	return dxf.Parse(lines, dxf.DefaultEntityKinds())
}

func TestRecorder_Counts(t *testing.T) {
	r := New()
	d := drawing(t)
	r.RecordDrawing(d)
	out := dxf.Rebuild(d, dxf.DefaultTemplates(), dxf.RebuildOptions{})
	r.RecordOutput(out)
	r.RecordWarnings(out.Warnings...)
	r.RecordWarnings(dxf.Warning{Kind: dxf.WarnTemplateMissing}, dxf.Warning{Kind: dxf.WarnTemplateMissing})
	r.RecordRun("completed", 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.EntitiesWritten.WithLabelValues("LINE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.EntitiesWritten.WithLabelValues("CIRCLE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.EntitiesSkipped.WithLabelValues("TEXT")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.EntitiesSkipped.WithLabelValues("MTEXT")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.LayersWritten))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.HandlesGenerated))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.Warnings.WithLabelValues("template-missing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Runs.WithLabelValues("completed")))
	assert.Equal(t, float64(len(out.Text)), testutil.ToFloat64(r.OutputBytes))
}

func TestRecorder_SeparateRegistries(t *testing.T) {
	a, b := New(), New()
	a.RecordRun("failed", time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(a.Runs.WithLabelValues("failed")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Runs.WithLabelValues("failed")))
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := New()
	r.RecordRun("completed", time.Second)
	path := filepath.Join(t.TempDir(), "dxfclean.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `dxfclean_runs_total{status="completed"} 1`)
	assert.Contains(t, string(data), "dxfclean_run_duration_seconds_count 1")
}
