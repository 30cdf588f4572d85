package ux

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jorge-barreto/dxfclean/internal/dxf"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Out receives all progress output.
var Out io.Writer = os.Stdout

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// Processing prints the start of a run for one file.
func Processing(path string) {
	fmt.Fprintf(Out, "%s[%s]%s %sProcessing:%s %s\n",
		Dim, timestamp(), Reset, Bold, Reset, path)
}

// Parsed prints the parse summary.
func Parsed(layers, entities int, path string) {
	fmt.Fprintf(Out, "%s[%s]%s  Parsed %d layers and %d entities from %s\n",
		Dim, timestamp(), Reset, layers, entities, path)
}

// Skipped prints the entity kinds that were dropped.
func Skipped(counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintf(Out, "%s[%s]%s  %sSkipped: %s%s\n",
		Dim, timestamp(), Reset, Dim, formatCounts(counts), Reset)
}

// Warn prints a recovered problem.
func Warn(w dxf.Warning) {
	fmt.Fprintf(Out, "%s[%s]%s  %s⚠ %s%s\n",
		Dim, timestamp(), Reset, Yellow, w, Reset)
}

// Saved prints the output location.
func Saved(path string) {
	fmt.Fprintf(Out, "%s[%s]%s  Cleaned DXF saved to: %s\n",
		Dim, timestamp(), Reset, path)
}

// Completed prints a final success message.
func Completed(path string, duration time.Duration) {
	fmt.Fprintf(Out, "%s[%s]%s  %s✓ Cleaning of %s completed successfully! (%s)%s\n",
		Dim, timestamp(), Reset, Green, path, duration.Round(time.Millisecond), Reset)
}

// Failed prints a final failure message.
func Failed(path, errMsg string) {
	fmt.Fprintf(Out, "%s[%s]%s  %s✗ Cleaning of %s failed: %s%s\n",
		Dim, timestamp(), Reset, Red, path, errMsg, Reset)
}

// InitHint prints where the scaffolded files went.
func InitHint(files []string) {
	fmt.Fprintf(Out, "%sCreated:%s\n", Bold, Reset)
	for _, f := range files {
		fmt.Fprintf(Out, "  %s\n", f)
	}
	fmt.Fprintf(Out, "\n%sNext:%s edit the templates, then run dxfclean clean <file.dxf>\n", Yellow, Reset)
}

func formatCounts(counts map[string]int) string {
	parts := make([]string, 0, len(counts))
	for _, kind := range sortedKeys(counts) {
		parts = append(parts, fmt.Sprintf("%s×%d", kind, counts[kind]))
	}
	return strings.Join(parts, ", ")
}
