package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/dxfclean/internal/config"
	"github.com/jorge-barreto/dxfclean/internal/dxf"
	"github.com/jorge-barreto/dxfclean/internal/templates"
	"github.com/jorge-barreto/dxfclean/internal/ux"
)

// TemplateDir is the directory, relative to the config file, that holds the
// editable templates.
const TemplateDir = "templates"

var configTemplate = `# Entity types copied to the cleaned drawing. Everything else is dropped.
entity-types:
  - LINE
  - CIRCLE
  - ARC

# First handle (hex) given to entities that carry none.
handle-base: "32"

output-dir: Output
suffix: _cleaned.dxf

# Header and footer wrapped around the rebuilt content. The header must
# contain the opening of its LAYER table exactly once.
template-dir: ` + TemplateDir + `
header-template: ` + templates.HeaderFile + `
footer-template: ` + templates.FooterFile + `

# Write <output>.report.json next to each cleaned drawing.
report: false

log-level: info
log-format: console
`

// Init writes an example config and the built-in templates into targetDir
// and returns the created paths.
func Init(targetDir string) ([]string, error) {
	configPath := filepath.Join(targetDir, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		return nil, fmt.Errorf("%s already exists in %s", config.FileName, targetDir)
	}

	tplDir := filepath.Join(targetDir, TemplateDir)
	if err := os.MkdirAll(tplDir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", TemplateDir, err)
	}

	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(tplDir, templates.HeaderFile), dxf.MinimalHeader},
		{filepath.Join(tplDir, templates.FooterFile), dxf.MinimalFooter},
		{configPath, configTemplate},
	}

	var created []string
	for _, f := range files {
		if _, err := os.Stat(f.path); err == nil {
			return created, fmt.Errorf("%s already exists", f.path)
		}
		if err := os.WriteFile(f.path, []byte(f.content), 0644); err != nil {
			return created, fmt.Errorf("writing %s: %w", filepath.Base(f.path), err)
		}
		created = append(created, f.path)
	}

	fmt.Fprintf(ux.Out, "\n%s%s✓ Initialized dxfclean in %s%s\n\n", ux.Bold, ux.Green, targetDir, ux.Reset)
	ux.InitHint(created)
	return created, nil
}
