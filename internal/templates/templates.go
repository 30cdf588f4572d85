package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/jorge-barreto/dxfclean/internal/dxf"
)

// Default file names, looked up in the template directory.
const (
	HeaderFile = "dxf_header_header.txt"
	FooterFile = "dxf_footer.txt"
)

// Load reads the header and footer templates. A template that cannot be
// read is replaced by the built-in one and reported as a warning; Load
// itself never fails.
func Load(headerPath, footerPath string) (dxf.Templates, []dxf.Warning) {
	var warnings []dxf.Warning

	header, w := load("header", headerPath, dxf.MinimalHeader)
	if w != nil {
		warnings = append(warnings, *w)
	}
	footer, w := load("footer", footerPath, dxf.MinimalFooter)
	if w != nil {
		warnings = append(warnings, *w)
	}
	return dxf.Templates{Header: header, Footer: footer}, warnings
}

func load(kind, path, builtin string) (string, *dxf.Warning) {
	if path == "" {
		return builtin, &dxf.Warning{
			Kind:    dxf.WarnTemplateMissing,
			Message: fmt.Sprintf("no %s template configured; using built-in minimal %s", kind, kind),
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		reason := err.Error()
		if errors.Is(err, fs.ErrNotExist) {
			reason = "not found"
		}
		return builtin, &dxf.Warning{
			Kind:    dxf.WarnTemplateMissing,
			Message: fmt.Sprintf("%s template %s: %s; using built-in minimal %s", kind, path, reason, kind),
		}
	}
	return normalize(string(data)), nil
}

// normalize converts CRLF and lone CR line endings to LF so the header
// marker and handle scanning see the same text on every platform.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
