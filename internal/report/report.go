// Package report renders the pull request summary written after a commit.
package report

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
)

// DefaultPath is the report file name, relative to the repository root
const DefaultPath = "PR_suggest.md"

// DefaultTestingNotes is used when no testing notes are given
const DefaultTestingNotes = "N/A"

// DefaultCompatibleApps are listed when no applications are given
var DefaultCompatibleApps = []string{"Web", "Mobile"}

// Group is a titled list of files
type Group struct {
	Title string
	Files []string
}

// Report is the content of a pull request summary
type Report struct {
	Branch         string
	CommitMessage  string
	Files          []string
	TestingNotes   string
	CompatibleApps []string
}

// SQLFiles returns the changed .sql files
func (r *Report) SQLFiles() []string {
	var files []string
	for _, f := range r.Files {
		if isSQL(f) {
			files = append(files, f)
		}
	}
	return files
}

// Report sections and the suffixes they collect. Files matching none go to Otros.
var (
	codeSuffixes = []string{".py", ".js", ".java", ".cpp", ".c", ".h", ".ts"}
	docsSuffixes = []string{".md", ".txt", ".rst"}
)

// Groups splits the files into SQL, code, documentation and the rest.
// Empty groups are omitted.
func (r *Report) Groups() []Group {
	groups := []Group{{Title: "SQL"}, {Title: "Código"}, {Title: "Documentación"}, {Title: "Otros"}}
	for _, f := range r.Files {
		switch {
		case isSQL(f):
			groups[0].Files = append(groups[0].Files, f)
		case hasSuffix(f, codeSuffixes):
			groups[1].Files = append(groups[1].Files, f)
		case hasSuffix(f, docsSuffixes):
			groups[2].Files = append(groups[2].Files, f)
		default:
			groups[3].Files = append(groups[3].Files, f)
		}
	}

	var result []Group
	for _, g := range groups {
		if len(g.Files) > 0 {
			result = append(result, g)
		}
	}
	return result
}

func hasSuffix(f string, suffixes []string) bool {
	lower := strings.ToLower(f)
	for _, suffix := range suffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

func isSQL(f string) bool {
	return strings.HasSuffix(strings.ToLower(f), ".sql")
}

const reportTemplate = `## Descripción

**Rama:** ` + "`{{.Branch}}`" + `  
**Commit:** ` + "`{{or .CommitMessage \"Sin mensaje\"}}`" + `

## Cambios en Base de Datos
{{with .SQLFiles}}**Se modificaron estos archivos SQL:**
{{range .}}- {{.}}
{{end}}{{else}}No hay cambios en base de datos
{{end}}
## Archivos Modificados
{{range .Groups}}
### {{.Title}}
{{range .Files}}- {{.}}
{{end}}{{end}}
## Consideraciones para Testing
{{or .TestingNotes "N/A"}}

## Aplicaciones Compatibles
{{.Apps}}
`

var tmpl = template.Must(template.New("report").Parse(reportTemplate))

// Apps joins the compatible applications, blank names skipped
func (r *Report) Apps() string {
	var apps []string
	for _, app := range r.CompatibleApps {
		if app = strings.TrimSpace(app); app != "" {
			apps = append(apps, app)
		}
	}
	if len(apps) == 0 {
		apps = DefaultCompatibleApps
	}
	return strings.Join(apps, ", ")
}

// Render writes the report as Markdown
func (r *Report) Render(w io.Writer) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r); err != nil {
		return errors.Wrap(err, "failed to render report")
	}
	_, err := io.WriteString(w, strings.TrimSpace(buf.String())+"\n")
	return err
}

// Write renders the report to path on fs, replacing any existing file
func (r *Report) Write(fs afero.Fs, path string) error {
	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "failed to create %s", dir)
		}
	}
	if err := afero.WriteFile(fs, path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
