package report

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expectedFull = "## Descripción\n\n" +
	"**Rama:** `feature/login`  \n" +
	"**Commit:** `feat: login form`\n\n" +
	"## Cambios en Base de Datos\n" +
	"**Se modificaron estos archivos SQL:**\n" +
	"- db/001_users.SQL\n\n" +
	"## Archivos Modificados\n\n" +
	"### SQL\n- db/001_users.SQL\n\n" +
	"### Código\n- login.test.ts\n\n" +
	"### Documentación\n- README.md\n\n" +
	"### Otros\n- main.go\n- Makefile\n\n" +
	"## Consideraciones para Testing\n" +
	"probar login con usuario inválido\n\n" +
	"## Aplicaciones Compatibles\n" +
	"Web, Mobile, Desktop\n"

func TestRender_Full(t *testing.T) {
	r := &Report{
		Branch:         "feature/login",
		CommitMessage:  "feat: login form",
		Files:          []string{"db/001_users.SQL", "main.go", "README.md", "login.test.ts", "Makefile"},
		TestingNotes:   "probar login con usuario inválido",
		CompatibleApps: []string{"Web", "Mobile", " ", "Desktop"},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf))
	assert.Equal(t, expectedFull, buf.String())
}

func TestRender_Defaults(t *testing.T) {
	r := &Report{Branch: "main", Files: []string{"app.go"}}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "**Commit:** `Sin mensaje`")
	assert.Contains(t, out, "## Cambios en Base de Datos\nNo hay cambios en base de datos\n\n## Archivos Modificados")
	assert.Contains(t, out, "## Consideraciones para Testing\nN/A\n")
	assert.Contains(t, out, "## Aplicaciones Compatibles\nWeb, Mobile\n")
	assert.NotContains(t, out, "### SQL")
	assert.NotContains(t, out, "### Otros")
}

func TestGroups(t *testing.T) {
	r := &Report{Files: []string{"notes.txt", "style.css", "q.sql", "a.py"}}

	groups := r.Groups()
	require.Len(t, groups, 4)
	assert.Equal(t, Group{Title: "SQL", Files: []string{"q.sql"}}, groups[0])
	assert.Equal(t, Group{Title: "Código", Files: []string{"a.py"}}, groups[1])
	assert.Equal(t, Group{Title: "Documentación", Files: []string{"notes.txt"}}, groups[2])
	assert.Equal(t, Group{Title: "Otros", Files: []string{"style.css"}}, groups[3])

	assert.Empty(t, (&Report{}).Groups())
	assert.Equal(t, []string{"q.sql"}, r.SQLFiles())
}

func TestGroups_OnlyListedSuffixes(t *testing.T) {
	r := &Report{Files: []string{"server.go", "app.rb", "guide.pdf", "spec.docx", "lib.H", "notes.RST"}}

	assert.Equal(t, []Group{
		{Title: "Código", Files: []string{"lib.H"}},
		{Title: "Documentación", Files: []string{"notes.RST"}},
		{Title: "Otros", Files: []string{"server.go", "app.rb", "guide.pdf", "spec.docx"}},
	}, r.Groups())
	assert.Empty(t, r.SQLFiles())
}

func TestWrite_Overwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/repo/PR_suggest.md", []byte("old content that is much longer than the new one"), 0644))

	r := &Report{Branch: "main", CommitMessage: "chore: x"}
	require.NoError(t, r.Write(fs, "/repo/PR_suggest.md"))

	data, err := afero.ReadFile(fs, "/repo/PR_suggest.md")
	require.NoError(t, err)
	assert.NotContains(t, string(data), "old content")
	assert.Contains(t, string(data), "`chore: x`")
}

func TestWrite_CreatesDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, (&Report{Branch: "main"}).Write(fs, "out/reports/"+DefaultPath))

	exists, err := afero.Exists(fs, "out/reports/"+DefaultPath)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestWrite_ReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	err := (&Report{Branch: "main"}).Write(fs, DefaultPath)
	assert.Error(t, err)
}
