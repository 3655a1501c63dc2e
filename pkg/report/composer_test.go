package report

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/sarifmd/pkg/render"
	"github.com/dkoosis/sarifmd/pkg/sarif"
)

func writeSARIF(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestComposer_ComposesSectionsInOrder(t *testing.T) {
	dir := t.TempDir()
	code := writeSARIF(t, dir, "code.sarif", `{"version":"2.1.0","runs":[{"tool":{"driver":{"name":"Snyk Code"}},"results":[]}]}`)
	container := writeSARIF(t, dir, "container.sarif", `{}`)

	var logs bytes.Buffer
	c := &Composer{
		Sections: []Section{{Label: "📝 Code Scan", Path: code}, {Label: "🐳 Container Scan", Path: container}},
		Options:  render.DefaultMarkdownOptions(),
		Now:      func() time.Time { return fixedTime },
		Logger:   slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
	got, err := c.Compose()
	require.NoError(t, err)

	assert.Equal(t, DefaultTitle, got.Title)
	assert.Equal(t, "Last updated: 2024-03-09T13:05:07.123Z\n"+
		"\n## 📝 Code Scan\n### Run 1 - Tool: **Snyk Code**\n\nNo issues found in this run.\n"+
		"\n## 🐳 Container Scan\nNo runs found in the SARIF file.\n", got.Body)

	assert.Contains(t, logs.String(), "tool=\"Snyk Code\"")
	assert.Contains(t, logs.String(), "no runs found in sarif document")
	assert.Contains(t, logs.String(), "size=")
}

func TestComposer_MissingFileIsReadError(t *testing.T) {
	c := &Composer{Sections: []Section{{Label: "Code", Path: filepath.Join(t.TempDir(), "missing.sarif")}}}
	_, err := c.Compose()
	require.Error(t, err)
	assert.True(t, errors.Is(err, sarif.ErrRead))
	assert.Contains(t, err.Error(), `"Code"`)
}

func TestComposer_InvalidJSONIsDecodeError(t *testing.T) {
	dir := t.TempDir()
	good := writeSARIF(t, dir, "good.sarif", `{}`)
	bad := writeSARIF(t, dir, "bad.sarif", `{"runs":`)
	c := &Composer{Sections: []Section{{Label: "A", Path: good}, {Label: "B", Path: bad}}}
	_, err := c.Compose()
	require.Error(t, err)
	assert.True(t, errors.Is(err, sarif.ErrDecode))
	assert.Contains(t, err.Error(), "bad.sarif")
}

func TestRenderSARIF_NilLoggerAndDocument(t *testing.T) {
	assert.Equal(t, "No runs found in the SARIF file.", RenderSARIF(nil, render.DefaultMarkdownOptions(), nil))
}
