package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "yell.yaml", "log_level: ERROR\nworkers: 2\n")
	first := writeFile(t, dir, "first.md", "[yell, class=loud]\nhello world\n")
	second := writeFile(t, dir, "second.md", "quiet\n\n[yell]\ncafé\n")

	out, err := execute(t, "", "render", "-c", cfgPath, first, second)
	require.NoError(t, err)
	assert.Equal(t,
		"<p class=\"loud\">HELLO WORLD</p>\n<p>quiet</p>\n<p>CAFÉ</p>\n",
		out)
}

func TestRender_Stdin(t *testing.T) {
	t.Parallel()

	cfgPath := writeFile(t, t.TempDir(), "yell.yaml", "log_level: ERROR\n")
	out, err := execute(t, "[yell]\nfrom stdin\n", "render", "-c", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "<p>FROM STDIN</p>\n", out)
}

func TestRender_MarkdownFormat(t *testing.T) {
	t.Parallel()

	cfgPath := writeFile(t, t.TempDir(), "yell.yaml", "log_level: ERROR\n")
	out, err := execute(t, "[yell]\nhello\n", "render", "-c", cfgPath, "--format", "markdown")
	require.NoError(t, err)
	assert.Equal(t, "HELLO", strings.TrimSpace(out))
}

func TestRender_TurkishLocale(t *testing.T) {
	t.Parallel()

	cfgPath := writeFile(t, t.TempDir(), "yell.yaml", "log_level: ERROR\nlocale: tr\n")
	out, err := execute(t, "[yell]\nistanbul\n", "render", "-c", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "<p>İSTANBUL</p>\n", out)
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "yell.yaml", "log_level: ERROR\n")

	_, err := execute(t, "", "render", "-c", cfgPath, filepath.Join(dir, "missing.md"))
	require.ErrorContains(t, err, "failed to read")

	_, err = execute(t, "", "render", "-c", cfgPath, "--format", "pdf")
	require.ErrorContains(t, err, "unsupported output format")

	_, err = execute(t, "", "render", "-c", filepath.Join(dir, "missing.yaml"))
	require.ErrorContains(t, err, "failed to load configuration file")
}

func TestBlocks(t *testing.T) {
	t.Parallel()

	cfgPath := writeFile(t, t.TempDir(), "yell.yaml", "log_level: ERROR\n")
	out, err := execute(t, "", "blocks", "-c", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "yell\n", out)
}

func TestLoadOrDefaultConfig(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := loadOrDefaultConfig(missing, false)
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	_, err = loadOrDefaultConfig(missing, true)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := RootCommand()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}
