package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	t.Setenv("PAGEBUILDER_CONFIG", "")
	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, opts, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.False(t, opts.PrintConfig)
}

func TestLoadFromDefaultLocation(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".config", "pagebuilder", "config.toml"), `
[ui]
panel_width = 40
text_rows = 12
show_footer = false

[log]
file = " /tmp/pb.log "
`)

	cfg, _, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, 40, cfg.UI.PanelWidth)
	require.Equal(t, 12, cfg.UI.TextRows)
	require.False(t, cfg.UI.ShowFooter)
	require.True(t, cfg.UI.AltScreen)
	require.Equal(t, "/tmp/pb.log", cfg.Log.File)
}

func TestLoadIgnoresXDGConfigHome(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "xdg", "pagebuilder", "config.toml"), "[ui]\npanel_width = 50\n")

	cfg, _, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, Default().UI.PanelWidth, cfg.UI.PanelWidth)
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, "[ui]\npanel_width = 40\ntext_rows = 10\n")
	t.Setenv("PAGEBUILDER_UI_TEXT_ROWS", "5")

	cfg, _, err := Load([]string{"--config", path, "--panel-width", "50", "--log-file", "debug.log"})
	require.NoError(t, err)
	require.Equal(t, 50, cfg.UI.PanelWidth, "flag beats file")
	require.Equal(t, 5, cfg.UI.TextRows, "env beats file")
	require.Equal(t, "debug.log", cfg.Log.File)
}

func TestLoadConfigPathFromEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "env.toml")
	writeFile(t, path, "[ui]\ntext_rows = 4\n")
	t.Setenv("PAGEBUILDER_CONFIG", path)

	cfg, _, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.UI.TextRows)
}

func TestLoadErrors(t *testing.T) {
	dir := isolate(t)

	_, _, err := Load([]string{"--config", filepath.Join(dir, "missing.toml")})
	require.ErrorContains(t, err, "read config")

	_, _, err = Load([]string{"--no-such-flag"})
	require.ErrorContains(t, err, "parse flags")

	bad := filepath.Join(dir, "bad.toml")
	writeFile(t, bad, "[ui\npanel_width = ")
	_, _, err = Load([]string{"--config", bad})
	require.Error(t, err)
}

func TestLoadPrintConfigFlag(t *testing.T) {
	isolate(t)
	_, opts, err := Load([]string{"--print-config"})
	require.NoError(t, err)
	require.True(t, opts.PrintConfig)
}

func TestNormalizeClampsOutOfRange(t *testing.T) {
	cfg := Default()
	cfg.UI.PanelWidth = 2
	cfg.UI.TextRows = 99
	got := Normalize(cfg)
	require.Equal(t, Default().UI.PanelWidth, got.UI.PanelWidth)
	require.Equal(t, Default().UI.TextRows, got.UI.TextRows)
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Log.File = "/var/tmp/pb.log"

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, cfg))
	require.Contains(t, buf.String(), "panel_width = 36")

	var back Config
	_, err := toml.Decode(buf.String(), &back)
	require.NoError(t, err)
	require.Equal(t, cfg, back)
}
