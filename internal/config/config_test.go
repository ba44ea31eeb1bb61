package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "widgets.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[dropdown]
items = ["a", "b", "c"]
default_selected = 1

[modal]
close_on_escape = false

[tabs]
labels = ["One", "Two"]
default_index = 1
orientation = "vertical"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, cfg.Dropdown.Items)
	assert.Equal(t, 1, cfg.Dropdown.DefaultSelected)
	assert.Equal(t, "Fruit", cfg.Dropdown.Label, "unset fields keep defaults")
	assert.False(t, cfg.Modal.CloseOnEscape)
	assert.True(t, cfg.Modal.CloseOnOutsideClick)
	assert.Equal(t, []string{"One", "Two"}, cfg.Tabs.Labels)
	assert.Equal(t, "vertical", cfg.Tabs.Orientation)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := writeConfig(t, "[tabs\nlabels = ")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, `
[tabs]
labels = ["One"]
default_index = 4
orientation = "diagonal"
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTabIndex)
	assert.ErrorIs(t, err, ErrOrientation)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Tabs.Labels = nil
	assert.ErrorIs(t, cfg.Validate(), ErrNoTabs)

	cfg = Default()
	cfg.Dropdown.DefaultSelected = len(cfg.Dropdown.Items)
	assert.ErrorIs(t, cfg.Validate(), ErrDropdownSelection)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	cfg := Default()
	cfg.Tabs.DefaultIndex = 2

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Tabs.DefaultIndex)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dropdown:
  items: [x, y]
tabs:
  labels: [Only]
  orientation: vertical
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, cfg.Dropdown.Items)
	assert.Equal(t, []string{"Only"}, cfg.Tabs.Labels)
	assert.Equal(t, "vertical", cfg.Tabs.Orientation)
	assert.True(t, cfg.Modal.CloseOnEscape, "unset fields keep defaults")
}

func TestSaveThenLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yml")
	cfg := Default()
	cfg.Modal.Title = "Help"

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
