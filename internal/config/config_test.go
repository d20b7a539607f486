package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/icons/src", "/icons/src"},
		{"single trailing slash", "/icons/src/", "/icons/src"},
		{"multiple trailing slashes", "/icons/src///", "/icons/src"},
		{"root path", "/", "/"},
		{"relative path", "Assets.xcassets", "Assets.xcassets"},
		{"relative with slash", "Assets.xcassets/", "Assets.xcassets"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDirArg(tt.in))
		})
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".", cfg.InputDir)
	assert.Equal(t, "./Assets.xcassets", cfg.AssetCatalog)
	assert.True(t, cfg.TemplateRendering, "template rendering is on by default")
	assert.False(t, cfg.Force)
	assert.False(t, cfg.Serial)
	assert.False(t, cfg.SwiftGen)
	assert.Equal(t, 2*time.Minute, cfg.ItemTimeout)
	assert.Equal(t, DefaultConverterPath, cfg.ConverterPath)
	assert.Equal(t, DefaultSwiftGenPath, cfg.SwiftGenPath)
	assert.Equal(t, "swift4", cfg.SwiftGenTemplate)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "sometimes", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_Numbers(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"zero jobs means auto", func(c *Config) { c.Jobs = 0 }, false},
		{"positive jobs", func(c *Config) { c.Jobs = 8 }, false},
		{"negative jobs", func(c *Config) { c.Jobs = -1 }, true},
		{"zero timeout disables", func(c *Config) { c.ItemTimeout = 0 }, false},
		{"negative timeout", func(c *Config) { c.ItemTimeout = -time.Second }, true},
		{"empty converter path", func(c *Config) { c.ConverterPath = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_RequiresPaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputDir = ""
	cfg.AssetCatalog = ""
	assert.Error(t, cfg.Validate(), "empty paths must fail outside --check")

	cfg.CheckOnly = true
	assert.NoError(t, cfg.Validate(), "--check does not need paths")
}

func TestWorkers(t *testing.T) {
	tests := []struct {
		name   string
		serial bool
		jobs   int
		want   int
	}{
		{"serial wins over jobs", true, 8, 1},
		{"explicit jobs", false, 3, 3},
		{"auto uses cpus", false, 0, runtime.NumCPU()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Serial = tt.serial
			cfg.Jobs = tt.jobs
			assert.Equal(t, tt.want, cfg.Workers())
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "svg2asset.yaml")
	body := "input_dir: icons\n" +
		"asset_catalog: Out.xcassets\n" +
		"force: true\n" +
		"icon_names: [a.svg, b.svg]\n" +
		"template_rendering: false\n" +
		"jobs: 4\n" +
		"timeout: 30s\n" +
		"color: never\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg := DefaultConfig()
	require.NoError(t, LoadFile(&cfg, path))

	assert.Equal(t, "icons", cfg.InputDir)
	assert.Equal(t, "Out.xcassets", cfg.AssetCatalog)
	assert.True(t, cfg.Force)
	assert.Equal(t, []string{"a.svg", "b.svg"}, cfg.IconNames)
	assert.False(t, cfg.TemplateRendering)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, 30*time.Second, cfg.ItemTimeout)
	assert.Equal(t, ColorNever, cfg.ColorMode)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, DefaultConverterPath, cfg.ConverterPath)
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	assert.NoError(t, LoadFile(&cfg, ""), "no path is a no-op")
	assert.Error(t, LoadFile(&cfg, filepath.Join(dir, "missing.yaml")))

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("input_directory: x\n"), 0o644))
	assert.Error(t, LoadFile(&cfg, unknown), "unknown keys are rejected")

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	assert.NoError(t, LoadFile(&cfg, empty), "empty file is allowed")
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SVG2ASSET_INPUT_DIR", "/env/icons")
	t.Setenv("SVG2ASSET_SERIAL", "true")
	t.Setenv("SVG2ASSET_ICON_NAMES", "x.svg,y.svg")
	t.Setenv("SVG2ASSET_TIMEOUT", "5s")

	cfg := DefaultConfig()
	require.NoError(t, LoadEnv(&cfg))

	assert.Equal(t, "/env/icons", cfg.InputDir)
	assert.True(t, cfg.Serial)
	assert.Equal(t, []string{"x.svg", "y.svg"}, cfg.IconNames)
	assert.Equal(t, 5*time.Second, cfg.ItemTimeout)
	assert.Equal(t, "./Assets.xcassets", cfg.AssetCatalog, "unset variables keep defaults")
}

func TestLoadEnv_BadValue(t *testing.T) {
	t.Setenv("SVG2ASSET_JOBS", "many")
	cfg := DefaultConfig()
	assert.Error(t, LoadEnv(&cfg))
}

func TestFilePath(t *testing.T) {
	t.Setenv("SVG2ASSET_CONFIG", "")
	assert.Equal(t, "a.yaml", FilePath([]string{"-v", "--config", "a.yaml", "icon.svg"}))
	assert.Equal(t, "b.yaml", FilePath([]string{"--config=b.yaml", "--force"}))
	assert.Equal(t, "", FilePath([]string{"-h"}))

	t.Setenv("SVG2ASSET_CONFIG", "env.yaml")
	assert.Equal(t, "env.yaml", FilePath(nil))
}

func TestBindFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("svg2asset", pflag.ContinueOnError)
	flags := BindFlags(fs, &cfg)

	args := []string{
		"-i", "icons/", "-a", "Out.xcassets/",
		"-f", "-v", "--serial", "--no-template", "--no-color",
		"--icon-names", "a.svg,b.svg", "-j", "2", "--timeout", "10s",
		"c.svg",
	}
	require.NoError(t, fs.Parse(args))
	flags.Apply(fs.Args())

	assert.Equal(t, "icons", cfg.InputDir)
	assert.Equal(t, "Out.xcassets", cfg.AssetCatalog)
	assert.True(t, cfg.Force)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Serial)
	assert.False(t, cfg.TemplateRendering)
	assert.Equal(t, ColorNever, cfg.ColorMode)
	assert.Equal(t, []string{"a.svg", "b.svg", "c.svg"}, cfg.IconNames)
	assert.Equal(t, 2, cfg.Jobs)
	assert.Equal(t, 10*time.Second, cfg.ItemTimeout)
}

func TestBindFlags_LayeredDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AssetCatalog = "FromFile.xcassets"
	cfg.TemplateRendering = false

	fs := pflag.NewFlagSet("svg2asset", pflag.ContinueOnError)
	flags := BindFlags(fs, &cfg)
	require.NoError(t, fs.Parse([]string{"--color"}))
	flags.Apply(fs.Args())

	assert.Equal(t, "FromFile.xcassets", cfg.AssetCatalog, "unset flags keep layered values")
	assert.False(t, cfg.TemplateRendering)
	assert.Equal(t, ColorAlways, cfg.ColorMode)
}

func TestBindFlags_NoSerialOverridesLayers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Serial = true // from YAML or SVG2ASSET_SERIAL

	fs := pflag.NewFlagSet("svg2asset", pflag.ContinueOnError)
	flags := BindFlags(fs, &cfg)
	require.NoError(t, fs.Parse([]string{"--no-serial", "-j", "4"}))
	flags.Apply(fs.Args())

	assert.False(t, cfg.Serial)
	assert.Equal(t, 4, cfg.Workers())
}
