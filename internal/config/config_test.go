package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ThemeDark, cfg.Theme)
	assert.Equal(t, DefaultZoom, cfg.Zoom)
	assert.Equal(t, DefaultPreviewPort, cfg.PreviewPort)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid light", func(c *Config) { c.Theme = ThemeLight }, nil},
		{"bad theme", func(c *Config) { c.Theme = "sepia" }, ErrInvalidTheme},
		{"zoom too low", func(c *Config) { c.Zoom = 40 }, ErrInvalidZoom},
		{"zoom too high", func(c *Config) { c.Zoom = 400 }, ErrInvalidZoom},
		{"zoom at bounds", func(c *Config) { c.Zoom = MinZoom }, nil},
		{"privileged port", func(c *Config) { c.PreviewPort = 80 }, ErrInvalidPort},
		{"port too high", func(c *Config) { c.PreviewPort = 70000 }, ErrInvalidPort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "theme: light\nzoom: 150\npreviewPort: 4000\nlastDir: /tmp\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, cfg.Theme)
	assert.Equal(t, 150, cfg.Zoom)
	assert.Equal(t, 4000, cfg.PreviewPort)
	assert.Equal(t, "/tmp", cfg.LastDir)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: light\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, cfg.Theme)
	assert.Equal(t, DefaultZoom, cfg.Zoom, "unset fields keep defaults")
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("them: light\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrConfigParse)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("zoom: 9000\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidZoom)
}

func TestStoreAccessors(t *testing.T) {
	s := NewStore(Default(), "")

	assert.Equal(t, ThemeDark, s.Theme())
	s.SetTheme(ThemeLight)
	assert.Equal(t, ThemeLight, s.Theme())

	s.SetZoom(150)
	assert.Equal(t, 150, s.Zoom())

	s.SetLastDir("/somewhere")
	assert.Equal(t, "/somewhere", s.LastDir())

	snap := s.Snapshot()
	assert.Equal(t, ThemeLight, snap.Theme)
	assert.Equal(t, 150, snap.Zoom)
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore(Default(), "")

	// Theme toggles on one goroutine while readers snapshot, mirroring the
	// preview server reading theme off its timer goroutine.
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			if s.Theme() == ThemeDark {
				s.SetTheme(ThemeLight)
			} else {
				s.SetTheme(ThemeDark)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = s.Snapshot()
			_ = s.Theme()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.SetLastDir("/d")
			_ = s.LastDir()
			s.SetZoom(DefaultZoom)
		}
	}()

	wg.Wait()
	assert.Contains(t, []string{ThemeDark, ThemeLight}, s.Theme())
}

func TestStoreSaveUsesExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	s := NewStore(Default(), path)

	s.SetTheme(ThemeLight)
	require.NoError(t, s.Save())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, loaded.Theme)
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.Theme = ThemeLight
	cfg.Zoom = 120
	cfg.LastDir = "/home/user/docs"
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
