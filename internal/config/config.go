package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidTheme   = errors.New("invalid theme")
	ErrInvalidZoom    = errors.New("invalid zoom")
	ErrInvalidPort    = errors.New("invalid preview port")
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	MinZoom  = 50
	MaxZoom  = 300
	ZoomStep = 10

	DefaultZoom        = 100
	DefaultPreviewPort = 3333
)

// Config holds user preferences persisted between runs.
type Config struct {
	Theme       string `yaml:"theme"`       // "dark" or "light"
	Zoom        int    `yaml:"zoom"`        // percent, 50-300
	PreviewPort int    `yaml:"previewPort"` // browser live preview port
	LastDir     string `yaml:"lastDir"`     // starting directory for file dialogs
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme:       ThemeDark,
		Zoom:        DefaultZoom,
		PreviewPort: DefaultPreviewPort,
	}
}

// Validate checks value ranges before the config is applied.
func (c *Config) Validate() error {
	switch c.Theme {
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("%w: %q (must be dark or light)", ErrInvalidTheme, c.Theme)
	}

	if c.Zoom < MinZoom || c.Zoom > MaxZoom {
		return fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidZoom, c.Zoom, MinZoom, MaxZoom)
	}

	if c.PreviewPort < 1024 || c.PreviewPort > 65535 {
		return fmt.Errorf("%w: %d (must be 1024-65535)", ErrInvalidPort, c.PreviewPort)
	}

	return nil
}

// Load reads a config from an explicit path, or from the standard location
// when path is empty. A missing file at the standard location is not an
// error: defaults are returned instead.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = defaultPath()
		if err != nil {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config to the standard location, creating the
// directory if needed.
func (c *Config) Save() error {
	path, err := defaultPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// SaveTo writes the config to an explicit path. Used by tests.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Store guards the live configuration. The Fyne goroutine writes theme
// and zoom, file-dialog workers write the last directory, and the preview
// server reads the theme from its timer goroutine, so all access goes
// through the lock.
type Store struct {
	mu   sync.RWMutex
	cfg  Config
	path string // explicit save target; empty means the standard location
}

// NewStore wraps a loaded config. path, when non-empty, is where Save
// writes instead of the standard location.
func NewStore(cfg *Config, path string) *Store {
	return &Store{cfg: *cfg, path: path}
}

// Snapshot returns a copy of the current values.
func (s *Store) Snapshot() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

func (s *Store) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Theme
}

func (s *Store) SetTheme(theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Theme = theme
}

func (s *Store) Zoom() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Zoom
}

func (s *Store) SetZoom(zoom int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Zoom = zoom
}

func (s *Store) PreviewPort() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.PreviewPort
}

func (s *Store) LastDir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.LastDir
}

func (s *Store) SetLastDir(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.LastDir = dir
}

// Save persists a snapshot of the current values.
func (s *Store) Save() error {
	s.mu.RLock()
	cfg := s.cfg
	path := s.path
	s.mu.RUnlock()

	if path == "" {
		return cfg.Save()
	}
	return cfg.SaveTo(path)
}

func defaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "mdflex", "config.yaml"), nil
}
