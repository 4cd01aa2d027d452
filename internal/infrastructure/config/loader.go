package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read from the loader's filesystem when no -config flag is given
const DefaultConfigFile = "config.yaml"

// ErrUnknownLevelFormat is returned for level files that are neither CSV nor TMX
var ErrUnknownLevelFormat = errors.New("unknown level format")

// Loader loads configuration and level files from an fs.FS
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the
// file keep their default values.
func (l *Loader) LoadConfig(name string) (*Config, error) {
	cfg := Default()
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// Load loads configuration with priority: defaults < file < flags.
// A missing default config file is not an error.
func Load(l *Loader) (*Config, error) {
	name := ConfigPath()
	explicit := name != ""
	if !explicit {
		name = DefaultConfigFile
	}

	cfg, err := l.LoadConfig(name)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		cfg = Default()
	}

	applyFlags(cfg)
	return cfg, nil
}

// LevelData is a parsed level. Rows[0] is the bottom row.
type LevelData struct {
	Name   string
	Width  int
	Height int
	Rows   [][]int
}

// LoadLevel parses the level file described by lc
func (l *Loader) LoadLevel(lc LevelConfig) (*LevelData, error) {
	format := lc.Format
	if format == "" {
		format = strings.TrimPrefix(path.Ext(lc.File), ".")
	}

	var (
		level *LevelData
		err   error
	)
	switch strings.ToLower(format) {
	case "csv":
		level, err = l.loadCSVLevel(lc.File)
	case "tmx":
		level, err = l.loadTMXLevel(lc.File)
	default:
		return nil, fmt.Errorf("level %s: %w: %q", lc.Name, ErrUnknownLevelFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s from %s: %w", lc.Name, l.basePath, err)
	}

	level.Name = lc.Name
	return level, nil
}

// LoadLevels parses every configured level in order
func (l *Loader) LoadLevels(levels []LevelConfig) ([]*LevelData, error) {
	out := make([]*LevelData, 0, len(levels))
	for _, lc := range levels {
		level, err := l.LoadLevel(lc)
		if err != nil {
			return nil, err
		}
		out = append(out, level)
	}
	return out, nil
}
