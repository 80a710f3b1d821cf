package config

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dshills/edj/internal/config/loader"
)

// Source identifies where a configuration layer came from.
type Source uint8

const (
	// SourceDefault is the built-in defaults layer.
	SourceDefault Source = iota
	// SourceFile is a configuration file.
	SourceFile
	// SourceEnv is the environment.
	SourceEnv
	// SourceFlags holds values set at runtime, typically from command line flags.
	SourceFlags
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceFile:
		return "file"
	case SourceEnv:
		return "env"
	case SourceFlags:
		return "flags"
	default:
		return "unknown"
	}
}

// Config provides layered access to the edj configuration.
// Layers are applied in Source order; later layers override earlier ones.
type Config struct {
	mu sync.RWMutex

	layers [SourceFlags + 1]map[string]any
	merged map[string]any

	path string
	fs   loader.FileSystem
	env  *loader.EnvLoader

	// configErrors stores type mismatches met by the section accessors.
	configErrors map[string]error
}

// Option configures a Config instance.
type Option func(*Config)

// WithFile sets the configuration file to load. The format is chosen by extension.
func WithFile(path string) Option {
	return func(c *Config) {
		c.path = path
	}
}

// WithFileSystem sets the file system used to read configuration files.
func WithFileSystem(fs loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fs
	}
}

// WithEnvLoader replaces the environment loader. A nil loader disables
// environment overrides.
func WithEnvLoader(l *loader.EnvLoader) Option {
	return func(c *Config) {
		c.env = l
	}
}

// New creates a Config holding only the built-in defaults.
func New(opts ...Option) *Config {
	c := &Config{
		fs:  loader.DefaultFS(),
		env: loader.NewEnvLoader(loader.EnvPrefix),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.layers[SourceDefault] = defaultConfig()
	c.merge()
	return c
}

// Load reads the configuration file and environment, replacing the file and
// env layers. A missing file is not an error.
func (c *Config) Load(_ context.Context) error {
	var fileData map[string]any
	if c.path != "" {
		l, err := loader.ForPath(c.fs, c.path)
		if err != nil {
			return err
		}
		fileData, err = l.Load()
		if err != nil {
			return fmt.Errorf("loading %s: %w", c.path, err)
		}
	}

	var envData map[string]any
	if c.env != nil {
		var err error
		envData, err = c.env.Load()
		if err != nil {
			return fmt.Errorf("loading environment: %w", err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.layers[SourceFile] = fileData
	c.layers[SourceEnv] = envData
	c.merge()
	return nil
}

// merge rebuilds the merged view. Caller must hold the lock or own c.
func (c *Config) merge() {
	merged := make(map[string]any)
	for _, layer := range c.layers {
		merged = loader.DeepMerge(merged, cloneMap(layer))
	}
	c.merged = merged
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return loader.GetByPath(c.merged, path)
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetInt returns an integer value at the given path.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		return int(val), nil
	default:
		return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
	}
}

// GetBool returns a boolean value at the given path.
func (c *Config) GetBool(path string) (bool, error) {
	v, ok := c.Get(path)
	if !ok {
		return false, ErrSettingNotFound
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
	}
	return b, nil
}

// Set stores value at path in the flags layer, overriding every other source.
func (c *Config) Set(path string, value any) error {
	if path == "" || strings.HasPrefix(path, ".") || strings.HasSuffix(path, ".") {
		return ErrInvalidPath
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.layers[SourceFlags] == nil {
		c.layers[SourceFlags] = make(map[string]any)
	}
	if err := setPath(c.layers[SourceFlags], path, value); err != nil {
		return err
	}
	c.merge()
	return nil
}

// SourceOf reports which layer supplies the effective value at path.
func (c *Config) SourceOf(path string) (Source, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for s := SourceFlags; ; s-- {
		if _, ok := loader.GetByPath(c.layers[s], path); ok {
			return s, true
		}
		if s == SourceDefault {
			return 0, false
		}
	}
}

// Merged returns a copy of the merged configuration.
func (c *Config) Merged() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneMap(c.merged)
}

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	return map[string]any{
		"editor": map[string]any{
			"prompt":    DefaultPrompt,
			"undoLimit": int64(DefaultUndoLimit),
		},
		"navigation": map[string]any{
			"maxJumps": int64(DefaultMaxJumps),
			"policy":   DefaultJumpPolicy,
		},
		"logging": map[string]any{
			"level": DefaultLogLevel,
		},
	}
}

// setPath sets a value in a nested map using a dot-separated path.
func setPath(m map[string]any, path string, value any) error {
	parts := strings.Split(path, ".")
	current := m
	for _, part := range parts[:len(parts)-1] {
		if part == "" {
			return ErrInvalidPath
		}
		next, ok := current[part]
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		nextMap, ok := next.(map[string]any)
		if !ok {
			return ErrInvalidPath
		}
		current = nextMap
	}

	current[parts[len(parts)-1]] = value
	return nil
}

func cloneMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		if m, ok := v.(map[string]any); ok {
			dst[k] = cloneMap(m)
			continue
		}
		dst[k] = v
	}
	return dst
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []any:
		return "[]any"
	case map[string]any:
		return "map"
	default:
		return "unknown"
	}
}
