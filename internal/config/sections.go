package config

// Section accessor methods return snapshot structs. Mutating the returned
// struct does not modify the underlying configuration. Use Config.Set()
// to update configuration values.

// Default values for every setting.
const (
	DefaultPrompt     = ""
	DefaultUndoLimit  = 1000
	DefaultMaxJumps   = 100
	DefaultJumpPolicy = "edit"
	DefaultLogLevel   = "warn"
)

// EditorConfig provides type-safe access to editor settings.
type EditorConfig struct {
	// Prompt is printed before reading each command. Empty disables it.
	Prompt string

	// UndoLimit caps the number of undo steps kept. Zero or less means unlimited.
	UndoLimit int
}

// NavigationConfig provides type-safe access to jump list settings.
type NavigationConfig struct {
	// MaxJumps caps the number of remembered locations.
	MaxJumps int

	// Policy selects what a new jump does to forward history ("edit" or "log").
	Policy string
}

// LoggingConfig provides type-safe access to logging settings.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string
}

// Editor returns type-safe access to editor settings.
func (c *Config) Editor() EditorConfig {
	return EditorConfig{
		Prompt:    c.getStringOr("editor.prompt", DefaultPrompt),
		UndoLimit: c.getIntOr("editor.undoLimit", DefaultUndoLimit),
	}
}

// Navigation returns type-safe access to jump list settings.
func (c *Config) Navigation() NavigationConfig {
	return NavigationConfig{
		MaxJumps: c.getIntOr("navigation.maxJumps", DefaultMaxJumps),
		Policy:   c.getStringOr("navigation.policy", DefaultJumpPolicy),
	}
}

// Logging returns type-safe access to logging settings.
func (c *Config) Logging() LoggingConfig {
	return LoggingConfig{
		Level: c.getStringOr("logging.level", DefaultLogLevel),
	}
}

// These methods only return the default for ErrSettingNotFound.
// Type errors are recorded and return the default to avoid breaking callers.

func (c *Config) getStringOr(path string, defaultValue string) string {
	v, err := c.GetString(path)
	if err != nil {
		if err != ErrSettingNotFound {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getIntOr(path string, defaultValue int) int {
	v, err := c.GetInt(path)
	if err != nil {
		if err != ErrSettingNotFound {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

// recordConfigError keeps the first error seen for each path.
func (c *Config) recordConfigError(path string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.configErrors == nil {
		c.configErrors = make(map[string]error)
	}
	if _, exists := c.configErrors[path]; !exists {
		c.configErrors[path] = err
	}
}

// ConfigErrors returns any configuration errors encountered during access.
func (c *Config) ConfigErrors() map[string]error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.configErrors == nil {
		return nil
	}
	result := make(map[string]error, len(c.configErrors))
	for k, v := range c.configErrors {
		result[k] = v
	}
	return result
}
