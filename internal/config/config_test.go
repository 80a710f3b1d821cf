package config

import (
	"context"
	"io/fs"
	"testing"

	"github.com/dshills/edj/internal/config/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

func envLoader(vars ...string) *loader.EnvLoader {
	l := loader.NewEnvLoader(loader.EnvPrefix)
	l.SetEnviron(func() []string { return vars })
	return l
}

func TestNew_Defaults(t *testing.T) {
	c := New(WithEnvLoader(nil))

	assert.Equal(t, EditorConfig{Prompt: DefaultPrompt, UndoLimit: DefaultUndoLimit}, c.Editor())
	assert.Equal(t, NavigationConfig{MaxJumps: DefaultMaxJumps, Policy: DefaultJumpPolicy}, c.Navigation())
	assert.Equal(t, DefaultLogLevel, c.Logging().Level)
	assert.Empty(t, c.ConfigErrors())
}

func TestConfig_LoadPrecedence(t *testing.T) {
	files := memFS{"/etc/edj.toml": `
[editor]
prompt = "*"
undoLimit = 10

[navigation]
maxJumps = 5
`}

	c := New(
		WithFile("/etc/edj.toml"),
		WithFileSystem(files),
		WithEnvLoader(envLoader("EDJ_UNDO_LIMIT=20", "EDJ_JUMP_POLICY=log")),
	)
	require.NoError(t, c.Load(context.Background()))

	ed := c.Editor()
	assert.Equal(t, "*", ed.Prompt, "file overrides default")
	assert.Equal(t, 20, ed.UndoLimit, "env overrides file")

	nav := c.Navigation()
	assert.Equal(t, 5, nav.MaxJumps)
	assert.Equal(t, "log", nav.Policy)

	src, ok := c.SourceOf("editor.undoLimit")
	require.True(t, ok)
	assert.Equal(t, SourceEnv, src)
	src, _ = c.SourceOf("editor.prompt")
	assert.Equal(t, SourceFile, src)
	src, _ = c.SourceOf("logging.level")
	assert.Equal(t, SourceDefault, src)
	_, ok = c.SourceOf("editor.missing")
	assert.False(t, ok)
}

func TestConfig_LoadYAML(t *testing.T) {
	files := memFS{"/edj.yml": "logging:\n  level: debug\n"}
	c := New(WithFile("/edj.yml"), WithFileSystem(files), WithEnvLoader(nil))
	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, "debug", c.Logging().Level)
}

func TestConfig_LoadMissingFile(t *testing.T) {
	c := New(WithFile("/nope.toml"), WithFileSystem(memFS{}), WithEnvLoader(nil))
	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, DefaultUndoLimit, c.Editor().UndoLimit)
}

func TestConfig_LoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		files memFS
		is    error
	}{
		{"unsupported", "/edj.ini", memFS{}, loader.ErrUnsupportedFormat},
		{"parse", "/edj.toml", memFS{"/edj.toml": "editor = ["}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(WithFile(tt.path), WithFileSystem(tt.files), WithEnvLoader(nil))
			err := c.Load(context.Background())
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestConfig_Set(t *testing.T) {
	c := New(WithEnvLoader(envLoader("EDJ_LOG_LEVEL=info")))
	require.NoError(t, c.Load(context.Background()))

	require.NoError(t, c.Set("logging.level", "error"))
	assert.Equal(t, "error", c.Logging().Level, "flags override env")

	// Reloading keeps the flags layer.
	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, "error", c.Logging().Level)

	assert.ErrorIs(t, c.Set("", 1), ErrInvalidPath)
	assert.ErrorIs(t, c.Set("editor.", 1), ErrInvalidPath)
	require.NoError(t, c.Set("editor.prompt", ">"))
	assert.ErrorIs(t, c.Set("editor.prompt.x", 1), ErrInvalidPath, "cannot descend into a scalar")
}

func TestConfig_Getters(t *testing.T) {
	c := New(WithEnvLoader(nil))

	s, err := c.GetString("editor.prompt")
	require.NoError(t, err)
	assert.Equal(t, DefaultPrompt, s)

	n, err := c.GetInt("navigation.maxJumps")
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxJumps, n)

	_, err = c.GetInt("editor.prompt")
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = c.GetBool("editor.none")
	assert.ErrorIs(t, err, ErrSettingNotFound)

	require.NoError(t, c.Set("editor.flag", true))
	b, err := c.GetBool("editor.flag")
	require.NoError(t, err)
	assert.True(t, b)
}

func TestConfig_TypeMismatchRecorded(t *testing.T) {
	files := memFS{"/edj.toml": "[editor]\nundoLimit = \"lots\"\n"}
	c := New(WithFile("/edj.toml"), WithFileSystem(files), WithEnvLoader(nil))
	require.NoError(t, c.Load(context.Background()))

	assert.Equal(t, DefaultUndoLimit, c.Editor().UndoLimit)
	errs := c.ConfigErrors()
	require.Contains(t, errs, "editor.undoLimit")

	var typeErr *TypeError
	require.ErrorAs(t, errs["editor.undoLimit"], &typeErr)
	assert.Equal(t, "int", typeErr.Expected)
	assert.Equal(t, "string", typeErr.Actual)
}

func TestConfig_MergedIsCopy(t *testing.T) {
	c := New(WithEnvLoader(nil))
	m := c.Merged()
	m["editor"].(map[string]any)["prompt"] = "changed"
	assert.Equal(t, DefaultPrompt, c.Editor().Prompt)
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "default", SourceDefault.String())
	assert.Equal(t, "file", SourceFile.String())
	assert.Equal(t, "env", SourceEnv.String())
	assert.Equal(t, "flags", SourceFlags.String())
	assert.Equal(t, "unknown", Source(99).String())
}
