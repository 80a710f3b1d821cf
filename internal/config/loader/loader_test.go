package loader

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MemFS is an in-memory file system for testing.
type MemFS map[string]string

func (m MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

func TestTOMLLoader_Load(t *testing.T) {
	memfs := MemFS{"/edj.toml": `
[editor]
prompt = ":"
undoLimit = 50

[navigation]
policy = "log"
`}

	config, err := NewTOMLLoaderWithFS(memfs, "/edj.toml").Load()
	require.NoError(t, err)

	v, ok := GetByPath(config, "editor.undoLimit")
	require.True(t, ok)
	assert.Equal(t, int64(50), v)

	v, _ = GetByPath(config, "navigation.policy")
	assert.Equal(t, "log", v)
}

func TestTOMLLoader_LoadNonExistent(t *testing.T) {
	config, err := NewTOMLLoaderWithFS(MemFS{}, "/nonexistent.toml").Load()
	require.NoError(t, err, "missing file is not an error")
	assert.Nil(t, config)
}

func TestTOMLLoader_LoadInvalid(t *testing.T) {
	memfs := MemFS{"/invalid.toml": "[editor\nprompt = 4\n"}

	_, err := NewTOMLLoaderWithFS(memfs, "/invalid.toml").Load()
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "/invalid.toml", parseErr.Path)
	assert.Positive(t, parseErr.Line)
	assert.Contains(t, parseErr.Error(), "/invalid.toml at line")
}

func TestTOMLLoader_LoadFromReader(t *testing.T) {
	config, err := (&TOMLLoader{}).LoadFromReader(strings.NewReader(`prompt = "> "`))
	require.NoError(t, err)
	assert.Equal(t, "> ", config["prompt"])
}

func TestTOMLLoader_Includes(t *testing.T) {
	memfs := MemFS{
		"/cfg/edj.toml": `
"@include" = "base.toml"
[editor]
prompt = "main"
`,
		"/cfg/base.toml": `
[editor]
prompt = "base"
undoLimit = 10
`,
	}

	config, err := NewTOMLLoaderWithFS(memfs, "/cfg/edj.toml").Load()
	require.NoError(t, err)

	prompt, _ := GetByPath(config, "editor.prompt")
	limit, _ := GetByPath(config, "editor.undoLimit")
	assert.Equal(t, "main", prompt, "including file wins")
	assert.Equal(t, int64(10), limit)
	_, hasDirective := config["@include"]
	assert.False(t, hasDirective)
}

func TestTOMLLoader_IncludeCycle(t *testing.T) {
	memfs := MemFS{"/a.toml": `"@include" = "a.toml"`}
	_, err := NewTOMLLoaderWithFS(memfs, "/a.toml").Load()
	assert.ErrorContains(t, err, "include depth exceeded")
}

func TestYAMLLoader_Load(t *testing.T) {
	memfs := MemFS{"/edj.yaml": `
editor:
  prompt: "*"
  undoLimit: 20
logging:
  level: debug
`}

	config, err := NewYAMLLoaderWithFS(memfs, "/edj.yaml").Load()
	require.NoError(t, err)

	limit, _ := GetByPath(config, "editor.undoLimit")
	assert.Equal(t, int64(20), limit)
	level, _ := GetByPath(config, "logging.level")
	assert.Equal(t, "debug", level)
}

func TestYAMLLoader_Invalid(t *testing.T) {
	memfs := MemFS{"/bad.yml": "editor: [unclosed\n"}
	_, err := NewYAMLLoaderWithFS(memfs, "/bad.yml").Load()

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    any
		wantErr bool
	}{
		{"edj.toml", &TOMLLoader{}, false},
		{"edj.YAML", &YAMLLoader{}, false},
		{"edj.yml", &YAMLLoader{}, false},
		{"edj.json", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			l, err := ForPath(MemFS{}, tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, l)
		})
	}
}

func TestEnvLoader_Load(t *testing.T) {
	l := NewEnvLoader(EnvPrefix)
	l.environ = func() []string {
		return []string{
			"EDJ_PROMPT=>",
			"EDJ_MAX_JUMPS=7",
			"EDJ_EDITOR_UNDO_LIMIT=33",
			"EDJ_FLAG=on",
			"HOME=/root",
		}
	}

	config, err := l.Load()
	require.NoError(t, err)

	v, _ := GetByPath(config, "editor.prompt")
	assert.Equal(t, ">", v)
	v, _ = GetByPath(config, "navigation.maxJumps")
	assert.Equal(t, int64(7), v)
	v, _ = GetByPath(config, "editor.undoLimit")
	assert.Equal(t, int64(33), v, "unmapped variables map by name")
	assert.Equal(t, true, config["flag"])
	_, ok := config["home"]
	assert.False(t, ok)
}

func TestEnvLoader_AddMapping(t *testing.T) {
	l := NewEnvLoaderWithMapping(EnvPrefix, nil)
	l.AddMapping("EDJ_P", "editor.prompt")
	l.environ = func() []string { return []string{"EDJ_P=$"} }

	config, err := l.Load()
	require.NoError(t, err)
	v, _ := GetByPath(config, "editor.prompt")
	assert.Equal(t, "$", v)
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{"editor": map[string]any{"prompt": "a", "undoLimit": int64(1)}}
	src := map[string]any{"editor": map[string]any{"prompt": "b"}, "logging": "x"}

	got := DeepMerge(dst, src)
	prompt, _ := GetByPath(got, "editor.prompt")
	limit, _ := GetByPath(got, "editor.undoLimit")
	assert.Equal(t, "b", prompt)
	assert.Equal(t, int64(1), limit)
	assert.Equal(t, "x", got["logging"])

	assert.NotNil(t, DeepMerge(nil, nil))
}
