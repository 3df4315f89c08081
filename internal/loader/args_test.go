package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Invocation
	}{
		{
			name: "single document",
			args: []string{"bank.json"},
			want: Invocation{Documents: []string{"bank.json"}},
		},
		{
			name: "explicit output",
			args: []string{"bank.json", "out.db"},
			want: Invocation{Documents: []string{"bank.json"}, Output: "out.db"},
		},
		{
			name: "image directories in any position",
			args: []string{"-i", "imgs", "bank.json", "--images", "more", "out.db"},
			want: Invocation{Documents: []string{"bank.json"}, Output: "out.db", ImageDirs: []string{"imgs", "more"}},
		},
		{
			name: "several documents and yaml",
			args: []string{"a.json", "b.yaml", "c.yml"},
			want: Invocation{Documents: []string{"a.json", "b.yaml", "c.yml"}},
		},
		{
			name: "first unknown argument is a document",
			args: []string{"banks/*", "out.db"},
			want: Invocation{Documents: []string{"banks/*"}, Output: "out.db"},
		},
		{
			name: "last output wins",
			args: []string{"bank.json", "first.db", "second.db"},
			want: Invocation{Documents: []string{"bank.json"}, Output: "second.db"},
		},
		{
			name: "output ending in .json is read as a document",
			args: []string{"bank.json", "out.json"},
			want: Invocation{Documents: []string{"bank.json", "out.json"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgs_MissingImageDirectory(t *testing.T) {
	_, err := ParseArgs([]string{"bank.json", "-i"})
	assert.ErrorContains(t, err, "missing directory after -i")
}

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.json", "a.json", "c.yaml", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644))
	}

	files, err := ExpandInputs([]string{filepath.Join(dir, "*")})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.json"),
		filepath.Join(dir, "c.yaml"),
	}, files)

	files, err = ExpandInputs([]string{filepath.Join(dir, "missing.json"), filepath.Join(dir, "notes.txt")})
	require.NoError(t, err)
	assert.Empty(t, files)

	_, err = ExpandInputs([]string{"[unclosed"})
	assert.Error(t, err)
}

func TestDeriveStorePath(t *testing.T) {
	assert.Equal(t, "bank.db", DeriveStorePath("bank.json"))
	assert.Equal(t, filepath.Join("dir", "bank.v2.db"), DeriveStorePath(filepath.Join("dir", "bank.v2.yaml")))
	assert.Equal(t, "noext.db", DeriveStorePath("noext"))
}
