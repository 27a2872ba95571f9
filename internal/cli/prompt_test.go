package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPassword(t *testing.T) {
	t.Run("from file strips trailing newline", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pw")
		require.NoError(t, os.WriteFile(path, []byte("s3cret\n"), 0o600))

		got, err := readPassword(strings.NewReader(""), &bytes.Buffer{}, path)
		require.NoError(t, err)
		assert.Equal(t, "s3cret", got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readPassword(strings.NewReader(""), &bytes.Buffer{}, filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})

	t.Run("piped stdin", func(t *testing.T) {
		got, err := readPassword(strings.NewReader("piped\nrest"), &bytes.Buffer{}, "-")
		require.NoError(t, err)
		assert.Equal(t, "piped", got)
	})

	t.Run("piped stdin without newline", func(t *testing.T) {
		got, err := readPassword(strings.NewReader("last"), &bytes.Buffer{}, "")
		require.NoError(t, err)
		assert.Equal(t, "last", got)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := readPassword(strings.NewReader("\n"), &bytes.Buffer{}, "")
		assert.ErrorIs(t, err, errEmptyPassword)
	})
}
