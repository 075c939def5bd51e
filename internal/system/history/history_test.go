// Released under an MIT license. See LICENSE.

package history

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	called := false

	err := Load(func(r io.Reader) (int, error) {
		called = true

		return 0, nil
	})
	require.NoError(t, err)
	require.False(t, called)
}

func TestSaveThenLoad(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	err := Save(func(w io.Writer) (int, error) {
		return io.WriteString(w, "{+ 1 2}\n")
	})
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(home, Name))
	require.NoError(t, err)
	require.Equal(t, "{+ 1 2}\n", string(b))

	var buf bytes.Buffer

	err = Load(func(r io.Reader) (int, error) {
		n, err := buf.ReadFrom(r)

		return int(n), err
	})
	require.NoError(t, err)
	require.Equal(t, "{+ 1 2}\n", buf.String())
}
