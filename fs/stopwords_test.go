package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/wikisect"
	"github.com/fwojciec/wikisect/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopWordFile_Load(t *testing.T) {
	t.Parallel()

	t.Run("reads whitespace separated words", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "stop.txt")
		require.NoError(t, os.WriteFile(path, []byte("The and\n  OF\tcat\n\n"), 0o644))

		set, err := fs.NewStopWordFile(path).Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"and", "cat", "of", "the"}, set.Words())
	})

	t.Run("returns unavailable error for missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.txt")

		_, err := fs.NewStopWordFile(path).Load(context.Background())

		require.Error(t, err)
		assert.Equal(t, wikisect.EUNAVAILABLE, wikisect.ErrorCode(err))
		assert.Equal(t, "error opening "+path+": used default list", wikisect.ErrorMessage(err))
	})

	t.Run("returns unavailable error for a directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		_, err := fs.NewStopWordFile(dir).Load(context.Background())

		require.Error(t, err)
		assert.Equal(t, wikisect.EUNAVAILABLE, wikisect.ErrorCode(err))
	})

	t.Run("honors cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewStopWordFile("unused.txt").Load(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("falls back to defaults through LoadStopWords", func(t *testing.T) {
		t.Parallel()

		var warnings []error
		src := fs.NewStopWordFile(filepath.Join(t.TempDir(), "missing.txt"))

		set := wikisect.LoadStopWords(context.Background(), src, func(err error) {
			warnings = append(warnings, err)
		})

		assert.Equal(t, wikisect.DefaultStopWords().Len(), set.Len())
		require.Len(t, warnings, 1)
		assert.Contains(t, wikisect.ErrorMessage(warnings[0]), "used default list")
	})
}

func TestStopWordFile_Path(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "stopWordsExtended.txt", fs.NewStopWordFile("stopWordsExtended.txt").Path())
}
