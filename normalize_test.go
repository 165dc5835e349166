package wikisect_test

import (
	"testing"

	"github.com/fwojciec/wikisect"
	"github.com/stretchr/testify/assert"
)

func TestNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	stopWords := wikisect.NewStopWordSet([]string{"and", "the"})

	t.Run("strips punctuation and lowercases", func(t *testing.T) {
		t.Parallel()

		n := wikisect.NewNormalizer(stopWords)

		word, ok := n.Normalize("Cats,")

		assert.True(t, ok)
		assert.Equal(t, "cats", word)
	})

	t.Run("drops digits but keeps the letters", func(t *testing.T) {
		t.Parallel()

		n := wikisect.NewNormalizer(stopWords)

		word, ok := n.Normalize("1990s")

		assert.True(t, ok)
		assert.Equal(t, "s", word)
	})

	t.Run("joins letters around inner punctuation", func(t *testing.T) {
		t.Parallel()

		n := wikisect.NewNormalizer(stopWords)

		word, ok := n.Normalize("well-known")

		assert.True(t, ok)
		assert.Equal(t, "wellknown", word)
	})

	t.Run("rejects tokens with no letters", func(t *testing.T) {
		t.Parallel()

		n := wikisect.NewNormalizer(stopWords)

		for _, token := range []string{"1990", "--", "[1]", ""} {
			_, ok := n.Normalize(token)
			assert.False(t, ok, token)
		}
	})

	t.Run("rejects stop words regardless of case", func(t *testing.T) {
		t.Parallel()

		n := wikisect.NewNormalizer(stopWords)

		_, ok := n.Normalize("The")

		assert.False(t, ok)
	})

	t.Run("keeps non-ASCII letters", func(t *testing.T) {
		t.Parallel()

		n := wikisect.NewNormalizer(stopWords)

		word, ok := n.Normalize("Österreich.")

		assert.True(t, ok)
		assert.Equal(t, "österreich", word)
	})

	t.Run("strict mode drops tokens without a two-letter run", func(t *testing.T) {
		t.Parallel()

		n := wikisect.NewNormalizer(stopWords, wikisect.WithStrictDigits())

		_, ok := n.Normalize("1990s")
		assert.False(t, ok)

		_, ok = n.Normalize("a1b2")
		assert.False(t, ok)

		word, ok := n.Normalize("1990s-era")
		assert.True(t, ok)
		assert.Equal(t, "sera", word)
	})
}
