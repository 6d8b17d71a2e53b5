package scout_test

import (
	"testing"

	"github.com/mstanek/scout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHarvestLinks(t *testing.T) {
	t.Parallel()

	t.Run("merges sources in fixed order", func(t *testing.T) {
		t.Parallel()

		sig := &scout.PageSignal{
			AnchorLinks:    []string{"https://a.example", "https://b.example"},
			PlatformLinks:  []string{"https://c.example"},
			StructuredData: []string{`{"sameAs": ["https://twitter.com/z"]}`},
		}

		links := scout.HarvestLinks(sig)

		assert.Equal(t, []string{
			"https://a.example",
			"https://b.example",
			"https://c.example",
			"https://twitter.com/z",
		}, links)
	})

	t.Run("removes exact string duplicates keeping first occurrence", func(t *testing.T) {
		t.Parallel()

		sig := &scout.PageSignal{
			AnchorLinks:   []string{"https://a.example", "https://b.example", "https://a.example"},
			PlatformLinks: []string{"https://b.example", "https://c.example"},
		}

		links := scout.HarvestLinks(sig)

		assert.Equal(t, []string{"https://a.example", "https://b.example", "https://c.example"}, links)
	})

	t.Run("does not canonicalize near-duplicate URLs", func(t *testing.T) {
		t.Parallel()

		sig := &scout.PageSignal{
			AnchorLinks: []string{"https://a.example/", "https://a.example", "https://a.example?x=1"},
		}

		links := scout.HarvestLinks(sig)

		assert.Len(t, links, 3)
	})

	t.Run("handles sameAs as a single string", func(t *testing.T) {
		t.Parallel()

		sig := &scout.PageSignal{
			StructuredData: []string{`{"sameAs": "https://instagram.com/x"}`},
		}

		assert.Equal(t, []string{"https://instagram.com/x"}, scout.HarvestLinks(sig))
	})

	t.Run("handles sameAs nested in an array of records", func(t *testing.T) {
		t.Parallel()

		sig := &scout.PageSignal{
			StructuredData: []string{
				`[{"@type":"Person","sameAs":["https://twitter.com/a"]},{"@type":"Organization","sameAs":"https://github.com/b"}]`,
			},
		}

		assert.Equal(t, []string{"https://twitter.com/a", "https://github.com/b"}, scout.HarvestLinks(sig))
	})

	t.Run("skips a malformed block without dropping links from other blocks", func(t *testing.T) {
		t.Parallel()

		sig := &scout.PageSignal{
			StructuredData: []string{
				`{"sameAs": ["https://twitter.com/a"]}`,
				`{not json at all`,
				`{"sameAs": ["https://github.com/b"]}`,
			},
		}

		assert.Equal(t, []string{"https://twitter.com/a", "https://github.com/b"}, scout.HarvestLinks(sig))
	})

	t.Run("ignores non-string sameAs entries", func(t *testing.T) {
		t.Parallel()

		sig := &scout.PageSignal{
			StructuredData: []string{`{"sameAs": [42, "https://twitter.com/a", null]}`},
		}

		assert.Equal(t, []string{"https://twitter.com/a"}, scout.HarvestLinks(sig))
	})

	t.Run("empty sources yield an empty list", func(t *testing.T) {
		t.Parallel()

		require.Empty(t, scout.HarvestLinks(&scout.PageSignal{}))
		require.Empty(t, scout.HarvestLinks(nil))
	})
}
