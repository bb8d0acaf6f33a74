package i18n

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knighty/internal/domain"
)

func TestLoad_TablesHaveSameKeys(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	en := b.Table(English)
	ar := b.Table(Arabic)
	require.NotEmpty(t, en)
	for k := range en {
		_, ok := ar[k]
		assert.True(t, ok, "arabic table missing %s", k)
	}
	assert.Len(t, ar, len(en))
}

func TestT_FallsBackToDefaultThenKey(t *testing.T) {
	b := MustLoad()

	assert.Equal(t, "Featured Only", b.T(English, "search.featuredOnly"))
	assert.Equal(t, "المميز فقط", b.T(Arabic, "search.featuredOnly"))
	assert.Equal(t, "Featured Only", b.T("fr", "search.featuredOnly"))
	assert.Equal(t, "no.such.key", b.T(Arabic, "no.such.key"))
}

func TestCategory(t *testing.T) {
	b := MustLoad()

	assert.Equal(t, "Network", b.Category(English, domain.CategoryNetwork))
	assert.Equal(t, "الشبكة", b.Category(Arabic, domain.CategoryNetwork))
	assert.Equal(t, "الكل", b.Category(Arabic, domain.CategoryAll))
	assert.Equal(t, "Cooking", b.Category(English, domain.Category("Cooking")))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, English, Normalize(""))
	assert.Equal(t, English, Normalize("fr"))
	assert.Equal(t, Arabic, Normalize(" AR "))
	assert.Equal(t, English, Normalize("en"))
}

func TestParse(t *testing.T) {
	l, err := Parse("ar")
	require.NoError(t, err)
	assert.Equal(t, Arabic, l)

	_, err = Parse("de")
	assert.True(t, errors.Is(err, domain.ErrUnsupportedLanguage))
}

func TestToggleAndRTL(t *testing.T) {
	assert.Equal(t, Arabic, Toggle(English))
	assert.Equal(t, English, Toggle(Arabic))
	assert.Equal(t, Arabic, Toggle("garbage"))
	assert.True(t, IsRTL(Arabic))
	assert.False(t, IsRTL(English))
}

func TestCount(t *testing.T) {
	b := MustLoad()

	assert.Equal(t, "1 cheat sheet found", b.Count(English, 1, ""))
	assert.Equal(t, "3 cheat sheets found for \"git\"", b.Count(English, 3, "git"))
	assert.Equal(t, "2 مرجع موجود", b.Count(Arabic, 2, ""))
}

func TestNoResults(t *testing.T) {
	b := MustLoad()

	assert.Contains(t, b.NoResults(English, "zzz"), "\"zzz\"")
	assert.Equal(t, b.T(English, "sections.noResultsFilters"), b.NoResults(English, ""))
}
