package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knighty/internal/catalog"
)

func TestMemorySheetStore_GetAllSheetsIsDetached(t *testing.T) {
	store := NewMemorySheetStore(catalog.Default())

	sheets := store.GetAllSheets()
	require.NotEmpty(t, sheets)
	require.NotEmpty(t, sheets[0].Tags)
	id, tag := sheets[0].ID, sheets[0].Tags[0]

	sheets[0].Title = "changed"
	sheets[0].Tags[0] = "changed"

	again := store.GetAllSheets()
	assert.NotEqual(t, "changed", again[0].Title)
	assert.Equal(t, tag, again[0].Tags[0])
	assert.Equal(t, tag, store.GetSheet(id).Tags[0])
}
