package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knighty/internal/catalog"
	"knighty/internal/domain"
	"knighty/internal/logic"
	"knighty/internal/ui/services/events"
)

func newDropdown(t *testing.T) (*Service, *events.Bus) {
	t.Helper()
	sheets := catalog.Default().All()
	bus := events.NewBus()
	finder := func(q string, limit int) []domain.Cheatsheet {
		return logic.TopResults(sheets, q, limit)
	}
	return NewService(bus, finder, logic.DropdownLimit), bus
}

func TestDropdown_ClosedForBlankText(t *testing.T) {
	d, _ := newDropdown(t)

	d.SetQuery("   ")

	assert.False(t, d.IsOpen())
	assert.Empty(t, d.Results())
	assert.Equal(t, NoSelection, d.SelectedIndex())
}

func TestDropdown_ClosedWithoutMatches(t *testing.T) {
	d, _ := newDropdown(t)

	d.SetQuery("zzz-no-match")

	assert.False(t, d.IsOpen())
}

func TestDropdown_OpensWithNothingSelected(t *testing.T) {
	d, _ := newDropdown(t)

	d.SetQuery("automation")

	require.True(t, d.IsOpen())
	assert.Equal(t, NoSelection, d.SelectedIndex())
	assert.LessOrEqual(t, len(d.Results()), logic.DropdownLimit)
}

func TestDropdown_TruncatesToLimit(t *testing.T) {
	d, _ := newDropdown(t)

	d.SetQuery("e")

	assert.Len(t, d.Results(), logic.DropdownLimit)
}

func TestDropdown_NextWraps(t *testing.T) {
	d, _ := newDropdown(t)
	d.SetQuery("automation")
	n := len(d.Results())
	require.Greater(t, n, 1)

	d.Next()
	assert.Equal(t, 0, d.SelectedIndex())

	for i := 1; i < n; i++ {
		d.Next()
	}
	assert.Equal(t, n-1, d.SelectedIndex())

	d.Next()
	assert.Equal(t, 0, d.SelectedIndex())
}

func TestDropdown_PrevWraps(t *testing.T) {
	d, _ := newDropdown(t)
	d.SetQuery("automation")
	n := len(d.Results())

	d.Prev()
	assert.Equal(t, n-1, d.SelectedIndex(), "prev from nothing selected goes to last")

	d.Next()
	assert.Equal(t, 0, d.SelectedIndex())
	d.Prev()
	assert.Equal(t, n-1, d.SelectedIndex())
}

func TestDropdown_ConfirmFallsBackToFirst(t *testing.T) {
	d, bus := newDropdown(t)
	var chosen []string
	bus.Subscribe(events.Name(ResultChosenEvent{}), func(e interface{}) {
		chosen = append(chosen, e.(ResultChosenEvent).ID)
	})
	d.SetQuery("automation")
	first := d.Results()[0]

	got, ok := d.Confirm()

	require.True(t, ok)
	assert.Equal(t, first.ID, got.ID)
	assert.False(t, d.IsOpen())
	assert.Equal(t, NoSelection, d.SelectedIndex())
	assert.Equal(t, []string{first.ID}, chosen)
	assert.Equal(t, "xargs", got.ID)
}

func TestDropdown_ConfirmSelected(t *testing.T) {
	d, _ := newDropdown(t)
	d.SetQuery("automation")
	d.Next()
	d.Next()
	want := d.Results()[1]

	got, ok := d.Confirm()

	require.True(t, ok)
	assert.Equal(t, want.ID, got.ID)
}

func TestDropdown_ConfirmWhenClosed(t *testing.T) {
	d, _ := newDropdown(t)

	_, ok := d.Confirm()

	assert.False(t, ok)
}

func TestDropdown_CloseResetsSelection(t *testing.T) {
	d, _ := newDropdown(t)
	d.SetQuery("automation")
	d.Next()

	d.Close()

	assert.False(t, d.IsOpen())
	assert.Equal(t, NoSelection, d.SelectedIndex())

	d.Reopen()
	assert.True(t, d.IsOpen())
	assert.Equal(t, NoSelection, d.SelectedIndex())
}

func TestDropdown_HoverAndChoose(t *testing.T) {
	d, _ := newDropdown(t)
	d.SetQuery("automation")

	d.Hover(1)
	assert.Equal(t, 1, d.SelectedIndex())

	d.Hover(99)
	assert.Equal(t, 1, d.SelectedIndex())

	got, ok := d.Choose(0)
	require.True(t, ok)
	assert.Equal(t, "automation", d.Query())
	assert.Equal(t, "xargs", got.ID)
	assert.False(t, d.IsOpen())
}

func TestDropdown_NewTextClearsSelection(t *testing.T) {
	d, _ := newDropdown(t)
	d.SetQuery("automation")
	d.Next()

	d.SetQuery("automatio")

	assert.True(t, d.IsOpen())
	assert.Equal(t, NoSelection, d.SelectedIndex())
}
