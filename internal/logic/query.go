package logic

import (
	"strings"

	"knighty/internal/domain"
)

// QueryState is the browsing session's current query
type QueryState struct {
	SearchText       string
	SelectedCategory domain.Category
	FeaturedOnly     bool
	SearchFocusMode  bool
}

// DefaultQueryState returns the state a session starts in
func DefaultQueryState() QueryState {
	return QueryState{SelectedCategory: domain.CategoryAll}
}

// HasSearch reports whether a text filter is active
func (q QueryState) HasSearch() bool {
	return strings.TrimSpace(q.SearchText) != ""
}

// IsDefault reports whether no filter is active
func (q QueryState) IsDefault() bool {
	return !q.HasSearch() && q.SelectedCategory == domain.CategoryAll && !q.FeaturedOnly
}

// QueryController owns the query state and recomputes the filtered view on
// every change
type QueryController struct {
	store  SheetStore
	policy ResetPolicy
	state  QueryState
	view   []domain.Cheatsheet
}

// NewQueryController creates a controller in the default state
func NewQueryController(store SheetStore, policy ResetPolicy) *QueryController {
	c := &QueryController{
		store:  store,
		policy: policy,
		state:  DefaultQueryState(),
	}
	c.recompute()
	return c
}

// State returns a copy of the current query state
func (c *QueryController) State() QueryState {
	return c.state
}

// Policy returns the active reset policy
func (c *QueryController) Policy() ResetPolicy {
	return c.policy
}

// View returns the filtered view for the current state
func (c *QueryController) View() []domain.Cheatsheet {
	return c.view
}

// SetSearchText updates the text filter. Under single-focus, non-empty text
// clears the featured toggle. Clearing the text leaves search focus mode.
func (c *QueryController) SetSearchText(text string) {
	c.state.SearchText = text
	if strings.TrimSpace(text) != "" {
		if c.policy == ResetSingleFocus {
			c.state.FeaturedOnly = false
		}
	} else {
		c.state.SearchFocusMode = false
	}
	c.recompute()
}

// SetCategory changes the category filter. Under single-focus it clears the
// featured toggle.
func (c *QueryController) SetCategory(category domain.Category) {
	c.state.SelectedCategory = category
	if c.policy == ResetSingleFocus {
		c.state.FeaturedOnly = false
	}
	c.recompute()
}

// ToggleFeatured flips the featured filter. Under single-focus it clears the
// search text and resets the category to All.
func (c *QueryController) ToggleFeatured() {
	c.state.FeaturedOnly = !c.state.FeaturedOnly
	if c.policy == ResetSingleFocus {
		c.state.SearchText = ""
		c.state.SelectedCategory = domain.CategoryAll
	}
	c.recompute()
}

// SetSearchFocus records whether the search overlay is showing
func (c *QueryController) SetSearchFocus(focused bool) {
	c.state.SearchFocusMode = focused
}

// ResetFilters restores every axis to its default
func (c *QueryController) ResetFilters() {
	focus := c.state.SearchFocusMode
	c.state = DefaultQueryState()
	c.state.SearchFocusMode = focus
	c.recompute()
}

// NextCategory cycles the category filter forward (or backward) through the
// ordered category list, wrapping at either end
func (c *QueryController) NextCategory(forward bool) domain.Category {
	cats := domain.Categories()
	idx := 0
	for i, cat := range cats {
		if cat == c.state.SelectedCategory {
			idx = i
			break
		}
	}
	if forward {
		idx = (idx + 1) % len(cats)
	} else {
		idx = (idx - 1 + len(cats)) % len(cats)
	}
	c.SetCategory(cats[idx])
	return cats[idx]
}

// Suggestions returns the dropdown results for the current search text
func (c *QueryController) Suggestions(limit int) []domain.Cheatsheet {
	return TopResults(c.store.GetAllSheets(), c.state.SearchText, limit)
}

func (c *QueryController) recompute() {
	c.view = Apply(c.store.GetAllSheets(), c.state)
}
