package search

import "knighty/internal/domain"

// NoSelection is the selected index while the dropdown has no highlighted row
const NoSelection = -1

// State holds the dropdown state
type State struct {
	Query         string
	Results       []domain.Cheatsheet
	Open          bool
	SelectedIndex int
}

// Finder returns the first limit matches for a query
type Finder func(query string, limit int) []domain.Cheatsheet

// Event types
type DropdownOpenedEvent struct {
	Query string
	Count int
}

type DropdownClosedEvent struct{}

type SelectionChangedEvent struct {
	OldIndex int
	NewIndex int
}

type ResultChosenEvent struct {
	ID   string
	File string
}
