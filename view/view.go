// Package view derives what the list screen should display from the current
// collection and the user's transient filter inputs. Everything here is
// pure: no function mutates its inputs or touches storage.
package view

import (
	"strings"

	"quickshelf/model"
)

// FilterAll is the chip value that matches every item.
const FilterAll = "All"

// VisibleItems returns the items to display, in their original relative
// order. An item is shown when the active chip matches it (FilterAll, or the
// chip equals its location or category) and its title or location contains
// the search text, case-insensitively. An empty search matches everything.
func VisibleItems(items []model.Item, searchText, activeFilter string) []model.Item {
	search := strings.ToLower(searchText)

	var visible []model.Item
	for _, item := range items {
		if !chipMatches(item, activeFilter) {
			continue
		}
		if search != "" && !contains(item.Title, search) && !contains(item.Location, search) {
			continue
		}
		visible = append(visible, item)
	}
	return visible
}

// FilterOptions returns the values for the chip selector: FilterAll first,
// then each distinct non-empty location in the order it first appears.
func FilterOptions(items []model.Item) []string {
	options := []string{FilterAll}
	seen := make(map[string]bool)
	for _, item := range items {
		if item.Location == "" || seen[item.Location] {
			continue
		}
		seen[item.Location] = true
		options = append(options, item.Location)
	}
	return options
}

// LocationSuggestions returns distinct non-empty locations containing input
// (case-insensitive), in first-seen order. Used by the add form's dropdown.
func LocationSuggestions(items []model.Item, input string) []string {
	return suggest(items, input, func(item model.Item) string { return item.Location })
}

// CategorySuggestions returns distinct non-empty categories containing input
// (case-insensitive), in first-seen order.
func CategorySuggestions(items []model.Item, input string) []string {
	return suggest(items, input, func(item model.Item) string { return item.Category })
}

func suggest(items []model.Item, input string, field func(model.Item) string) []string {
	search := strings.ToLower(input)

	var suggestions []string
	seen := make(map[string]bool)
	for _, item := range items {
		value := field(item)
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		if contains(value, search) {
			suggestions = append(suggestions, value)
		}
	}
	return suggestions
}

func chipMatches(item model.Item, activeFilter string) bool {
	// No selection behaves like FilterAll.
	if activeFilter == "" || activeFilter == FilterAll {
		return true
	}
	return activeFilter == item.Location || activeFilter == item.Category
}

func contains(value, lowerSearch string) bool {
	return strings.Contains(strings.ToLower(value), lowerSearch)
}
