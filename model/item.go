package model

import "strings"

// Item is a single inventory entry. The ID is assigned at creation time and
// never changes; everything else is free-text the user can edit. Image holds
// a URI to a device-resident photo — the file itself is not owned or managed
// here.
type Item struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Category string `json:"category,omitempty"`
	Image    string `json:"image,omitempty"`
}

// Draft holds the user-provided fields for a new item, before an ID exists.
type Draft struct {
	Title    string
	Location string
	Category string
	Image    string
}

// Patch is a partial update to an item. Nil fields are left unchanged.
type Patch struct {
	Title    *string
	Location *string
	Category *string
	Image    *string
}

// TrimTitle returns the title with surrounding whitespace removed.
// An item title that is empty after trimming is invalid.
func TrimTitle(title string) string {
	return strings.TrimSpace(title)
}
