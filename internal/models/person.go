package models

import "strings"

// UnnamedLabel is shown for people whose name is blank.
const UnnamedLabel = "Unnamed"

// Person is a participant in a shared expense.
type Person struct {
	// ID is the unique identifier for the person (UUID format).
	// It never changes once created.
	ID string

	// Name is the display name. It may be blank while the user is still
	// typing it in.
	Name string
}

// DisplayName returns the trimmed name, or UnnamedLabel when blank.
func (p Person) DisplayName() string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	return UnnamedLabel
}

// PersonIDs returns the ids of people in order.
func PersonIDs(people []Person) []string {
	ids := make([]string, len(people))
	for i, p := range people {
		ids[i] = p.ID
	}
	return ids
}
