package utils

import (
	"fmt"

	"github.com/gosimple/slug"
)

// Slugify lowercases a display name and collapses non-alphanumeric runs
// into single hyphens. Slugs are derived on read, never persisted.
func Slugify(name string) string {
	return slug.Make(name)
}

// SlugSet is a uniqueness scope for slug assignment.
type SlugSet map[string]struct{}

// Assign derives a slug for name unique within the set, suffixing -1, -2,
// ... on collision. position is the 1-based index used for the placeholder
// when the name slugifies to nothing.
func (s SlugSet) Assign(name string, position int) string {
	base := Slugify(name)
	if base == "" {
		base = fmt.Sprintf("area-%d", position)
	}
	candidate := base
	for counter := 1; ; counter++ {
		if _, taken := s[candidate]; !taken {
			break
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
	s[candidate] = struct{}{}
	return candidate
}

// AssignSlugs derives unique slugs for a sequence of names in order.
func AssignSlugs(names []string) []string {
	set := make(SlugSet, len(names))
	slugs := make([]string, len(names))
	for i, name := range names {
		slugs[i] = set.Assign(name, i+1)
	}
	return slugs
}
