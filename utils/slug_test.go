package utils

import (
	"reflect"
	"testing"
)

func TestAssignSlugs(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{
			"unique names",
			[]string{"Toronto", "North York", "Scarborough"},
			[]string{"toronto", "north-york", "scarborough"},
		},
		{
			"duplicates get suffixes",
			[]string{"Toronto", "Toronto", "North York"},
			[]string{"toronto", "toronto-1", "north-york"},
		},
		{
			"triple duplicate",
			[]string{"Etobicoke", "Etobicoke", "Etobicoke"},
			[]string{"etobicoke", "etobicoke-1", "etobicoke-2"},
		},
		{
			"special characters collapse",
			[]string{"Drain & Sewer Cleaning", "Café Plumbing!!"},
			[]string{"drain-sewer-cleaning", "cafe-plumbing"},
		},
		{
			"empty name gets positional placeholder",
			[]string{"Toronto", "", "Mississauga"},
			[]string{"toronto", "area-2", "mississauga"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssignSlugs(tt.names)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AssignSlugs(%v) = %v, want %v", tt.names, got, tt.want)
			}
		})
	}
}

func TestSlugSetCollisionWithPlaceholder(t *testing.T) {
	set := make(SlugSet)
	first := set.Assign("Toronto", 1)
	second := set.Assign("toronto", 2)
	if first != "toronto" || second != "toronto-1" {
		t.Errorf("got %q, %q, want toronto, toronto-1", first, second)
	}
}
