package source

import "testing"

func TestLookup(t *testing.T) {
	cats := DefaultCategories()
	tests := []struct {
		ext  string
		want string
		ok   bool
	}{
		{".h", Header, true},
		{".hpp", Header, true},
		{".c", Source, true},
		{".cc", Source, true},
		{".cpp", Source, true},
		{".py", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := cats.Lookup(tt.ext)
		if ok != tt.ok || got.Name != tt.want {
			t.Errorf("Lookup(%q) = (%q, %v), want (%q, %v)", tt.ext, got.Name, ok, tt.want, tt.ok)
		}
	}
}

func TestDefaultStyles(t *testing.T) {
	h, _ := DefaultCategories().Lookup(".h")
	s, _ := DefaultCategories().Lookup(".cpp")
	if h.Color != "black" || h.Style != "solid" {
		t.Errorf("header style = %s/%s, want black/solid", h.Color, h.Style)
	}
	if s.Color != "goldenrod" || s.Style != "dashed" {
		t.Errorf("source style = %s/%s, want goldenrod/dashed", s.Color, s.Style)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cats    Categories
		wantErr bool
	}{
		{"defaults", DefaultCategories(), false},
		{"empty", Categories{}, true},
		{"no name", Categories{{Extensions: []string{".h"}}}, true},
		{"no extensions", Categories{{Name: Header}}, true},
		{"missing dot", Categories{{Name: Header, Extensions: []string{"h"}}}, true},
		{"overlap", Categories{
			{Name: Header, Extensions: []string{".h"}},
			{Name: Source, Extensions: []string{".c", ".h"}},
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cats.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
