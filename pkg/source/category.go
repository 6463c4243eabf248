package source

import (
	"fmt"
	"slices"
)

// Category classifies files by extension and carries their display style.
type Category struct {
	Name       string   // "header" or "source"
	Extensions []string // with leading dot, e.g. ".hpp"
	Color      string   // Graphviz color name
	Style      string   // Graphviz edge style
}

// Categories is an ordered set of categories with disjoint extensions.
type Categories []Category

// Category names.
const (
	Header = "header"
	Source = "source"
)

// DefaultCategories returns the header and source categories.
func DefaultCategories() Categories {
	return Categories{
		{Name: Header, Extensions: []string{".h", ".hpp"}, Color: "black", Style: "solid"},
		{Name: Source, Extensions: []string{".c", ".cc", ".cpp"}, Color: "goldenrod", Style: "dashed"},
	}
}

// Lookup returns the category owning ext.
func (cs Categories) Lookup(ext string) (Category, bool) {
	for _, c := range cs {
		if slices.Contains(c.Extensions, ext) {
			return c, true
		}
	}
	return Category{}, false
}

// Extensions returns every recognized extension in category order.
func (cs Categories) Extensions() []string {
	var exts []string
	for _, c := range cs {
		exts = append(exts, c.Extensions...)
	}
	return exts
}

// Validate checks that every category has a name and at least one
// extension, and that no extension is claimed twice.
func (cs Categories) Validate() error {
	if len(cs) == 0 {
		return fmt.Errorf("no file categories defined")
	}
	owner := make(map[string]string)
	for _, c := range cs {
		if c.Name == "" {
			return fmt.Errorf("category without a name")
		}
		if len(c.Extensions) == 0 {
			return fmt.Errorf("category %q has no extensions", c.Name)
		}
		for _, ext := range c.Extensions {
			if len(ext) < 2 || ext[0] != '.' {
				return fmt.Errorf("category %q: extension %q must start with '.'", c.Name, ext)
			}
			if prev, ok := owner[ext]; ok {
				return fmt.Errorf("extension %q claimed by both %q and %q", ext, prev, c.Name)
			}
			owner[ext] = c.Name
		}
	}
	return nil
}
