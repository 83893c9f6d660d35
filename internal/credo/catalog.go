package credo

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/kekich.yml data/paulisms.yml
var dataFS embed.FS

// Catalog holds both credo collections in their original order.
// It is loaded once at process start and never mutated afterwards.
type Catalog struct {
	Kekichs  []Kekich
	Paulisms []Paulism

	all   []Credo
	byKey map[string]Credo
}

// Load reads the embedded catalog data and validates it.
func Load() (*Catalog, error) {
	var kekichs []Kekich
	if err := readData("data/kekich.yml", &kekichs); err != nil {
		return nil, err
	}

	var paulisms []Paulism
	if err := readData("data/paulisms.yml", &paulisms); err != nil {
		return nil, err
	}

	return NewCatalog(kekichs, paulisms)
}

// NewCatalog builds a catalog from explicit collections.
// It fails if any composite key collides or an ID is not positive.
func NewCatalog(kekichs []Kekich, paulisms []Paulism) (*Catalog, error) {
	catalog := &Catalog{
		Kekichs:  kekichs,
		Paulisms: paulisms,
		byKey:    make(map[string]Credo, len(kekichs)+len(paulisms)),
	}

	for _, k := range kekichs {
		credo := Credo{Type: TypeKekich, ID: k.ID, Text: k.Text, Category: k.Category}
		if err := catalog.add(credo); err != nil {
			return nil, err
		}
	}
	for _, p := range paulisms {
		credo := Credo{Type: TypePaulism, ID: p.ID, Title: p.Title, Truth: p.Truth, Code: p.Code}
		if err := catalog.add(credo); err != nil {
			return nil, err
		}
	}

	return catalog, nil
}

func (c *Catalog) add(credo Credo) error {
	if credo.ID < 1 {
		return fmt.Errorf("credo %s has non-positive id %d", credo.Type, credo.ID)
	}
	key := credo.Key()
	if _, exists := c.byKey[key]; exists {
		return fmt.Errorf("duplicate credo key %s", key)
	}
	c.byKey[key] = credo
	c.all = append(c.all, credo)
	return nil
}

// All returns every credo in catalog order: kekichs first, then paulisms.
// The returned slice must not be modified.
func (c *Catalog) All() []Credo {
	return c.all
}

// Len returns the number of credos across both collections.
func (c *Catalog) Len() int {
	return len(c.all)
}

// Find returns the credo for a type and id.
func (c *Catalog) Find(t Type, id int) (Credo, bool) {
	credo, ok := c.byKey[Key(t, id)]
	return credo, ok
}

// FindByKey returns the credo for a composite key.
func (c *Catalog) FindByKey(key string) (Credo, bool) {
	credo, ok := c.byKey[key]
	return credo, ok
}

// Search returns credos matching a case-insensitive term, in catalog order.
func (c *Catalog) Search(term string) []Credo {
	var matched []Credo
	for _, credo := range c.all {
		if credo.Matches(term) {
			matched = append(matched, credo)
		}
	}
	return matched
}

func readData[T any](path string, out *T) error {
	contents, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read embedded %s > %w", path, err)
	}
	if err := yaml.Unmarshal(contents, out); err != nil {
		return fmt.Errorf("yaml.Unmarshal(%s) > %w", path, err)
	}
	return nil
}
