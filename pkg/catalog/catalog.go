// Package catalog holds the static menu shown on the home screen.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"foodorder/pkg/cart"
	"foodorder/pkg/money"
)

//go:embed menu.yaml
var defaultMenu []byte

var (
	// ErrNotFound indicates the requested item does not exist.
	ErrNotFound = errors.New("item not found")
	// ErrInvalidCatalog wraps every validation failure raised while loading.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// Item is a dish or drink on the menu.
type Item struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Price       money.Amount `json:"price"`
	Thumbnail   string       `json:"thumbnail"`
	Category    string       `json:"category"`
	Ingredients []string     `json:"ingredients,omitempty"`
}

// Section groups the items of one category.
type Section struct {
	Title string `json:"title"`
	Data  []Item `json:"data"`
}

// Catalog is read-only after Load.
type Catalog struct {
	categories []string
	items      []Item
	byID       map[string]int
}

type fileItem struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Price       string   `yaml:"price"`
	Thumbnail   string   `yaml:"thumbnail"`
	Category    string   `yaml:"category"`
	Ingredients []string `yaml:"ingredients"`
}

type file struct {
	Categories []string   `yaml:"categories"`
	Menu       []fileItem `yaml:"menu"`
}

// Default returns the menu embedded in the binary.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultMenu))
}

// Open loads a YAML menu from disk.
func Open(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes and validates a YAML menu.
func Load(r io.Reader) (*Catalog, error) {
	var raw file
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidCatalog, err)
	}
	if len(raw.Categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrInvalidCatalog)
	}

	c := &Catalog{byID: make(map[string]int, len(raw.Menu))}
	known := make(map[string]struct{}, len(raw.Categories))
	for _, name := range raw.Categories {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: empty category name", ErrInvalidCatalog)
		}
		if _, dup := known[name]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, name)
		}
		known[name] = struct{}{}
		c.categories = append(c.categories, name)
	}

	for i, fi := range raw.Menu {
		if fi.ID == "" {
			return nil, fmt.Errorf("%w: item %d has no id", ErrInvalidCatalog, i)
		}
		if _, dup := c.byID[fi.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate item id %q", ErrInvalidCatalog, fi.ID)
		}
		if strings.TrimSpace(fi.Title) == "" {
			return nil, fmt.Errorf("%w: item %q has no title", ErrInvalidCatalog, fi.ID)
		}
		if _, ok := known[fi.Category]; !ok {
			return nil, fmt.Errorf("%w: item %q has unknown category %q", ErrInvalidCatalog, fi.ID, fi.Category)
		}
		price, err := money.Parse(fi.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: item %q: %v", ErrInvalidCatalog, fi.ID, err)
		}
		c.byID[fi.ID] = len(c.items)
		c.items = append(c.items, Item{
			ID:          fi.ID,
			Title:       fi.Title,
			Description: fi.Description,
			Price:       price,
			Thumbnail:   fi.Thumbnail,
			Category:    fi.Category,
			Ingredients: fi.Ingredients,
		})
	}
	return c, nil
}

// Categories returns the category tags in declared order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// HasCategory reports whether name is a declared category.
func (c *Catalog) HasCategory(name string) bool {
	for _, cat := range c.categories {
		if cat == name {
			return true
		}
	}
	return false
}

// ByCategory returns the items tagged with category.
func (c *Catalog) ByCategory(category string) []Item {
	var out []Item
	for _, it := range c.items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// Sections groups every item under its category, skipping empty ones.
func (c *Catalog) Sections() []Section {
	var out []Section
	for _, cat := range c.categories {
		items := c.ByCategory(cat)
		if len(items) == 0 {
			continue
		}
		out = append(out, Section{Title: cat, Data: items})
	}
	return out
}

// Get retrieves an item by ID.
func (c *Catalog) Get(id string) (Item, error) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, ErrNotFound
	}
	return c.items[i], nil
}

// Product returns the cart descriptor for the item with the given ID.
func (c *Catalog) Product(id string) (cart.Product, error) {
	it, err := c.Get(id)
	if err != nil {
		return cart.Product{}, err
	}
	return cart.Product{
		ID:        it.ID,
		Title:     it.Title,
		Price:     it.Price,
		Thumbnail: it.Thumbnail,
	}, nil
}
