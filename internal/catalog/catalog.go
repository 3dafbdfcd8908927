// Package catalog provides the immutable product lookup used by the judge
// core. Entries are loaded once at startup — either from the built-in table
// or from a YAML file — and never mutated afterwards.
package catalog

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Category is one of the closed set of product categories. Each category
// carries a fixed fractional weight tolerance used by the count calculator
// and combination matcher.
type Category string

const (
	CategoryBeverage Category = "beverage"
	CategorySnack    Category = "snack"
	CategoryCandy    Category = "candy"
	CategoryFood     Category = "food"
	CategoryDairy    Category = "dairy"
	CategoryHealth   Category = "health"
	CategoryFrozen   Category = "frozen"
	CategoryEtc      Category = "etc"
)

// tolerances is the closed, fixed mapping from category to fractional
// weight tolerance. Values are design constants, never learned or tuned.
var tolerances = map[Category]float64{
	CategoryBeverage: 0.05,
	CategorySnack:    0.10,
	CategoryCandy:    0.10,
	CategoryFood:     0.08,
	CategoryDairy:    0.07,
	CategoryHealth:   0.10,
	CategoryFrozen:   0.15,
	CategoryEtc:      0.15,
}

// Product is a catalog entry, immutable after load.
type Product struct {
	ID          int      `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	UnitWeightG float64  `yaml:"unit_weight_g" json:"unitWeightG"`
	UnitPrice   int      `yaml:"unit_price" json:"unitPrice"`
	Category    Category `yaml:"category" json:"category"`
}

// Reader is the read-only contract the judge core depends on. It is safe
// for concurrent use by many goroutines.
type Reader interface {
	LookupByID(id int) (Product, bool)
	LookupByName(name string) (Product, bool)
	ToleranceOf(category Category) float64
	All() []Product
}

// Catalog is the in-memory, build-once, read-many product table.
type Catalog struct {
	mu       sync.RWMutex
	byID     map[int]Product
	byName   map[string]Product
	products []Product
}

// New builds a Catalog from a slice of products. A product with an unset or
// unrecognized category is normalized to CategoryEtc, matching §6's "Missing
// category → etc" rule.
func New(products []Product) *Catalog {
	c := &Catalog{
		byID:     make(map[int]Product, len(products)),
		byName:   make(map[string]Product, len(products)),
		products: make([]Product, 0, len(products)),
	}
	for _, p := range products {
		if _, known := tolerances[p.Category]; !known {
			p.Category = CategoryEtc
		}
		c.byID[p.ID] = p
		c.byName[p.Name] = p
		c.products = append(c.products, p)
	}
	return c
}

// LoadYAML reads a flat list of product entries from path and builds a
// Catalog from them.
func LoadYAML(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %q: %w", path, err)
	}

	var products []Product
	if err := yaml.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse catalog file %q: %w", path, err)
	}

	return New(products), nil
}

// LookupByID returns the product with the given id, or false if absent.
func (c *Catalog) LookupByID(id int) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byID[id]
	return p, ok
}

// LookupByName returns the product with the given name, or false if absent.
func (c *Catalog) LookupByName(name string) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byName[name]
	return p, ok
}

// ToleranceOf returns the fixed fractional tolerance for a category,
// defaulting to the "etc" tolerance for unrecognized categories.
func (c *Catalog) ToleranceOf(category Category) float64 {
	if t, ok := tolerances[category]; ok {
		return t
	}
	return tolerances[CategoryEtc]
}

// All returns every catalog entry. The returned slice is a copy; mutating
// it does not affect the catalog.
func (c *Catalog) All() []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Size returns the number of entries in the catalog.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
