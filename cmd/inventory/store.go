package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// Item is one stock record.
type Item struct {
	SKU      string  `yaml:"sku"`
	Name     string  `yaml:"name"`
	Desc     string  `yaml:"desc,omitempty"`
	Qty      int     `yaml:"qty"`
	Price    float64 `yaml:"price"`
	Location string  `yaml:"location,omitempty"`
}

var errNotFound = errors.New("item not found")

// Store is a YAML-file-backed item list. Every mutation rewrites the file;
// inventories this tool targets are small enough that it does not matter.
type Store struct {
	path  string
	Items []Item
}

// OpenStore loads the store at path, starting empty when the file does not
// exist yet.
func OpenStore(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &s.Items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

// Save writes the item list back to disk.
func (s *Store) Save() error {
	data, err := yaml.Marshal(s.Items)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Find returns the item with the given SKU.
func (s *Store) Find(sku string) (*Item, bool) {
	for i := range s.Items {
		if s.Items[i].SKU == sku {
			return &s.Items[i], true
		}
	}
	return nil, false
}

// Add appends a new item, rejecting duplicate SKUs.
func (s *Store) Add(item Item) error {
	if _, ok := s.Find(item.SKU); ok {
		return fmt.Errorf("SKU %s already exists", item.SKU)
	}
	s.Items = append(s.Items, item)
	return s.Save()
}

// Update replaces the item with the given SKU.
func (s *Store) Update(sku string, item Item) error {
	for i := range s.Items {
		if s.Items[i].SKU == sku {
			s.Items[i] = item
			return s.Save()
		}
	}
	return errNotFound
}

// Delete removes the item with the given SKU.
func (s *Store) Delete(sku string) error {
	for i := range s.Items {
		if s.Items[i].SKU == sku {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return s.Save()
		}
	}
	return errNotFound
}

// Search returns items whose SKU or name contains the term,
// case-insensitively.
func (s *Store) Search(term string) []Item {
	var out []Item
	for _, it := range s.Items {
		if containsFold(it.SKU, term) || containsFold(it.Name, term) {
			out = append(out, it)
		}
	}
	return out
}

// Locations returns the distinct locations in use, sorted.
func (s *Store) Locations() []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range s.Items {
		if it.Location != "" && !seen[it.Location] {
			seen[it.Location] = true
			out = append(out, it.Location)
		}
	}
	sort.Strings(out)
	return out
}
