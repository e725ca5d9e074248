package enums

import (
	"fmt"
	"sort"
	"sync"
)

// Catalog stores descriptors by enumeration name. It is safe for concurrent
// use.
type Catalog struct {
	mu          sync.RWMutex
	descriptors map[string]*Descriptor
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		descriptors: make(map[string]*Descriptor),
	}
}

// Add registers a descriptor under its Name(). Duplicate names return an error.
func (c *Catalog) Add(d *Descriptor) error {
	if d == nil {
		return fmt.Errorf("enums: descriptor is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.descriptors[d.name]; exists {
		return fmt.Errorf("enums: descriptor %q already registered", d.name)
	}
	c.descriptors[d.name] = d
	return nil
}

// MustAdd panics on registration failure.
func (c *Catalog) MustAdd(d *Descriptor) {
	if err := c.Add(d); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor registered under name.
func (c *Catalog) Lookup(name string) (*Descriptor, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, ok := c.descriptors[name]
	return d, ok
}

// Names returns the sorted descriptor names.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.descriptors))
	for name := range c.descriptors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of descriptors.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.descriptors)
}

// Merge adds every descriptor of other. It stops at the first duplicate.
func (c *Catalog) Merge(other *Catalog) error {
	if other == nil {
		return nil
	}
	for _, name := range other.Names() {
		d, _ := other.Lookup(name)
		if err := c.Add(d); err != nil {
			return err
		}
	}
	return nil
}
