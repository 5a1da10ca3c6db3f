package building

import (
	"fmt"
	"os"
)

// Catalog is an immutable, ordered set of buildings with a designated
// default. It replaces any notion of a process-wide "current building":
// callers name the building they want, or ask for the default explicitly.
type Catalog struct {
	order     []*Building
	byID      map[string]*Building
	defaultID string
}

// NewCatalog indexes buildings by id. defaultID selects the default
// building; when empty, the first building is the default.
// Returns ErrDuplicateBuilding or ErrUnknownBuilding.
func NewCatalog(defaultID string, buildings ...*Building) (*Catalog, error) {
	c := &Catalog{
		order: make([]*Building, 0, len(buildings)),
		byID:  make(map[string]*Building, len(buildings)),
	}
	for _, b := range buildings {
		if _, dup := c.byID[b.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateBuilding, b.ID)
		}
		c.byID[b.ID] = b
		c.order = append(c.order, b)
	}
	switch {
	case defaultID != "":
		if _, ok := c.byID[defaultID]; !ok {
			return nil, fmt.Errorf("%w: default %q", ErrUnknownBuilding, defaultID)
		}
		c.defaultID = defaultID
	case len(c.order) > 0:
		c.defaultID = c.order[0].ID
	}

	return c, nil
}

// Get returns the building with the given id.
func (c *Catalog) Get(id string) (*Building, bool) {
	b, ok := c.byID[id]
	return b, ok
}

// Resolve returns the building with the given id, or the default building
// when id is empty.
func (c *Catalog) Resolve(id string) (*Building, bool) {
	if id == "" {
		id = c.defaultID
	}
	return c.Get(id)
}

// DefaultID returns the id of the default building ("" for an empty catalog).
func (c *Catalog) DefaultID() string { return c.defaultID }

// Buildings returns the buildings in load order.
func (c *Catalog) Buildings() []*Building {
	return append([]*Building(nil), c.order...)
}

// Len returns the number of buildings.
func (c *Catalog) Len() int { return len(c.order) }

// LoadCatalog loads every path (a building file or a directory of them) into
// a Catalog. With no paths the catalog holds only the Fallback building.
func LoadCatalog(defaultID string, paths ...string) (*Catalog, error) {
	if len(paths) == 0 {
		return NewCatalog(defaultID, Fallback())
	}
	var all []*Building
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("building: %w", err)
		}
		var bs []*Building
		if info.IsDir() {
			bs, err = LoadDir(p)
		} else {
			bs, err = LoadFiles(p)
		}
		if err != nil {
			return nil, err
		}
		all = append(all, bs...)
	}
	return NewCatalog(defaultID, all...)
}
