package gamemap

import "fmt"

// Catalog is the immutable registry of tile kinds. It is built once at
// startup and shared by reference between every floor.
type Catalog struct {
	kinds  []TileKind
	byName map[string]TileID
}

// NewCatalog registers kinds. Each kind's ID must equal its position in the
// slice and names must be unique.
func NewCatalog(kinds []TileKind) (*Catalog, error) {
	c := &Catalog{
		kinds:  make([]TileKind, len(kinds)),
		byName: make(map[string]TileID, len(kinds)),
	}
	for i, k := range kinds {
		if int(k.ID) != i {
			return nil, fmt.Errorf("tile %q: id %d registered at position %d", k.Name, k.ID, i)
		}
		if _, dup := c.byName[k.Name]; dup {
			return nil, fmt.Errorf("tile %q registered twice", k.Name)
		}
		c.kinds[i] = k
		c.byName[k.Name] = k.ID
	}
	return c, nil
}

// StandardCatalog returns a catalog holding the built-in terrain.
func StandardCatalog() *Catalog {
	c, err := NewCatalog(standardKinds())
	if err != nil {
		panic(err)
	}
	return c
}

// Kind returns a copy of the kind registered under id. Unknown ids fall back
// to the first registered kind.
func (c *Catalog) Kind(id TileID) TileKind {
	if int(id) >= len(c.kinds) {
		return c.kinds[0]
	}
	return c.kinds[id]
}

// Lookup resolves a kind by name.
func (c *Catalog) Lookup(name string) (TileID, bool) {
	id, ok := c.byName[name]
	return id, ok
}

// Len returns the number of registered kinds.
func (c *Catalog) Len() int { return len(c.kinds) }

// Valid reports whether id names a registered kind.
func (c *Catalog) Valid(id TileID) bool { return int(id) < len(c.kinds) }
