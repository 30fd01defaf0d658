// Package collection implements the "collection view" adapter named in
// spec.md section 7: a named group of tbv.Vector columns of equal length,
// addressed by handle, supporting row-wise composite reads. Grounded on
// schema.SchemaColumn/schema.Schema (schema/field.go, schema/schema.go),
// which tag each column with a uuid.UUID; this package keeps that
// handle-per-column idiom but drops the on-disk slab bookkeeping those
// types carry, since persistence is out of scope here.
package collection

import (
	"github.com/google/uuid"

	"github.com/dot5enko/mdds/category"
	"github.com/dot5enko/mdds/mddserr"
	"github.com/dot5enko/mdds/tbv"
)

// Column names one vector within a Collection.
type Column struct {
	ID     uuid.UUID
	Name   string
	Vector *tbv.Vector
}

// Collection is a named group of equal-length vectors, addressable either
// by name or by the uuid.UUID minted for each column when it was added.
type Collection struct {
	order   []uuid.UUID
	byID    map[uuid.UUID]*Column
	byName  map[string]uuid.UUID
	size    int
}

// New returns an empty collection.
func New() *Collection {
	return &Collection{
		byID:   make(map[uuid.UUID]*Column),
		byName: make(map[string]uuid.UUID),
	}
}

// AddColumn registers v under name and mints a new handle for it. The
// first column added fixes the collection's row count; every subsequent
// column must have the same size, or ErrInvalidArgument is returned.
func (c *Collection) AddColumn(name string, v *tbv.Vector) (uuid.UUID, error) {
	if len(c.order) == 0 {
		c.size = v.Size()
	} else if v.Size() != c.size {
		return uuid.Nil, mddserr.ErrInvalidArgument
	}
	if _, exists := c.byName[name]; exists {
		return uuid.Nil, mddserr.ErrInvalidArgument
	}

	id := uuid.New()
	col := &Column{ID: id, Name: name, Vector: v}
	c.order = append(c.order, id)
	c.byID[id] = col
	c.byName[name] = id
	return id, nil
}

// Column looks up a column by handle.
func (c *Collection) Column(id uuid.UUID) (*Column, error) {
	col, ok := c.byID[id]
	if !ok {
		return nil, mddserr.ErrInvalidArgument
	}
	return col, nil
}

// ColumnByName looks up a column by the name it was added under.
func (c *Collection) ColumnByName(name string) (*Column, error) {
	id, ok := c.byName[name]
	if !ok {
		return nil, mddserr.ErrInvalidArgument
	}
	return c.byID[id], nil
}

// Columns returns every column in insertion order.
func (c *Collection) Columns() []*Column {
	out := make([]*Column, len(c.order))
	for i, id := range c.order {
		out[i] = c.byID[id]
	}
	return out
}

// Size returns the shared row count of every column in the collection.
func (c *Collection) Size() int {
	return c.size
}

// Row reads the value of every column at row, keyed by column name.
// A row where every column is empty is reported with ErrInvalidArgument,
// since a collection row with no data in any column carries no content
// to return.
func (c *Collection) Row(row int) (map[string]any, error) {
	out := make(map[string]any, len(c.order))
	allEmpty := true
	for _, id := range c.order {
		col := c.byID[id]
		cat, val, err := col.Vector.Get(row)
		if err != nil {
			return nil, err
		}
		if cat != category.Empty {
			allEmpty = false
		}
		out[col.Name] = val
	}
	if allEmpty && len(c.order) > 0 {
		return nil, mddserr.ErrInvalidArgument
	}
	return out, nil
}

// SetEmptyRow clears row across every column in the collection.
func (c *Collection) SetEmptyRow(row int) error {
	for _, id := range c.order {
		if err := c.byID[id].Vector.SetEmpty(row, row); err != nil {
			return err
		}
	}
	return nil
}
