// Package listing parses list query parameters and applies them as GORM scopes.
package listing

import (
	"fmt"

	"gorm.io/gorm"
)

// Request holds filter and sort parameters parsed from query strings.
type Request struct {
	Type      string `form:"type"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order" binding:"omitempty,sort_order"`
}

// Defaults fills in newest-first ordering when sort parameters are absent.
func (r *Request) Defaults() {
	if r.SortBy == "" {
		r.SortBy = "created_at"
	}
	if r.SortOrder == "" {
		r.SortOrder = "desc"
	}
}

// Columns maps accepted sort_by values to database columns.
type Columns map[string]string

// Base sort keys shared by every resource. camelCase aliases are accepted for
// older clients.
var Base = Columns{
	"created_at": "created_at",
	"createdAt":  "created_at",
	"updated_at": "updated_at",
	"updatedAt":  "updated_at",
}

// With returns a copy of c extended with extra.
func (c Columns) With(extra Columns) Columns {
	out := make(Columns, len(c)+len(extra))
	for k, v := range c {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// OrderClause resolves the request against allowed columns. Unknown sort keys
// are rejected so they never reach SQL.
func (r Request) OrderClause(allowed Columns) (string, error) {
	r.Defaults()
	col, ok := allowed[r.SortBy]
	if !ok {
		return "", fmt.Errorf("unsupported sort_by %q", r.SortBy)
	}
	dir := "DESC"
	if r.SortOrder == "asc" {
		dir = "ASC"
	}
	return fmt.Sprintf("%s %s, id %s", col, dir, dir), nil
}

// Order returns a GORM scope applying a clause built by OrderClause.
func Order(clause string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(clause)
	}
}

// Response wraps a list of items with its size.
type Response[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// NewResponse creates a Response, normalising nil to an empty list.
func NewResponse[T any](items []T) Response[T] {
	if items == nil {
		items = []T{}
	}
	return Response[T]{Items: items, Count: len(items)}
}
