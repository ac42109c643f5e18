// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package recipes

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Catalog when no recipe has the requested ID.
var ErrNotFound = errors.New("recipe not found")

// Recipe is an immutable recipe as served by a Catalog. Ingredients and steps
// are ordered, and ingredient strings are compared by exact identity by the
// cooking engine.
type Recipe struct {
	// ID is the unique identifier of the recipe within the catalog.
	ID string `firestore:"id" json:"id"`

	// Name is the display name of the recipe.
	Name string `firestore:"name" json:"name"`

	// Description is an optional short description.
	Description string `firestore:"description" json:"description"`

	// Ingredients are the ingredients as written, e.g. "3 tablespoons olive oil".
	Ingredients []string `firestore:"ingredients" json:"ingredients"`

	// Steps are the ordered step texts.
	Steps []string `firestore:"steps" json:"steps"`
}

// Summary is a lightweight view of a recipe for listings.
type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Summary returns the listing view of the recipe.
func (r *Recipe) Summary() Summary {
	return Summary{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
	}
}

// Catalog is a read-only source of recipes keyed by opaque identifiers.
type Catalog interface {
	// Get returns the recipe with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Recipe, error)

	// List returns summaries of all recipes, sorted by name.
	List(ctx context.Context) ([]Summary, error)

	// Search returns summaries of recipes whose name contains the query,
	// case-insensitively. An empty query matches everything.
	Search(ctx context.Context, query string) ([]Summary, error)
}
