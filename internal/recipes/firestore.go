// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package recipes

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// storedIngredient is an ingredient document as stored in Firestore.
type storedIngredient struct {
	Name     string `firestore:"name"`
	Quantity string `firestore:"quantity"`
}

// storedStep is a step document as stored in Firestore.
type storedStep struct {
	Description string `firestore:"description"`
}

// storedRecipe is the Firestore document layout for a recipe.
type storedRecipe struct {
	ID          string             `firestore:"id"`
	Title       string             `firestore:"title"`
	Description string             `firestore:"description"`
	Ingredients []storedIngredient `firestore:"ingredients"`
	Steps       []storedStep       `firestore:"steps"`
}

func (s *storedRecipe) toRecipe() *Recipe {
	r := &Recipe{
		ID:          s.ID,
		Name:        s.Title,
		Description: s.Description,
	}
	for _, ing := range s.Ingredients {
		r.Ingredients = append(r.Ingredients, strings.TrimSpace(ing.Quantity+" "+ing.Name))
	}
	for _, step := range s.Steps {
		r.Steps = append(r.Steps, step.Description)
	}
	return r
}

// NewFirestoreCatalog returns a Catalog backed by the recipes collection in
// Firestore.
func NewFirestoreCatalog(store *firestore.Client) *FirestoreCatalog {
	return &FirestoreCatalog{store: store}
}

// FirestoreCatalog serves recipes from Firestore.
type FirestoreCatalog struct {
	store *firestore.Client
}

// Get implements Catalog.
func (c *FirestoreCatalog) Get(ctx context.Context, id string) (*Recipe, error) {
	doc, err := c.store.Collection("recipes").Where("id", "==", id).Limit(1).Documents(ctx).Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, fmt.Errorf("recipes: getting %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("recipes: getting recipe from firestore: %w", err)
	}
	var stored storedRecipe
	if err := doc.DataTo(&stored); err != nil {
		return nil, fmt.Errorf("recipes: unmarshalling recipe: %w", err)
	}
	return stored.toRecipe(), nil
}

// List implements Catalog.
func (c *FirestoreCatalog) List(ctx context.Context) ([]Summary, error) {
	return c.Search(ctx, "")
}

// Search implements Catalog. Firestore has no case-insensitive contains
// query, so matching happens client-side over the full collection. Catalogs
// large enough for that to hurt should front this with a search engine.
func (c *FirestoreCatalog) Search(ctx context.Context, query string) ([]Summary, error) {
	docs, err := c.store.Collection("recipes").OrderBy("id", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("recipes: listing recipes from firestore: %w", err)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	var res []Summary
	for _, doc := range docs {
		var stored storedRecipe
		if err := doc.DataTo(&stored); err != nil {
			return nil, fmt.Errorf("recipes: unmarshalling recipe: %w", err)
		}
		if query != "" && !strings.Contains(strings.ToLower(stored.Title), query) {
			continue
		}
		res = append(res, stored.toRecipe().Summary())
	}
	sort.Slice(res, func(i, j int) bool {
		return strings.ToLower(res[i].Name) < strings.ToLower(res[j].Name)
	})
	return res, nil
}
