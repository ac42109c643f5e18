// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package recipes

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Library is an in-memory Catalog. It is immutable after construction so it
// can be shared between goroutines freely.
type Library struct {
	byID map[string]*Recipe
}

// NewLibrary returns a Library serving the given recipes.
func NewLibrary(recipes ...*Recipe) (*Library, error) {
	byID := make(map[string]*Recipe, len(recipes))
	for _, r := range recipes {
		if r.ID == "" {
			return nil, fmt.Errorf("recipes: recipe %q has no ID", r.Name)
		}
		if _, ok := byID[r.ID]; ok {
			return nil, fmt.Errorf("recipes: duplicate recipe ID %q", r.ID)
		}
		byID[r.ID] = r
	}
	return &Library{byID: byID}, nil
}

// BuiltinLibrary returns a Library with a small set of starter recipes,
// used when no external catalog is configured.
func BuiltinLibrary() *Library {
	l, err := NewLibrary(builtinRecipes...)
	if err != nil {
		// Builtin data is static, a failure here is a programming error.
		panic(err)
	}
	return l
}

// Get implements Catalog.
func (l *Library) Get(_ context.Context, id string) (*Recipe, error) {
	r, ok := l.byID[id]
	if !ok {
		return nil, fmt.Errorf("recipes: getting %q: %w", id, ErrNotFound)
	}
	return r, nil
}

// List implements Catalog.
func (l *Library) List(ctx context.Context) ([]Summary, error) {
	return l.Search(ctx, "")
}

// Search implements Catalog.
func (l *Library) Search(_ context.Context, query string) ([]Summary, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	res := make([]Summary, 0, len(l.byID))
	for _, r := range l.byID {
		if query != "" && !strings.Contains(strings.ToLower(r.Name), query) {
			continue
		}
		res = append(res, r.Summary())
	}
	sort.Slice(res, func(i, j int) bool {
		return strings.ToLower(res[i].Name) < strings.ToLower(res[j].Name)
	})
	return res, nil
}

var builtinRecipes = []*Recipe{
	{
		ID:          "garlic_pasta",
		Name:        "Simple Garlic Pasta",
		Description: "Fast, simple, garlicky pasta for weeknights.",
		Ingredients: []string{
			"8 ounces dry spaghetti or other pasta",
			"Salt for the pasta water",
			"3 tablespoons olive oil",
			"3-4 cloves garlic, minced",
			"Freshly ground black pepper",
			"1/2 cup reserved pasta cooking water (as needed)",
			"Grated Parmesan or Pecorino cheese for serving",
		},
		Steps: []string{
			"Bring a large pot of salted water to a boil.",
			"Add pasta and cook until just shy of al dente (about 1 minute less than package instructions).",
			"While pasta cooks, gently warm olive oil in a pan over low heat.",
			"Add minced garlic to the oil and cook gently until fragrant, not browned.",
			"Reserve a cup of pasta water, then drain the pasta.",
			"Toss pasta with the garlic oil, a splash of pasta water, salt, and pepper.",
			"Adjust with more pasta water if needed, then finish with cheese and serve.",
		},
	},
	{
		ID:          "scrambled_eggs",
		Name:        "Soft Scrambled Eggs",
		Description: "Gentle, creamy scrambled eggs on the stove.",
		Ingredients: []string{
			"3 large eggs",
			"Salt",
			"1-2 teaspoons butter",
			"Freshly ground black pepper",
			"Optional: 1-2 tablespoons milk or cream",
		},
		Steps: []string{
			"Crack eggs into a bowl, add a pinch of salt, and whisk until fully combined.",
			"Heat a nonstick pan over low to medium-low heat and add a small knob of butter.",
			"Pour the eggs into the pan and let them sit for a few seconds until they just start to set at the edges.",
			"Use a spatula to gently push the eggs from the edges toward the center, forming soft curds.",
			"Continue slowly pushing and folding the eggs until they are mostly set but still slightly glossy and soft.",
			"Remove the pan from the heat; the eggs will finish cooking off the heat. Taste and adjust seasoning, then serve.",
		},
	},
}
