// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package listrecipes

import (
	"context"
	"fmt"

	"github.com/twofivesha/agentsouschef/internal/api"
	"github.com/twofivesha/agentsouschef/internal/recipes"
)

// NewHandler returns a Handler.
func NewHandler(catalog recipes.Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// Handler lists catalog recipes.
type Handler struct {
	catalog recipes.Catalog
}

func (h *Handler) ListRecipes(ctx context.Context, req *api.ListRecipesRequest) (*api.ListRecipesResponse, error) {
	summaries, err := h.catalog.Search(ctx, req.Query)
	if err != nil {
		return nil, fmt.Errorf("listrecipes: searching recipes: %w", err)
	}

	res := &api.ListRecipesResponse{Recipes: make([]api.RecipeSummary, len(summaries))}
	for i, s := range summaries {
		res.Recipes[i] = api.RecipeSummary{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
		}
	}
	return res, nil
}
