// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package startsession

import (
	"context"
	"fmt"

	"github.com/twofivesha/agentsouschef/internal/api"
	"github.com/twofivesha/agentsouschef/internal/session"
)

// NewHandler returns a Handler.
func NewHandler(store *session.Store) *Handler {
	return &Handler{store: store}
}

// Handler starts a new cooking session.
type Handler struct {
	store *session.Store
}

func (h *Handler) StartSession(ctx context.Context, req *api.StartSessionRequest) (*api.StartSessionResponse, error) {
	if req.RecipeID == "" {
		return nil, fmt.Errorf("startsession: %w: recipeId is required", api.ErrInvalidArgument)
	}

	snap, greeting, err := h.store.Create(ctx, req.RecipeID)
	if err != nil {
		return nil, fmt.Errorf("startsession: creating session: %w", err)
	}

	recipe, err := h.store.Recipe(snap.SessionID)
	if err != nil {
		return nil, fmt.Errorf("startsession: loading recipe: %w", err)
	}

	return &api.StartSessionResponse{
		SessionID: snap.SessionID,
		Recipe: api.Recipe{
			ID:          recipe.ID,
			Name:        recipe.Name,
			Description: recipe.Description,
			Ingredients: recipe.Ingredients,
			Steps:       recipe.Steps,
		},
		Reply: greeting,
	}, nil
}
