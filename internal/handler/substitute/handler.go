// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package substitute

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

// Handler manages ingredient substitutions.
type Handler struct {
	store *session.Store
}

func (h *Handler) SetSubstitution(ctx context.Context, req *api.SetSubstitutionRequest) (*api.SetSubstitutionResponse, error) {
	if req.Original == "" || req.Substitute == "" {
		return nil, fmt.Errorf("substitute: %w: original and substitute are required", api.ErrInvalidArgument)
	}

	reply, snap, err := h.store.Substitute(ctx, req.SessionID, req.Original, req.Substitute)
	if err != nil {
		return nil, fmt.Errorf("substitute: setting substitution: %w", err)
	}

	ingredients, err := h.ingredientState(req.SessionID, snap)
	if err != nil {
		return nil, err
	}
	return &api.SetSubstitutionResponse{Reply: reply, Ingredients: *ingredients}, nil
}

func (h *Handler) ClearSubstitution(ctx context.Context, req *api.ClearSubstitutionRequest) (*api.ClearSubstitutionResponse, error) {
	if req.Original == "" {
		return nil, fmt.Errorf("substitute: %w: original is required", api.ErrInvalidArgument)
	}

	_, snap, err := h.store.ClearSubstitution(ctx, req.SessionID, req.Original)
	if err != nil {
		return nil, fmt.Errorf("substitute: clearing substitution: %w", err)
	}

	ingredients, err := h.ingredientState(req.SessionID, snap)
	if err != nil {
		return nil, err
	}
	return &api.ClearSubstitutionResponse{Ingredients: *ingredients}, nil
}

func (h *Handler) ingredientState(sessionID string, snap *session.Snapshot) (*api.IngredientState, error) {
	recipe, err := h.store.Recipe(sessionID)
	if err != nil {
		return nil, fmt.Errorf("substitute: loading recipe: %w", err)
	}
	return &api.IngredientState{
		Ingredients:   recipe.Ingredients,
		Substitutions: snap.Substitutions,
		Strikes:       snap.Strikes,
	}, nil
}
