// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package strikeingredient

import (
	"context"
	"fmt"

	"github.com/twofivesha/agentsouschef/internal/api"
	"github.com/twofivesha/agentsouschef/internal/cooking"
	"github.com/twofivesha/agentsouschef/internal/session"
)

// NewHandler returns a Handler.
func NewHandler(store *session.Store) *Handler {
	return &Handler{store: store}
}

// Handler strikes or unstrikes an ingredient explicitly.
type Handler struct {
	store *session.Store
}

func (h *Handler) StrikeIngredient(ctx context.Context, req *api.StrikeIngredientRequest) (*api.StrikeIngredientResponse, error) {
	var action cooking.StrikeAction
	switch req.Action {
	case "strike":
		action = cooking.ActionStrike
	case "unstrike":
		action = cooking.ActionUnstrike
	default:
		return nil, fmt.Errorf("strikeingredient: %w: action must be strike or unstrike, got %q", api.ErrInvalidArgument, req.Action)
	}

	reply, snap, err := h.store.Strike(ctx, req.SessionID, req.Ingredient, action)
	if err != nil {
		return nil, fmt.Errorf("strikeingredient: applying %s: %w", action, err)
	}

	recipe, err := h.store.Recipe(req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("strikeingredient: loading recipe: %w", err)
	}

	return &api.StrikeIngredientResponse{
		Reply: reply,
		Ingredients: api.IngredientState{
			Ingredients:   recipe.Ingredients,
			Substitutions: snap.Substitutions,
			Strikes:       snap.Strikes,
		},
	}, nil
}
