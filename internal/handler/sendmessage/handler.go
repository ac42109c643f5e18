// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package sendmessage

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

// Handler processes one line of user input against a session.
type Handler struct {
	store *session.Store
}

func (h *Handler) SendMessage(ctx context.Context, req *api.SendMessageRequest) (*api.SendMessageResponse, error) {
	reply, snap, err := h.store.Execute(ctx, req.SessionID, req.Message)
	if err != nil {
		return nil, fmt.Errorf("sendmessage: executing command: %w", err)
	}

	recipe, err := h.store.Recipe(req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("sendmessage: loading recipe: %w", err)
	}

	return &api.SendMessageResponse{
		Reply: reply,
		Ingredients: api.IngredientState{
			Ingredients:   recipe.Ingredients,
			Substitutions: snap.Substitutions,
			Strikes:       snap.Strikes,
		},
		Steps: api.StepState{
			Steps:       recipe.Steps,
			CurrentStep: snap.CurrentStep,
		},
		Recipe: api.RecipeSummary{
			ID:          recipe.ID,
			Name:        recipe.Name,
			Description: recipe.Description,
		},
	}, nil
}
