// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package sessioninfo

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

// Handler inspects one session.
type Handler struct {
	store *session.Store
}

func (h *Handler) GetSession(_ context.Context, req *api.GetSessionRequest) (*api.GetSessionResponse, error) {
	snap, err := h.store.Get(req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("sessioninfo: getting session: %w", err)
	}

	return &api.GetSessionResponse{
		SessionID:    snap.SessionID,
		RecipeID:     snap.RecipeID,
		RecipeName:   snap.RecipeName,
		CurrentStep:  snap.CurrentStep,
		TotalSteps:   snap.TotalSteps,
		MessageCount: snap.MessageCount,
	}, nil
}
