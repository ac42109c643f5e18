// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package listsessions

import (
	"context"
	"sort"

	"github.com/twofivesha/agentsouschef/internal/api"
	"github.com/twofivesha/agentsouschef/internal/session"
)

// NewHandler returns a Handler.
func NewHandler(store *session.Store) *Handler {
	return &Handler{store: store}
}

// Handler lists all active sessions, for diagnostics.
type Handler struct {
	store *session.Store
}

func (h *Handler) ListSessions(_ context.Context, _ *api.ListSessionsRequest) (*api.ListSessionsResponse, error) {
	snaps := h.store.List()
	res := &api.ListSessionsResponse{Sessions: make([]api.SessionSummary, len(snaps))}
	for i, snap := range snaps {
		res.Sessions[i] = api.SessionSummary{
			SessionID:    snap.SessionID,
			RecipeName:   snap.RecipeName,
			CurrentStep:  snap.CurrentStep,
			MessageCount: snap.MessageCount,
		}
	}
	sort.Slice(res.Sessions, func(i, j int) bool {
		return res.Sessions[i].SessionID < res.Sessions[j].SessionID
	})
	return res, nil
}
