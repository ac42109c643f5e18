// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package deletesession

import (
	"context"

	"github.com/twofivesha/agentsouschef/internal/api"
	"github.com/twofivesha/agentsouschef/internal/session"
)

// NewHandler returns a Handler.
func NewHandler(store *session.Store) *Handler {
	return &Handler{store: store}
}

// Handler ends a cooking session. Deleting an unknown session is not an
// error; the response reports whether one existed.
type Handler struct {
	store *session.Store
}

func (h *Handler) DeleteSession(_ context.Context, req *api.DeleteSessionRequest) (*api.DeleteSessionResponse, error) {
	return &api.DeleteSessionResponse{Deleted: h.store.Delete(req.SessionID)}, nil
}
