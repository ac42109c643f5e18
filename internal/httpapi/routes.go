// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

// Package httpapi mounts the service API onto a chi router. It only
// translates between HTTP and the in-process operations; all behavior
// lives in the engine packages.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/twofivesha/agentsouschef/internal/api"
	"github.com/twofivesha/agentsouschef/internal/cooking"
	"github.com/twofivesha/agentsouschef/internal/handler/deletesession"
	"github.com/twofivesha/agentsouschef/internal/handler/listrecipes"
	"github.com/twofivesha/agentsouschef/internal/handler/listsessions"
	"github.com/twofivesha/agentsouschef/internal/handler/sendmessage"
	"github.com/twofivesha/agentsouschef/internal/handler/sessioninfo"
	"github.com/twofivesha/agentsouschef/internal/handler/startsession"
	"github.com/twofivesha/agentsouschef/internal/handler/strikeingredient"
	"github.com/twofivesha/agentsouschef/internal/handler/substitute"
	"github.com/twofivesha/agentsouschef/internal/recipes"
	"github.com/twofivesha/agentsouschef/internal/session"
)

// Register mounts all API routes on r.
func Register(r chi.Router, store *session.Store, catalog recipes.Catalog) {
	recipesH := listrecipes.NewHandler(catalog)
	startH := startsession.NewHandler(store)
	messageH := sendmessage.NewHandler(store)
	strikeH := strikeingredient.NewHandler(store)
	subH := substitute.NewHandler(store)
	infoH := sessioninfo.NewHandler(store)
	deleteH := deletesession.NewHandler(store)
	listH := listsessions.NewHandler(store)

	r.Get("/api/recipes", func(w http.ResponseWriter, req *http.Request) {
		res, err := recipesH.ListRecipes(req.Context(), &api.ListRecipesRequest{
			Query: req.URL.Query().Get("q"),
		})
		respond(w, req, res, err)
	})

	r.Post("/api/sessions", func(w http.ResponseWriter, req *http.Request) {
		var body api.StartSessionRequest
		if !decode(w, req, &body) {
			return
		}
		res, err := startH.StartSession(req.Context(), &body)
		respond(w, req, res, err)
	})

	r.Get("/api/sessions", func(w http.ResponseWriter, req *http.Request) {
		res, err := listH.ListSessions(req.Context(), &api.ListSessionsRequest{})
		respond(w, req, res, err)
	})

	r.Route("/api/sessions/{sessionID}", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			res, err := infoH.GetSession(req.Context(), &api.GetSessionRequest{
				SessionID: chi.URLParam(req, "sessionID"),
			})
			respond(w, req, res, err)
		})

		r.Delete("/", func(w http.ResponseWriter, req *http.Request) {
			res, err := deleteH.DeleteSession(req.Context(), &api.DeleteSessionRequest{
				SessionID: chi.URLParam(req, "sessionID"),
			})
			respond(w, req, res, err)
		})

		r.Post("/message", func(w http.ResponseWriter, req *http.Request) {
			var body api.SendMessageRequest
			if !decode(w, req, &body) {
				return
			}
			body.SessionID = chi.URLParam(req, "sessionID")
			res, err := messageH.SendMessage(req.Context(), &body)
			respond(w, req, res, err)
		})

		r.Post("/strike", func(w http.ResponseWriter, req *http.Request) {
			var body api.StrikeIngredientRequest
			if !decode(w, req, &body) {
				return
			}
			body.SessionID = chi.URLParam(req, "sessionID")
			res, err := strikeH.StrikeIngredient(req.Context(), &body)
			respond(w, req, res, err)
		})

		r.Put("/substitutions", func(w http.ResponseWriter, req *http.Request) {
			var body api.SetSubstitutionRequest
			if !decode(w, req, &body) {
				return
			}
			body.SessionID = chi.URLParam(req, "sessionID")
			res, err := subH.SetSubstitution(req.Context(), &body)
			respond(w, req, res, err)
		})

		// The original ingredient rides in the query; DELETE bodies are
		// dropped by some proxies.
		r.Delete("/substitutions", func(w http.ResponseWriter, req *http.Request) {
			res, err := subH.ClearSubstitution(req.Context(), &api.ClearSubstitutionRequest{
				SessionID: chi.URLParam(req, "sessionID"),
				Original:  req.URL.Query().Get("original"),
			})
			respond(w, req, res, err)
		})
	})
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

func decode(w http.ResponseWriter, req *http.Request, v any) bool {
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

// respond maps engine sentinels to status codes. Each failure class maps to
// a distinct, user-legible error so callers can correct and retry.
func respond(w http.ResponseWriter, req *http.Request, res any, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, res)
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, recipes.ErrNotFound), errors.Is(err, session.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, cooking.ErrIngredientNotFound):
		status = http.StatusBadRequest
	case errors.Is(err, cooking.ErrStepRange):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, api.ErrInvalidArgument):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		slog.ErrorContext(req.Context(), "httpapi: request failed", "path", req.URL.Path, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("httpapi: encoding response", "error", err)
	}
}
