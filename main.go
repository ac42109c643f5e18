// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/curioswitch/go-curiostack/server"
	"github.com/openai/openai-go/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/genai"

	"github.com/twofivesha/agentsouschef/internal/config"
	"github.com/twofivesha/agentsouschef/internal/httpapi"
	"github.com/twofivesha/agentsouschef/internal/llm"
	"github.com/twofivesha/agentsouschef/internal/metrics"
	"github.com/twofivesha/agentsouschef/internal/recipes"
	"github.com/twofivesha/agentsouschef/internal/session"
)

//go:embed conf/*.yaml
var confFiles embed.FS

func main() {
	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	metrics.Register(prometheus.DefaultRegisterer)
	mux := server.Mux(s)

	var catalog recipes.Catalog = recipes.BuiltinLibrary()
	if conf.Catalog.Source == "firestore" {
		fsClient, err := firestore.NewClient(ctx, conf.Google.Project)
		if err != nil {
			return fmt.Errorf("main: create firestore client: %w", err)
		}
		defer func() {
			if err := fsClient.Close(); err != nil {
				slog.ErrorContext(ctx, "main: close firestore client", "error", err)
			}
		}()
		catalog = recipes.NewFirestoreCatalog(fsClient)
	}

	collab, err := newCollaborator(ctx, conf)
	if err != nil {
		return err
	}

	opts := []session.Option{}
	if conf.Sessions.IdleTimeout != "" && conf.Sessions.IdleTimeout != "0" {
		idle, err := time.ParseDuration(conf.Sessions.IdleTimeout)
		if err != nil {
			return fmt.Errorf("main: parsing sessions.idletimeout: %w", err)
		}
		opts = append(opts, session.WithIdleTimeout(idle))
	}
	if conf.Collaborator.Timeout != "" {
		timeout, err := time.ParseDuration(conf.Collaborator.Timeout)
		if err != nil {
			return fmt.Errorf("main: parsing collaborator.timeout: %w", err)
		}
		opts = append(opts, session.WithCollaboratorTimeout(timeout))
	}

	store := session.New(catalog, collab, opts...)
	defer store.Close()

	httpapi.Register(mux, store, catalog)
	mux.Method(http.MethodGet, "/internal/metrics", promhttp.Handler())

	if err := server.Start(ctx, s); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	return nil
}

func newCollaborator(ctx context.Context, conf *config.Config) (llm.Collaborator, error) {
	var collab llm.Collaborator
	switch conf.Collaborator.Provider {
	case "none":
		return nil, nil
	case "openai":
		oai := openai.NewClient()
		collab = llm.NewOpenAI(&oai, conf.Collaborator.Model)
	default:
		genAI, err := genai.NewClient(ctx, &genai.ClientConfig{
			Backend: genai.BackendGeminiAPI,
			Project: conf.Google.Project,
		})
		if err != nil {
			return nil, fmt.Errorf("main: creating genai client: %w", err)
		}
		collab = llm.NewGemini(genAI, conf.Collaborator.Model)
	}
	return llm.WithRetry(collab, conf.Collaborator.MaxTries), nil
}
