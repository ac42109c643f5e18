// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"github.com/curioswitch/go-curiostack/config"
)

// Catalog selects the recipe source.
type Catalog struct {
	// Source is "builtin" or "firestore".
	Source string `koanf:"source"`
}

// Collaborator configures the language-model fallback.
type Collaborator struct {
	// Provider is "gemini", "openai", or "none" to disable the fallback.
	Provider string `koanf:"provider"`

	// Model overrides the provider's default model.
	Model string `koanf:"model"`

	// Timeout bounds one collaborator call, e.g. "30s".
	Timeout string `koanf:"timeout"`

	// MaxTries is the retry budget inside the collaborator client.
	MaxTries uint `koanf:"maxtries"`
}

// Sessions configures session lifecycle.
type Sessions struct {
	// IdleTimeout evicts sessions idle for this long, e.g. "2h".
	// Empty or "0" disables eviction.
	IdleTimeout string `koanf:"idletimeout"`
}

type Config struct {
	config.Common

	// Catalog is the recipe source configuration.
	Catalog Catalog `koanf:"catalog"`

	// Collaborator is the language-model configuration.
	Collaborator Collaborator `koanf:"collaborator"`

	// Sessions is the session lifecycle configuration.
	Sessions Sessions `koanf:"sessions"`
}
