// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

// Package llm adapts language-model providers to the cooking session's
// collaborator fallback for input the command grammar does not match.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/twofivesha/agentsouschef/internal/cooking"
)

// ErrUnavailable is returned when the collaborator cannot produce a reply,
// after retries. Callers degrade to a canned response rather than failing
// the user's message.
var ErrUnavailable = errors.New("collaborator unavailable")

// Reply is one collaborator answer. AdvanceStep is advisory; the session
// engine decides whether to act on it.
type Reply struct {
	Text        string
	AdvanceStep bool
}

// Collaborator answers free-form user input with recipe context. Chat must
// be safe for concurrent use; the session engine calls it without holding
// any session lock.
type Collaborator interface {
	Chat(ctx context.Context, bundle *cooking.ContextBundle) (*Reply, error)
}

type modelReply struct {
	Reply       string `json:"reply"`
	AdvanceStep bool   `json:"advance_step"`
}

// parseReply decodes the model's JSON contract. Models occasionally ignore
// the schema, so a non-JSON answer falls back to the raw text with the
// advance decision inferred from the user's own words.
func parseReply(raw, userInput string) *Reply {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var mr modelReply
	if err := json.Unmarshal([]byte(trimmed), &mr); err == nil && mr.Reply != "" {
		return &Reply{Text: mr.Reply, AdvanceStep: mr.AdvanceStep}
	}
	return &Reply{Text: trimmed, AdvanceStep: naiveAdvance(userInput)}
}

var advanceTriggers = []string{
	"done", "finished", "next", "complete", "what's next", "whats next",
}

// naiveAdvance scans the user's message for completion language. Only used
// when the model's structured output could not be parsed.
func naiveAdvance(userInput string) bool {
	lower := strings.ToLower(userInput)
	for _, t := range advanceTriggers {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}
