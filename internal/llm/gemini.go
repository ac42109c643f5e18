// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/twofivesha/agentsouschef/internal/cooking"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

var replySchema = &genai.Schema{
	Type:        "object",
	Description: "A reply from the cooking assistant.",
	Required:    []string{"reply", "advance_step"},
	Properties: map[string]*genai.Schema{
		"reply": {
			Type:        "string",
			Description: "A short natural-language message to the user.",
		},
		"advance_step": {
			Type:        "boolean",
			Description: "Whether the app should move to the next step.",
		},
	},
}

// NewGemini returns a Collaborator backed by the Gemini API.
func NewGemini(client *genai.Client, model string) *Gemini {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &Gemini{client: client, model: model}
}

// Gemini answers unrecognized input with Gemini structured output.
type Gemini struct {
	client *genai.Client
	model  string
}

// Chat implements Collaborator.
func (g *Gemini) Chat(ctx context.Context, bundle *cooking.ContextBundle) (*Reply, error) {
	res, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{
		genai.NewContentFromText(bundle.Render(), genai.RoleUser),
	}, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SousChefPrompt(), genai.RoleModel),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    replySchema,
	})
	if err != nil {
		return nil, fmt.Errorf("llm: generating gemini reply: %w", err)
	}
	if len(res.Candidates) != 1 || res.Candidates[0].Content == nil ||
		len(res.Candidates[0].Content.Parts) != 1 || res.Candidates[0].Content.Parts[0].Text == "" {
		return nil, fmt.Errorf("llm: unexpected response from gemini: %v", res) //nolint:err113
	}
	return parseReply(res.Candidates[0].Content.Parts[0].Text, bundle.UserInput), nil
}
