// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"

	"github.com/twofivesha/agentsouschef/internal/cooking"
)

// DefaultOpenAIModel is used when no model is configured.
const DefaultOpenAIModel = openai.ChatModelGPT4oMini

// NewOpenAI returns a Collaborator backed by the OpenAI chat completions
// API.
func NewOpenAI(client *openai.Client, model string) *OpenAI {
	m := openai.ChatModel(model)
	if m == "" {
		m = DefaultOpenAIModel
	}
	return &OpenAI{client: client, model: m}
}

// OpenAI answers unrecognized input with an OpenAI chat completion.
type OpenAI struct {
	client *openai.Client
	model  openai.ChatModel
}

// Chat implements Collaborator.
func (o *OpenAI) Chat(ctx context.Context, bundle *cooking.ContextBundle) (*Reply, error) {
	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: o.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SousChefPrompt()),
			openai.UserMessage(bundle.Render()),
		},
		MaxTokens: openai.Int(300),
	})
	if err != nil {
		return nil, fmt.Errorf("llm: generating openai reply: %w", err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("llm: unexpected response from openai: %v", completion) //nolint:err113
	}
	return parseReply(completion.Choices[0].Message.Content, bundle.UserInput), nil
}
