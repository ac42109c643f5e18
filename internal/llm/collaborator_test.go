// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twofivesha/agentsouschef/internal/cooking"
)

func TestParseReply(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		userInput string
		want      Reply
	}{
		{
			name: "structured output",
			raw:  `{"reply": "Sounds good, keep stirring.", "advance_step": false}`,
			want: Reply{Text: "Sounds good, keep stirring."},
		},
		{
			name: "structured advance",
			raw:  `{"reply": "Great, on to the next step!", "advance_step": true}`,
			want: Reply{Text: "Great, on to the next step!", AdvanceStep: true},
		},
		{
			name: "fenced json",
			raw:  "```json\n{\"reply\": \"Use a splash of milk.\", \"advance_step\": false}\n```",
			want: Reply{Text: "Use a splash of milk."},
		},
		{
			name:      "plain text falls back to trigger scan",
			raw:       "Just keep whisking until it thickens.",
			userInput: "how long do I whisk?",
			want:      Reply{Text: "Just keep whisking until it thickens."},
		},
		{
			name:      "plain text with completion language advances",
			raw:       "Nice work, move on.",
			userInput: "ok I'm done with this part",
			want:      Reply{Text: "Nice work, move on.", AdvanceStep: true},
		},
		{
			name:      "empty reply field treated as unstructured",
			raw:       `{"reply": "", "advance_step": true}`,
			userInput: "hello",
			want:      Reply{Text: `{"reply": "", "advance_step": true}`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseReply(tt.raw, tt.userInput)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestNaiveAdvance(t *testing.T) {
	assert.True(t, naiveAdvance("I finished chopping"))
	assert.True(t, naiveAdvance("whats next?"))
	assert.False(t, naiveAdvance("can I use oat milk?"))
}

type scriptedCollaborator struct {
	replies []*Reply
	errs    []error
	calls   int
}

func (s *scriptedCollaborator) Chat(_ context.Context, _ *cooking.ContextBundle) (*Reply, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	return s.replies[i], nil
}

func TestWithRetryRecovers(t *testing.T) {
	errBoom := errors.New("boom")
	inner := &scriptedCollaborator{
		errs:    []error{errBoom, nil},
		replies: []*Reply{nil, {Text: "Recovered."}},
	}

	reply, err := WithRetry(inner, 3).Chat(context.Background(), &cooking.ContextBundle{})
	require.NoError(t, err)
	assert.Equal(t, "Recovered.", reply.Text)
	assert.Equal(t, 2, inner.calls)
}

func TestWithRetryExhaustion(t *testing.T) {
	errBoom := errors.New("boom")
	inner := &scriptedCollaborator{errs: []error{errBoom, errBoom}}

	_, err := WithRetry(inner, 2).Chat(context.Background(), &cooking.ContextBundle{})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 2, inner.calls)
}
