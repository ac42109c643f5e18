// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v5"

	"github.com/twofivesha/agentsouschef/internal/cooking"
)

// WithRetry wraps a Collaborator with exponential-backoff retries. The
// session engine itself never retries; retry policy lives here, in the
// collaborator client.
func WithRetry(next Collaborator, maxTries uint) Collaborator {
	if maxTries == 0 {
		maxTries = 3
	}
	return &retrying{next: next, maxTries: maxTries}
}

type retrying struct {
	next     Collaborator
	maxTries uint
}

func (r *retrying) Chat(ctx context.Context, bundle *cooking.ContextBundle) (*Reply, error) {
	reply, err := backoff.Retry(ctx, func() (*Reply, error) {
		return r.next.Chat(ctx, bundle)
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(r.maxTries))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	return reply, nil
}
