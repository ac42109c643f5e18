// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package cooking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContextCopiesState(t *testing.T) {
	recipe, _ := testRecipe(t)
	s := NewState(recipe.ID)
	s.Substitutions["butter"] = "margarine"
	s.Strikes["butter"] = struct{}{}

	bundle := BuildContext(recipe, s, "is this enough flour?")

	// Mutating the bundle must not leak back into the session state.
	bundle.Substitutions["butter"] = "lard"
	bundle.Steps[0] = "changed"
	assert.Equal(t, "margarine", s.Substitutions["butter"])
	assert.Equal(t, "Mix the batter.", recipe.Steps[0])
}

func TestBundleRender(t *testing.T) {
	recipe, _ := testRecipe(t)
	s := NewState(recipe.ID)
	s.CurrentStep = 1
	s.Substitutions["butter"] = "margarine"

	out := BuildContext(recipe, s, "how long do I cook them?").Render()
	assert.Contains(t, out, "User message: how long do I cook them?")
	assert.Contains(t, out, "Active recipe: Test Pancakes")
	assert.Contains(t, out, "- butter (substitute: margarine)")
	assert.Contains(t, out, "Current step index (1-based): 2")
	assert.Contains(t, out, "Current step text: Cook the pancakes.")
	assert.Contains(t, out, "Completed steps:\n- Mix the batter.")
}

func TestBundleRenderClampsTerminalIndex(t *testing.T) {
	recipe, _ := testRecipe(t)
	s := NewState(recipe.ID)
	s.CurrentStep = len(recipe.Steps)

	out := BuildContext(recipe, s, "done").Render()
	require.Contains(t, out, "Current step index (1-based): 2")
	assert.Contains(t, out, "Current step text: Cook the pancakes.")
}
