// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package cooking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twofivesha/agentsouschef/internal/recipes"
)

func testRecipe(t *testing.T) (*recipes.Recipe, *Executor) {
	t.Helper()
	recipe := &recipes.Recipe{
		ID:          "pancakes",
		Name:        "Test Pancakes",
		Description: "Two steps, two ingredients.",
		Ingredients: []string{"1 cup flour", "butter"},
		Steps:       []string{"Mix the batter.", "Cook the pancakes."},
	}
	catalog, err := recipes.NewLibrary(recipe)
	require.NoError(t, err)
	return recipe, NewExecutor(catalog)
}

func TestAdvanceToTerminal(t *testing.T) {
	recipe, exec := testRecipe(t)
	s := NewState(recipe.ID)

	for i := range recipe.Steps {
		reply, next := exec.Advance(recipe, s)
		assert.Contains(t, reply, recipe.Steps[i])
		assert.Equal(t, i+1, next.CurrentStep)
		s = next
	}
	assert.Equal(t, len(recipe.Steps), s.CurrentStep)

	// One more advance is a no-op with a completion message.
	reply, next := exec.Advance(recipe, s)
	assert.Equal(t, "You've already completed all the steps in this recipe.", reply)
	assert.Equal(t, s.CurrentStep, next.CurrentStep)
}

func TestMarkStepsComplete(t *testing.T) {
	recipe, exec := testRecipe(t)
	s := NewState(recipe.ID)

	reply, next, err := exec.Apply(context.Background(), recipe, s, Command{Kind: KindMarkStepsComplete, Step: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, next.CurrentStep)
	assert.Contains(t, reply, "marked all 2 steps as done")

	reply, next, err = exec.Apply(context.Background(), recipe, next, Command{Kind: KindMarkStepsComplete, Step: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, next.CurrentStep)
	assert.Contains(t, reply, "back at the beginning")
}

func TestMarkStepsCompleteRange(t *testing.T) {
	recipe, exec := testRecipe(t)
	s := NewState(recipe.ID)
	s.CurrentStep = 1

	for _, n := range []int{-1, 3} {
		_, next, err := exec.Apply(context.Background(), recipe, s, Command{Kind: KindMarkStepsComplete, Step: n})
		assert.ErrorIs(t, err, ErrStepRange)
		// Rejected assertions leave the state unchanged.
		assert.Equal(t, 1, next.CurrentStep)
	}
}

func TestToggleIngredientPair(t *testing.T) {
	recipe, exec := testRecipe(t)
	s := NewState(recipe.ID)
	cmd := Command{Kind: KindToggleIngredient, Ingredient: "1 cup flour"}

	_, once, err := exec.Apply(context.Background(), recipe, s, cmd)
	require.NoError(t, err)
	assert.Contains(t, once.Strikes, "1 cup flour")

	_, twice, err := exec.Apply(context.Background(), recipe, once, cmd)
	require.NoError(t, err)
	assert.NotContains(t, twice.Strikes, "1 cup flour")
	assert.Empty(t, twice.Strikes)
}

func TestToggleIngredientNotFound(t *testing.T) {
	recipe, exec := testRecipe(t)
	s := NewState(recipe.ID)

	_, next, err := exec.Apply(context.Background(), recipe, s, Command{Kind: KindToggleIngredient, Ingredient: "the oil"})
	assert.ErrorIs(t, err, ErrIngredientNotFound)
	assert.Empty(t, next.Strikes)
}

func TestStrikeExplicitIsIdempotent(t *testing.T) {
	recipe, exec := testRecipe(t)
	s := NewState(recipe.ID)

	_, once, err := exec.Strike(recipe, s, "butter", ActionStrike)
	require.NoError(t, err)
	_, twice, err := exec.Strike(recipe, once, "butter", ActionStrike)
	require.NoError(t, err)
	assert.Equal(t, once.StruckIngredients(), twice.StruckIngredients())

	_, cleared, err := exec.Strike(recipe, twice, "butter", ActionUnstrike)
	require.NoError(t, err)
	assert.Empty(t, cleared.Strikes)
}

func TestSetSubstitution(t *testing.T) {
	recipe, exec := testRecipe(t)
	s := NewState(recipe.ID)

	_, next, err := exec.SetSubstitution(recipe, s, "butter", "margarine")
	require.NoError(t, err)
	assert.Equal(t, "margarine", next.Substitutions["butter"])
	assert.Equal(t, "margarine (instead of butter)", next.DisplayIngredient("butter"))

	// Overwriting replaces the prior substitute.
	_, next, err = exec.SetSubstitution(recipe, next, "butter", "olive oil")
	require.NoError(t, err)
	assert.Equal(t, "olive oil", next.Substitutions["butter"])

	_, next, err = exec.ClearSubstitution(recipe, next, "butter")
	require.NoError(t, err)
	assert.Empty(t, next.Substitutions)
}

func TestSetSubstitutionUnknownIngredient(t *testing.T) {
	recipe, exec := testRecipe(t)
	s := NewState(recipe.ID)

	_, next, err := exec.SetSubstitution(recipe, s, "lard", "margarine")
	assert.ErrorIs(t, err, ErrIngredientNotFound)
	assert.Empty(t, next.Substitutions)
}

func TestClearSubstitutionAbsentIsNoop(t *testing.T) {
	recipe, exec := testRecipe(t)
	s := NewState(recipe.ID)

	reply, next, err := exec.ClearSubstitution(recipe, s, "butter")
	require.NoError(t, err)
	assert.Contains(t, reply, "No substitution was active")
	assert.Empty(t, next.Substitutions)
}

func TestToggleResolvesSubstituteText(t *testing.T) {
	recipe, exec := testRecipe(t)
	s := NewState(recipe.ID)

	_, s, err := exec.SetSubstitution(recipe, s, "butter", "margarine")
	require.NoError(t, err)

	// Striking by the substitute text lands on the original key.
	_, s, err = exec.Apply(context.Background(), recipe, s, Command{Kind: KindToggleIngredient, Ingredient: "margarine"})
	require.NoError(t, err)
	assert.Contains(t, s.Strikes, "butter")
}

func TestShowIngredientsRendersSubstitutionAndStrikes(t *testing.T) {
	recipe, exec := testRecipe(t)
	s := NewState(recipe.ID)

	_, s, err := exec.SetSubstitution(recipe, s, "butter", "margarine")
	require.NoError(t, err)
	_, s, err = exec.Strike(recipe, s, "1 cup flour", ActionStrike)
	require.NoError(t, err)

	reply, _, err := exec.Apply(context.Background(), recipe, s, Command{Kind: KindShowIngredients})
	require.NoError(t, err)
	assert.Contains(t, reply, "- margarine (instead of butter)")
	assert.Contains(t, reply, "- ~~1 cup flour~~")
}

func TestShowStep(t *testing.T) {
	recipe, exec := testRecipe(t)
	s := NewState(recipe.ID)

	reply, _, err := exec.Apply(context.Background(), recipe, s, Command{Kind: KindShowStep, Step: 2})
	require.NoError(t, err)
	assert.Equal(t, "2. Cook the pancakes.", reply)

	reply, _, err = exec.Apply(context.Background(), recipe, s, Command{Kind: KindShowStep, Step: 9})
	require.NoError(t, err)
	assert.Equal(t, "This recipe only has 2 steps.", reply)
}

func TestResetRecipe(t *testing.T) {
	recipe, exec := testRecipe(t)
	s := NewState(recipe.ID)
	s.CurrentStep = 2
	s.Strikes["butter"] = struct{}{}
	s.Substitutions["butter"] = "margarine"

	reply, next, err := exec.Apply(context.Background(), recipe, s, Command{Kind: KindResetRecipe})
	require.NoError(t, err)
	assert.Contains(t, reply, "reset your progress")
	assert.Equal(t, 0, next.CurrentStep)
	assert.Empty(t, next.Strikes)
	assert.Empty(t, next.Substitutions)
	assert.Equal(t, recipe.ID, next.RecipeID)
}

func TestBeginRecipeSelection(t *testing.T) {
	recipe, exec := testRecipe(t)
	s := NewState(recipe.ID)

	reply, next, err := exec.Apply(context.Background(), recipe, s, Command{Kind: KindBeginRecipeSelection, Query: "pancake"})
	require.NoError(t, err)
	assert.Contains(t, reply, "Test Pancakes")
	// Selection never mutates the current session.
	assert.Equal(t, s, next)

	reply, _, err = exec.Apply(context.Background(), recipe, s, Command{Kind: KindBeginRecipeSelection, Query: "sushi"})
	require.NoError(t, err)
	assert.Contains(t, reply, "couldn't find any recipes")
}

func TestStatusAtTerminal(t *testing.T) {
	recipe, exec := testRecipe(t)
	s := NewState(recipe.ID)
	s.CurrentStep = len(recipe.Steps)

	reply, _, err := exec.Apply(context.Background(), recipe, s, Command{Kind: KindShowStatus})
	require.NoError(t, err)
	assert.Contains(t, reply, "You've completed all the steps in this recipe.")
}
