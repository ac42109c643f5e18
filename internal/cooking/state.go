// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

// Package cooking implements the per-session recipe state machine and the
// deterministic command grammar that runs before any language-model fallback.
package cooking

import (
	"sort"

	"github.com/twofivesha/agentsouschef/internal/recipes"
)

// State is the mutable progress of one session through one recipe. It is a
// value owned by the session store; the executor never mutates a State in
// place, it returns an updated copy.
type State struct {
	// RecipeID is the recipe being cooked. Immutable for the session's
	// lifetime; cooking a different recipe means a new session.
	RecipeID string

	// CurrentStep indexes into the recipe's steps. It stays within
	// [0, len(steps)]; len(steps) means all steps are complete.
	CurrentStep int

	// Strikes holds ingredients marked as used, keyed by the original
	// ingredient text even when a substitution is active.
	Strikes map[string]struct{}

	// Substitutions maps an original ingredient to its substitute text.
	Substitutions map[string]string
}

// NewState returns the initial state for a recipe.
func NewState(recipeID string) State {
	return State{
		RecipeID:      recipeID,
		Strikes:       map[string]struct{}{},
		Substitutions: map[string]string{},
	}
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	c := State{
		RecipeID:      s.RecipeID,
		CurrentStep:   s.CurrentStep,
		Strikes:       make(map[string]struct{}, len(s.Strikes)),
		Substitutions: make(map[string]string, len(s.Substitutions)),
	}
	for k := range s.Strikes {
		c.Strikes[k] = struct{}{}
	}
	for k, v := range s.Substitutions {
		c.Substitutions[k] = v
	}
	return c
}

// StruckIngredients returns the struck ingredients in sorted order.
func (s State) StruckIngredients() []string {
	out := make([]string, 0, len(s.Strikes))
	for k := range s.Strikes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// DisplayIngredient returns the display text for an ingredient: the
// substitute annotated with the original when a substitution is active,
// otherwise the ingredient as written.
func (s State) DisplayIngredient(ingredient string) string {
	if sub, ok := s.Substitutions[ingredient]; ok {
		return sub + " (instead of " + ingredient + ")"
	}
	return ingredient
}

// resolveIngredient maps free text to an ingredient of the recipe by exact
// match, first against the ingredient list and then against active
// substitute texts (which resolve back to their original key).
func resolveIngredient(recipe *recipes.Recipe, s State, text string) (string, bool) {
	for _, ing := range recipe.Ingredients {
		if ing == text {
			return ing, true
		}
	}
	for orig, sub := range s.Substitutions {
		if sub == text {
			return orig, true
		}
	}
	return "", false
}
