// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package cooking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/twofivesha/agentsouschef/internal/recipes"
)

var (
	// ErrIngredientNotFound is returned when a strike or substitution target
	// does not match any ingredient of the recipe.
	ErrIngredientNotFound = errors.New("ingredient not found")

	// ErrStepRange is returned when an explicit step target is outside
	// [0, len(steps)]. Explicit assertions are rejected, not clamped.
	ErrStepRange = errors.New("step out of range")

	// errUnrecognized guards against applying input that belongs to the
	// collaborator path.
	errUnrecognized = errors.New("unrecognized command cannot be applied")
)

// NewExecutor returns an Executor using the catalog for recipe selection.
func NewExecutor(catalog recipes.Catalog) *Executor {
	return &Executor{catalog: catalog}
}

// Executor applies parsed commands to session state. It is stateless and
// safe for concurrent use; serialization per session is the store's job.
type Executor struct {
	catalog recipes.Catalog
}

// Apply runs a structured command against the state and returns the reply
// text and the updated state. On error the returned state is the input
// state, unchanged. KindUnrecognized input must go to the collaborator
// instead.
func (e *Executor) Apply(ctx context.Context, recipe *recipes.Recipe, s State, cmd Command) (string, State, error) {
	switch cmd.Kind {
	case KindShowIngredients:
		return e.showIngredients(recipe, s), s, nil
	case KindShowSteps:
		return e.showSteps(recipe, s), s, nil
	case KindShowStatus:
		return renderStatus(recipe, s), s, nil
	case KindShowStep:
		return e.showStep(recipe, cmd.Step), s, nil
	case KindAdvanceStep:
		reply, next := e.Advance(recipe, s)
		return reply, next, nil
	case KindMarkStepsComplete:
		return e.markStepsComplete(recipe, s, cmd.Step)
	case KindToggleIngredient:
		return e.toggleIngredient(recipe, s, cmd.Ingredient)
	case KindStrikeIngredient:
		return e.Strike(recipe, s, cmd.Ingredient, cmd.Action)
	case KindResetRecipe:
		next := NewState(s.RecipeID)
		return fmt.Sprintf("Okay, I've reset your progress. You're back at the beginning of %s.", recipe.Name), next, nil
	case KindBeginRecipeSelection:
		reply, err := e.beginRecipeSelection(ctx, cmd.Query)
		return reply, s, err
	default:
		return "", s, fmt.Errorf("cooking: applying %q: %w", cmd.Raw, errUnrecognized)
	}
}

// Advance moves to the next step, clamped at the terminal value. At the
// terminal value it is a no-op returning a completion message.
func (e *Executor) Advance(recipe *recipes.Recipe, s State) (string, State) {
	if s.CurrentStep >= len(recipe.Steps) {
		return "You've already completed all the steps in this recipe.", s
	}
	stepNum := s.CurrentStep + 1
	next := s.Clone()
	next.CurrentStep = s.CurrentStep + 1
	return fmt.Sprintf("Next step:\n\n%d. %s", stepNum, recipe.Steps[s.CurrentStep]), next
}

// Strike sets an ingredient's struck state explicitly. Unlike the toggle
// command the target state is given, so repeated calls are idempotent.
func (e *Executor) Strike(recipe *recipes.Recipe, s State, text string, action StrikeAction) (string, State, error) {
	ing, ok := resolveIngredient(recipe, s, text)
	if !ok {
		return "", s, fmt.Errorf("cooking: striking %q: %w", text, ErrIngredientNotFound)
	}
	next := s.Clone()
	var reply string
	if action == ActionUnstrike {
		delete(next.Strikes, ing)
		reply = "Got it. I restored that ingredient. Here is the current list:"
	} else {
		next.Strikes[ing] = struct{}{}
		reply = "Got it. I updated your ingredient list. Here is the current version:"
	}
	reply += "\n\n" + strings.Join(renderIngredients(recipe, next), "\n")
	return reply, next, nil
}

// SetSubstitution records substitute as the replacement text for original.
// A prior substitute for the same original is overwritten.
func (e *Executor) SetSubstitution(recipe *recipes.Recipe, s State, original, substitute string) (string, State, error) {
	if !isRecipeIngredient(recipe, original) {
		return "", s, fmt.Errorf("cooking: substituting %q: %w", original, ErrIngredientNotFound)
	}
	next := s.Clone()
	next.Substitutions[original] = substitute
	reply := fmt.Sprintf("Got it. I'll use %s instead of %s. Here is the current list:", substitute, original)
	reply += "\n\n" + strings.Join(renderIngredients(recipe, next), "\n")
	return reply, next, nil
}

// ClearSubstitution removes any substitution for original. Clearing an
// absent substitution is a no-op, not an error.
func (e *Executor) ClearSubstitution(recipe *recipes.Recipe, s State, original string) (string, State, error) {
	if _, ok := s.Substitutions[original]; !ok {
		return fmt.Sprintf("No substitution was active for %s.", original), s, nil
	}
	next := s.Clone()
	delete(next.Substitutions, original)
	reply := fmt.Sprintf("Okay, back to the original %s. Here is the current list:", original)
	reply += "\n\n" + strings.Join(renderIngredients(recipe, next), "\n")
	return reply, next, nil
}

func (e *Executor) showIngredients(recipe *recipes.Recipe, s State) string {
	if len(recipe.Ingredients) == 0 {
		return "This recipe does not have a stored ingredient list yet."
	}
	return "Here are the ingredients for this recipe (with substitutions applied):\n\n" +
		strings.Join(renderIngredients(recipe, s), "\n")
}

func (e *Executor) showSteps(recipe *recipes.Recipe, s State) string {
	if len(recipe.Steps) == 0 {
		return "This recipe does not have any steps defined yet."
	}
	return "Here are all the steps for this recipe:\n\n" +
		strings.Join(renderSteps(recipe.Steps, s.CurrentStep), "\n")
}

func (e *Executor) showStep(recipe *recipes.Recipe, stepNum int) string {
	if stepNum < 1 || stepNum > len(recipe.Steps) {
		return fmt.Sprintf("This recipe only has %d steps.", len(recipe.Steps))
	}
	return fmt.Sprintf("%d. %s", stepNum, recipe.Steps[stepNum-1])
}

func (e *Executor) markStepsComplete(recipe *recipes.Recipe, s State, n int) (string, State, error) {
	if n < 0 || n > len(recipe.Steps) {
		return "", s, fmt.Errorf("cooking: marking steps through %d of %d: %w", n, len(recipe.Steps), ErrStepRange)
	}
	next := s.Clone()
	next.CurrentStep = n

	var lines []string
	switch {
	case n == 0:
		lines = append(lines, "Okay, I've reset your step progress. You're back at the beginning.")
	case n == len(recipe.Steps):
		lines = append(lines, fmt.Sprintf("Okay, I've marked all %d steps as done. You've completed the recipe!", len(recipe.Steps)))
	default:
		lines = append(lines, fmt.Sprintf("Got it. I've marked steps 1 through %d as done. You're now on step %d.", n, n+1))
	}
	lines = append(lines, "", "Here are all the steps with your updated progress:", "")
	lines = append(lines, renderSteps(recipe.Steps, n)...)
	return strings.Join(lines, "\n"), next, nil
}

func (e *Executor) toggleIngredient(recipe *recipes.Recipe, s State, text string) (string, State, error) {
	ing, ok := resolveIngredient(recipe, s, text)
	if !ok {
		return "", s, fmt.Errorf("cooking: toggling %q: %w", text, ErrIngredientNotFound)
	}
	if _, struck := s.Strikes[ing]; struck {
		return e.Strike(recipe, s, ing, ActionUnstrike)
	}
	return e.Strike(recipe, s, ing, ActionStrike)
}

func (e *Executor) beginRecipeSelection(ctx context.Context, query string) (string, error) {
	matches, err := e.catalog.Search(ctx, query)
	if err != nil {
		return "", fmt.Errorf("cooking: searching recipes for %q: %w", query, err)
	}
	if len(matches) == 0 {
		return fmt.Sprintf("I couldn't find any recipes matching '%s'.", query), nil
	}
	lines := []string{"Here are the recipes I found:", ""}
	for _, m := range matches {
		line := fmt.Sprintf("- %s (%s)", m.Name, m.ID)
		if m.Description != "" {
			line += " — " + m.Description
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", "Start a new session with one of these recipe ids to switch recipes.")
	return strings.Join(lines, "\n"), nil
}

func isRecipeIngredient(recipe *recipes.Recipe, text string) bool {
	for _, ing := range recipe.Ingredients {
		if ing == text {
			return true
		}
	}
	return false
}
