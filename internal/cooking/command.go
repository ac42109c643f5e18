// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package cooking

import (
	"strconv"
	"strings"
)

// CommandKind classifies a parsed command.
type CommandKind int

const (
	// KindUnrecognized is any input the grammar does not match. There is no
	// invalid-syntax category; unmatched input goes to the collaborator.
	KindUnrecognized CommandKind = iota
	// KindShowIngredients shows the working ingredient list.
	KindShowIngredients
	// KindShowSteps shows all steps with progress.
	KindShowSteps
	// KindShowStatus shows the recipe, ingredients and current step.
	KindShowStatus
	// KindShowStep shows a single step without changing progress.
	KindShowStep
	// KindAdvanceStep moves to the next step.
	KindAdvanceStep
	// KindMarkStepsComplete marks steps 1..N as done.
	KindMarkStepsComplete
	// KindToggleIngredient toggles an ingredient's struck state.
	KindToggleIngredient
	// KindStrikeIngredient strikes or unstrikes an ingredient explicitly.
	KindStrikeIngredient
	// KindResetRecipe clears all progress for the same recipe.
	KindResetRecipe
	// KindBeginRecipeSelection searches the catalog for a new recipe.
	KindBeginRecipeSelection
)

// StrikeAction is the explicit target state for KindStrikeIngredient.
type StrikeAction string

const (
	ActionStrike   StrikeAction = "strike"
	ActionUnstrike StrikeAction = "unstrike"
)

// Command is one parsed line of user input.
type Command struct {
	Kind CommandKind

	// Step is the target for KindMarkStepsComplete and KindShowStep (1-based
	// for KindShowStep, a completed count for KindMarkStepsComplete).
	Step int

	// Ingredient is the referenced ingredient text, original casing.
	Ingredient string

	// Action is set for KindStrikeIngredient.
	Action StrikeAction

	// Query is the search text for KindBeginRecipeSelection.
	Query string

	// Raw is the original input, kept for the collaborator path.
	Raw string
}

func (k CommandKind) String() string {
	switch k {
	case KindShowIngredients:
		return "show_ingredients"
	case KindShowSteps:
		return "show_steps"
	case KindShowStatus:
		return "show_status"
	case KindShowStep:
		return "show_step"
	case KindAdvanceStep:
		return "advance_step"
	case KindMarkStepsComplete:
		return "mark_steps_complete"
	case KindToggleIngredient:
		return "toggle_ingredient"
	case KindStrikeIngredient:
		return "strike_ingredient"
	case KindResetRecipe:
		return "reset_recipe"
	case KindBeginRecipeSelection:
		return "begin_recipe_selection"
	default:
		return "unrecognized"
	}
}

// Keywords are matched case-insensitively against the whole trimmed input.
var (
	advanceWords = map[string]bool{
		"k": true, "ok": true, "okay": true, "next": true,
		"next step": true, "done": true, "finished": true,
	}
	ingredientWords = map[string]bool{"i": true, "ingredients": true}
	stepsWords      = map[string]bool{"s": true, "steps": true}
	resetWords      = map[string]bool{
		"clear": true, "start over": true, "restart": true, "reset recipe": true,
	}

	// Prefix forms keep the remainder in its original casing so ingredient
	// references can match the recipe text exactly.
	strikePrefixes   = []string{"strike ", "cross off ", "86 "}
	unstrikePrefixes = []string{"unstrike ", "uncross ", "restore "}
)

// Parse maps one line of raw input to a Command. It never errors: anything
// outside the grammar, including empty input, is KindUnrecognized.
func Parse(raw string) Command {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)

	cmd := Command{Kind: KindUnrecognized, Raw: raw}
	if trimmed == "" {
		return cmd
	}

	switch {
	case ingredientWords[lower]:
		cmd.Kind = KindShowIngredients
	case stepsWords[lower]:
		cmd.Kind = KindShowSteps
	case advanceWords[lower]:
		cmd.Kind = KindAdvanceStep
	case lower == "what":
		cmd.Kind = KindShowStatus
	case resetWords[lower]:
		cmd.Kind = KindResetRecipe
	case lower == "pick" || strings.HasPrefix(lower, "pick "):
		cmd.Kind = KindBeginRecipeSelection
		cmd.Query = strings.TrimSpace(trimmed[len("pick"):])
	case lower == "x" || strings.HasPrefix(lower, "x "):
		rest := strings.TrimSpace(trimmed[1:])
		if rest == "" {
			// Bare "x" names nothing; let the collaborator ask.
			return cmd
		}
		// An integer remainder wins over an ingredient reference.
		if n, err := strconv.Atoi(rest); err == nil {
			cmd.Kind = KindMarkStepsComplete
			cmd.Step = n
		} else {
			cmd.Kind = KindToggleIngredient
			cmd.Ingredient = rest
		}
	default:
		if target, action, ok := parseStrikePrefix(trimmed, lower); ok {
			cmd.Kind = KindStrikeIngredient
			cmd.Ingredient = target
			cmd.Action = action
			return cmd
		}
		if n, err := strconv.Atoi(trimmed); err == nil {
			cmd.Kind = KindShowStep
			cmd.Step = n
		}
	}
	return cmd
}

func parseStrikePrefix(trimmed, lower string) (string, StrikeAction, bool) {
	for _, p := range unstrikePrefixes {
		if strings.HasPrefix(lower, p) {
			return strings.TrimSpace(trimmed[len(p):]), ActionUnstrike, true
		}
	}
	for _, p := range strikePrefixes {
		if strings.HasPrefix(lower, p) {
			return strings.TrimSpace(trimmed[len(p):]), ActionStrike, true
		}
	}
	return "", "", false
}
