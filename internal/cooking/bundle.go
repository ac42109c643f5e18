// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package cooking

import (
	"fmt"
	"strings"

	"github.com/twofivesha/agentsouschef/internal/recipes"
)

// ContextBundle is the read-only context handed to the language-model
// collaborator for unrecognized input. It is assembled under the session
// lock and carries no references back into session state.
type ContextBundle struct {
	UserInput         string
	RecipeName        string
	RecipeDescription string
	Steps             []string
	Ingredients       []string
	Substitutions     map[string]string
	Strikes           []string

	// CurrentStep is the step index, within [0, len(Steps)].
	CurrentStep int
}

// BuildContext assembles a ContextBundle from the recipe and a state
// snapshot.
func BuildContext(recipe *recipes.Recipe, s State, userInput string) *ContextBundle {
	subs := make(map[string]string, len(s.Substitutions))
	for k, v := range s.Substitutions {
		subs[k] = v
	}
	return &ContextBundle{
		UserInput:         userInput,
		RecipeName:        recipe.Name,
		RecipeDescription: recipe.Description,
		Steps:             append([]string(nil), recipe.Steps...),
		Ingredients:       append([]string(nil), recipe.Ingredients...),
		Substitutions:     subs,
		Strikes:           s.StruckIngredients(),
		CurrentStep:       s.CurrentStep,
	}
}

// Render formats the bundle as the user-context block sent to the model.
func (b *ContextBundle) Render() string {
	// The terminal index is clamped so the model always sees a real step.
	current := b.CurrentStep
	if current >= len(b.Steps) && len(b.Steps) > 0 {
		current = len(b.Steps) - 1
	}

	currentText := "No steps defined."
	stepsText := "None"
	var completed, remaining []string
	if len(b.Steps) > 0 {
		currentText = b.Steps[current]
		completed = b.Steps[:current]
		remaining = b.Steps[current+1:]
		var sb strings.Builder
		for i, s := range b.Steps {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, s)
		}
		stepsText = strings.TrimRight(sb.String(), "\n")
	}

	ingredientsBlock := "None"
	if len(b.Ingredients) > 0 {
		lines := make([]string, 0, len(b.Ingredients))
		for _, ing := range b.Ingredients {
			if sub, ok := b.Substitutions[ing]; ok {
				lines = append(lines, fmt.Sprintf("- %s (substitute: %s)", ing, sub))
			} else {
				lines = append(lines, "- "+ing)
			}
		}
		ingredientsBlock = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`User message: %s

Active recipe: %s
Recipe description: %s

Ingredients:
%s

All steps:
%s

Current step index (1-based): %d
Current step text: %s

Completed steps:
%s

Remaining steps:
%s
`,
		b.UserInput,
		b.RecipeName,
		b.RecipeDescription,
		ingredientsBlock,
		stepsText,
		current+1,
		currentText,
		bulletsOrNone(completed),
		bulletsOrNone(remaining),
	)
}

func bulletsOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	lines := make([]string, len(items))
	for i, s := range items {
		lines[i] = "- " + s
	}
	return strings.Join(lines, "\n")
}
