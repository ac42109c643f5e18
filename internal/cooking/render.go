// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package cooking

import (
	"fmt"
	"strings"

	"github.com/twofivesha/agentsouschef/internal/recipes"
)

// condensedHelp is appended to status replies so terse commands stay
// discoverable.
const condensedHelp = "Commands: i=ingredients  |  s=steps  |  x=item/steps done  |  " +
	"k=next step  |  what=status  |  clear=restart  |  pick=choose recipe"

// renderIngredients returns markdown bullets for the working ingredient
// list, striking used ingredients and applying substitution display text.
func renderIngredients(recipe *recipes.Recipe, s State) []string {
	lines := make([]string, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		display := s.DisplayIngredient(ing)
		if _, struck := s.Strikes[ing]; struck {
			lines = append(lines, "- ~~"+display+"~~")
		} else {
			lines = append(lines, "- "+display)
		}
	}
	return lines
}

// renderSteps returns markdown lines for all steps, striking completed ones.
func renderSteps(steps []string, currentStep int) []string {
	lines := make([]string, 0, len(steps))
	for i, step := range steps {
		if i < currentStep {
			lines = append(lines, fmt.Sprintf("%d. ~~%s~~", i+1, step))
		} else {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, step))
		}
	}
	return lines
}

func renderStatus(recipe *recipes.Recipe, s State) string {
	lines := []string{"**Cooking: " + recipe.Name + "**", ""}

	if len(recipe.Ingredients) > 0 {
		lines = append(lines, "**Ingredients (with substitutions applied):**")
		lines = append(lines, renderIngredients(recipe, s)...)
		lines = append(lines, "")
	}

	if s.CurrentStep < len(recipe.Steps) {
		lines = append(lines, fmt.Sprintf("**Current Step (%d/%d):**", s.CurrentStep+1, len(recipe.Steps)))
		lines = append(lines, recipe.Steps[s.CurrentStep])
	} else {
		lines = append(lines, "You've completed all the steps in this recipe.")
	}

	lines = append(lines, "", "---", "", condensedHelp)
	return strings.Join(lines, "\n")
}
