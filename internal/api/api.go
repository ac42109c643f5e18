// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

// Package api defines the request and response shapes of the service API.
// Any transport wrapping the engine preserves these shapes.
package api

import "errors"

// ErrInvalidArgument marks a request that is structurally valid JSON but
// semantically malformed, e.g. an unknown strike action.
var ErrInvalidArgument = errors.New("invalid argument")

// RecipeSummary is a lightweight recipe listing entry.
type RecipeSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Recipe is a full recipe payload.
type Recipe struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// IngredientState is the working ingredient view of a session.
type IngredientState struct {
	Ingredients   []string          `json:"ingredients"`
	Substitutions map[string]string `json:"substitutions"`
	Strikes       []string          `json:"strikes"`
}

// StepState is the step progress view of a session.
type StepState struct {
	Steps       []string `json:"steps"`
	CurrentStep int      `json:"currentStep"`
}

type ListRecipesRequest struct {
	// Query filters recipes by name, case-insensitively. Empty lists all.
	Query string `json:"query"`
}

type ListRecipesResponse struct {
	Recipes []RecipeSummary `json:"recipes"`
}

type StartSessionRequest struct {
	RecipeID string `json:"recipeId"`
}

type StartSessionResponse struct {
	SessionID string `json:"sessionId"`
	Recipe    Recipe `json:"recipe"`
	Reply     string `json:"reply"`
}

type SendMessageRequest struct {
	// SessionID comes from the URL, not the body.
	SessionID string `json:"-"`
	Message   string `json:"message"`
}

type SendMessageResponse struct {
	Reply       string          `json:"reply"`
	Ingredients IngredientState `json:"ingredients"`
	Steps       StepState       `json:"steps"`
	Recipe      RecipeSummary   `json:"recipe"`
}

type StrikeIngredientRequest struct {
	SessionID  string `json:"-"`
	Ingredient string `json:"ingredient"`
	// Action is "strike" or "unstrike".
	Action string `json:"action"`
}

type StrikeIngredientResponse struct {
	Reply       string          `json:"reply"`
	Ingredients IngredientState `json:"ingredients"`
}

type SetSubstitutionRequest struct {
	SessionID  string `json:"-"`
	Original   string `json:"original"`
	Substitute string `json:"substitute"`
}

type SetSubstitutionResponse struct {
	Reply       string          `json:"reply"`
	Ingredients IngredientState `json:"ingredients"`
}

type ClearSubstitutionRequest struct {
	SessionID string `json:"-"`
	Original  string `json:"original"`
}

type ClearSubstitutionResponse struct {
	Ingredients IngredientState `json:"ingredients"`
}

type GetSessionRequest struct {
	SessionID string `json:"-"`
}

type GetSessionResponse struct {
	SessionID    string `json:"sessionId"`
	RecipeID     string `json:"recipeId"`
	RecipeName   string `json:"recipeName"`
	CurrentStep  int    `json:"currentStep"`
	TotalSteps   int    `json:"totalSteps"`
	MessageCount int    `json:"messageCount"`
}

type DeleteSessionRequest struct {
	SessionID string `json:"-"`
}

type DeleteSessionResponse struct {
	Deleted bool `json:"deleted"`
}

type SessionSummary struct {
	SessionID    string `json:"sessionId"`
	RecipeName   string `json:"recipeName"`
	CurrentStep  int    `json:"currentStep"`
	MessageCount int    `json:"messageCount"`
}

type ListSessionsRequest struct{}

type ListSessionsResponse struct {
	Sessions []SessionSummary `json:"sessions"`
}
