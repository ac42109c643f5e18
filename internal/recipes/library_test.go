// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

package recipes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryGet(t *testing.T) {
	lib := BuiltinLibrary()

	recipe, err := lib.Get(context.Background(), "garlic_pasta")
	require.NoError(t, err)
	assert.Equal(t, "Simple Garlic Pasta", recipe.Name)
	assert.NotEmpty(t, recipe.Ingredients)
	assert.NotEmpty(t, recipe.Steps)

	_, err = lib.Get(context.Background(), "beef_wellington")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLibraryList(t *testing.T) {
	lib := BuiltinLibrary()

	summaries, err := lib.List(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	// Sorted by name.
	assert.Equal(t, "Simple Garlic Pasta", summaries[0].Name)
	assert.Equal(t, "Soft Scrambled Eggs", summaries[1].Name)
}

func TestLibrarySearch(t *testing.T) {
	lib := BuiltinLibrary()

	summaries, err := lib.Search(context.Background(), "GARLIC")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "garlic_pasta", summaries[0].ID)

	summaries, err = lib.Search(context.Background(), "ramen")
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestNewLibraryValidation(t *testing.T) {
	_, err := NewLibrary(&Recipe{Name: "No ID"})
	assert.Error(t, err)

	_, err = NewLibrary(&Recipe{ID: "a"}, &Recipe{ID: "a"})
	assert.Error(t, err)
}
