package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory_RoundTrip(t *testing.T) {
	for _, category := range Categories {
		parsed, err := ParseCategory(category.String())
		require.NoError(t, err)
		assert.Equal(t, category, parsed)
		assert.Equal(t, category.String(), parsed.String())
	}
}

func TestParseSubcategory_RoundTrip(t *testing.T) {
	for _, subcategory := range Subcategories {
		parsed, err := ParseSubcategory(subcategory.String())
		require.NoError(t, err)
		assert.Equal(t, subcategory, parsed)
	}
}

func TestParseDifficulty_RoundTrip(t *testing.T) {
	for _, difficulty := range Difficulties {
		parsed, err := ParseDifficulty(difficulty.String())
		require.NoError(t, err)
		assert.Equal(t, difficulty, parsed)
	}
}

func TestParse_UnknownValues(t *testing.T) {
	cases := []struct {
		name string
		run  func() error
	}{
		{"category", func() error { _, err := ParseCategory("Sport"); return err }},
		{"category case-sensitive", func() error { _, err := ParseCategory("science"); return err }},
		{"subcategory", func() error { _, err := ParseSubcategory("Geology"); return err }},
		{"difficulty out of range", func() error { _, err := ParseDifficulty("11"); return err }},
		{"difficulty label", func() error { _, err := ParseDifficulty("hard"); return err }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			require.Error(t, err)
			var enumErr *InvalidEnumValueError
			assert.True(t, errors.As(err, &enumErr))
		})
	}
}

func TestDifficultyFromJSON_NumberAndString(t *testing.T) {
	fromNumber, err := difficultyFromJSON(float64(7))
	require.NoError(t, err)

	fromString, err := difficultyFromJSON("7")
	require.NoError(t, err)

	assert.Equal(t, fromNumber, fromString)
	assert.Equal(t, DifficultyCollegeTwoDot, fromNumber)
}

func TestDifficultyLevel(t *testing.T) {
	assert.Equal(t, 0, DifficultyUnrated.Level())
	assert.Equal(t, 10, DifficultyOpen.Level())
}
