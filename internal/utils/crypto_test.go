// internal/utils/crypto_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Kantutani, Bolivia":       "kantutani-bolivia",
		"Huehuetenango, Guatemala": "huehuetenango-guatemala",
		"  Minas Gerais,  Brasil ": "minas-gerais-brasil",
		"Café--Nuevo!!":            "caf-nuevo",
		"---":                      "",
		"":                         "",
	}

	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}

func TestGenerateRandomString(t *testing.T) {
	s1, err := GenerateRandomString(16)
	require.NoError(t, err)
	assert.Len(t, s1, 16)

	s2, err := GenerateRandomString(16)
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2)
}

func TestValidateSlugTag(t *testing.T) {
	type payload struct {
		ID string `validate:"omitempty,slug"`
	}

	assert.NoError(t, ValidateStruct(&payload{ID: "huila-colombia"}))
	assert.NoError(t, ValidateStruct(&payload{}))
	assert.Error(t, ValidateStruct(&payload{ID: "Huila Colombia"}))
	assert.Error(t, ValidateStruct(&payload{ID: "-leading"}))
	assert.Error(t, ValidateStruct(&payload{ID: "trailing-"}))
}
