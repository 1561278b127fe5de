package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Extract Pale Ale", "extract-pale-ale"},
		{"Bob's  IPA!!", "bob-s-ipa-"},
		{"already-slugged", "already-slugged"},
		{"snake_case stays", "snake_case-stays"},
		{"", ""},
		{"Märzen", "marzen"},
		{"Crème Brûlée Stout", "creme-brulee-stout"},
		{"Weißbier", "weissbier"},
		{"Øl", "ol"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}

func TestUniqueSlug(t *testing.T) {
	existing := map[string]bool{"house-pale": true, "house-pale1": true}

	slug, err := UniqueSlug("House Pale", func(s string) (bool, error) { return existing[s], nil })
	require.NoError(t, err)
	assert.Equal(t, "house-pale2", slug)

	slug, err = UniqueSlug("Porter", func(s string) (bool, error) { return existing[s], nil })
	require.NoError(t, err)
	assert.Equal(t, "porter", slug)

	boom := errors.New("db down")
	_, err = UniqueSlug("Porter", func(string) (bool, error) { return false, boom })
	assert.ErrorIs(t, err, boom)
}
