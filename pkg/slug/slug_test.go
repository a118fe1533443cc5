// Copyright (c) 2026 Etnoflora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/etnoflora/pkg/slug"
)

/*
TestVernacular verifies canonicalization of free-text vernacular names.
*/
func TestVernacular(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple_space", "erva doce", "erva-doce"},
		{"uppercase", "Erva Doce", "erva-doce"},
		{"multi_space_run", "capim   santo", "capim-santo"},
		{"already_hyphenated", "erva-doce", "erva-doce"},
		{"surrounding_space", "  pata de vaca  ", "pata-de-vaca"},
		{"accents_preserved", "João Brandinho", "joão-brandinho"},
		{"tab_and_space", "espinheira\t santa", "espinheira-santa"},
		{"single_word", "Jurubeba", "jurubeba"},
		{"empty", "", ""},
		{"whitespace_only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.Vernacular(tt.input))
		})
	}
}

/*
TestVernacular_Idempotent verifies the canonical form is a fixed point.
*/
func TestVernacular_Idempotent(t *testing.T) {
	inputs := []string{"Erva Doce", "capim   santo", "jurubeba", "ipê roxo"}

	for _, input := range inputs {
		once := slug.Vernacular(input)
		assert.Equal(t, once, slug.Vernacular(once))
	}
}
