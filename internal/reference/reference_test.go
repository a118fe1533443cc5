// Copyright (c) 2026 Etnoflora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/etnoflora/internal/reference"
)

/*
TestStatus_IsValid checks the curation status enum against known and unknown values.
*/
func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		status  reference.Status
		isValid bool
	}{
		{"pending", reference.StatusPending, true},
		{"approved", reference.StatusApproved, true},
		{"rejected", reference.StatusRejected, true},
		{"empty", reference.Status(""), false},
		{"unknown", reference.Status("archived"), false},
		{"case_sensitive", reference.Status("Pending"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
		})
	}
}

/*
TestStatusValues verifies the enum list used by validation covers all three states.
*/
func TestStatusValues(t *testing.T) {
	assert.Equal(t, []string{"pending", "approved", "rejected"}, reference.StatusValues())
}

/*
TestPlant_HasName checks that a plant counts as real only when it carries at
least one non-empty scientific or vernacular name.
*/
func TestPlant_HasName(t *testing.T) {
	tests := []struct {
		name    string
		plant   reference.Plant
		hasName bool
	}{
		{
			"scientific_only",
			reference.Plant{ScientificNames: []string{"Foeniculum vulgare"}},
			true,
		},
		{
			"vernacular_only",
			reference.Plant{VernacularNames: []string{"erva-doce"}},
			true,
		},
		{
			"use_types_only",
			reference.Plant{UseTypes: []string{"medicinal"}},
			false,
		},
		{
			"whitespace_names",
			reference.Plant{ScientificNames: []string{"   "}, VernacularNames: []string{""}},
			false,
		},
		{
			"empty",
			reference.Plant{},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hasName, tt.plant.HasName())
		})
	}
}
