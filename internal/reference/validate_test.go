// Copyright (c) 2026 Etnoflora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/etnoflora/internal/platform/apperr"
	"github.com/taibuivan/etnoflora/internal/reference"
)

// validRecord builds a minimal record passing every validation rule. Tests
// break individual fields from this baseline.
func validRecord() *reference.Reference {
	return &reference.Reference{
		Title:   "Plantas medicinais no cerrado",
		Authors: []string{"SILVA, J."},
		Year:    2003,
		Status:  reference.StatusPending,
		Communities: []reference.Community{
			{
				Name:         "Comunidade Kalunga",
				Municipality: "Cavalcante",
				State:        "Goiás",
				Plants: []reference.Plant{
					{
						ScientificNames: []string{"Foeniculum vulgare Mill."},
						VernacularNames: []string{"erva-doce"},
						UseTypes:        []string{"medicinal"},
					},
				},
			},
		},
	}
}

/*
TestValidate_ValidRecord verifies a complete record passes with no errors.
*/
func TestValidate_ValidRecord(t *testing.T) {
	result := reference.Validate(validRecord())

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Fields)
	assert.NoError(t, result.Err())
}

/*
TestValidate_CollectsAllErrors verifies validation never short-circuits: a
record broken in several places reports every failure in one pass.
*/
func TestValidate_CollectsAllErrors(t *testing.T) {
	record := &reference.Reference{}

	result := reference.Validate(record)

	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Title is required")
	assert.Contains(t, result.Errors, "At least one author is required")
	assert.Contains(t, result.Errors, "Year is required")
	assert.Contains(t, result.Errors, "At least one community is required")

	// Messages and field details stay paired.
	assert.Len(t, result.Fields, len(result.Errors))

	err := result.Err()
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Len(t, ae.Details, len(result.Errors))
}

/*
TestValidate_BibliographicRules exercises the top-level citation constraints.
*/
func TestValidate_BibliographicRules(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(r *reference.Reference)
		expected string
	}{
		{
			"title_too_long",
			func(r *reference.Reference) { r.Title = strings.Repeat("a", reference.MaxTitleLen+1) },
			"Title must be at most 500 characters",
		},
		{
			"empty_author_entry",
			func(r *reference.Reference) { r.Authors = []string{"SILVA, J.", "  "} },
			"Author 2 must not be empty",
		},
		{
			"year_below_range",
			func(r *reference.Reference) { r.Year = 1200 },
			"Year must be between 1500 and 2100",
		},
		{
			"year_above_range",
			func(r *reference.Reference) { r.Year = 2200 },
			"Year must be between 1500 and 2100",
		},
		{
			"unknown_status",
			func(r *reference.Reference) { r.Status = reference.Status("archived") },
			"Status must be one of: pending, approved, rejected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.mutate(record)

			result := reference.Validate(record)

			assert.False(t, result.Valid)
			assert.Contains(t, result.Errors, tt.expected)
		})
	}
}

/*
TestValidate_CommunityRules exercises the community-level constraints with
1-based indices in the messages.
*/
func TestValidate_CommunityRules(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(r *reference.Reference)
		expected string
	}{
		{
			"missing_name",
			func(r *reference.Reference) { r.Communities[0].Name = "" },
			"Community 1: name is required",
		},
		{
			"missing_municipality",
			func(r *reference.Reference) { r.Communities[0].Municipality = "   " },
			"Community 1: municipality is required",
		},
		{
			"missing_state",
			func(r *reference.Reference) { r.Communities[0].State = "" },
			"Community 1: state is required",
		},
		{
			"no_plants",
			func(r *reference.Reference) { r.Communities[0].Plants = nil },
			"Community 1: at least one plant is required",
		},
		{
			"notes_too_long",
			func(r *reference.Reference) { r.Communities[0].Notes = strings.Repeat("x", reference.MaxNotesLen+1) },
			"Community 1: notes must be at most 2000 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.mutate(record)

			result := reference.Validate(record)

			assert.False(t, result.Valid)
			assert.Contains(t, result.Errors, tt.expected)
		})
	}
}

/*
TestValidate_PlantRules exercises the plant-level name list constraints,
including the community and plant indices carried in the messages.
*/
func TestValidate_PlantRules(t *testing.T) {
	record := validRecord()
	record.Communities = append(record.Communities, reference.Community{
		Name:         "Segunda Comunidade",
		Municipality: "Paraty",
		State:        "Rio de Janeiro",
		Plants: []reference.Plant{
			{
				// No scientific name, empty vernacular entry, no use types.
				VernacularNames: []string{""},
			},
		},
	})

	result := reference.Validate(record)

	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Community 2, Plant 1: scientific name is required")
	assert.Contains(t, result.Errors, "Community 2, Plant 1: vernacular name 1 must not be empty")
	assert.Contains(t, result.Errors, "Community 2, Plant 1: use type is required")
}

/*
TestValidate_FieldPaths verifies errors carry addressable nested field paths.
*/
func TestValidate_FieldPaths(t *testing.T) {
	record := validRecord()
	record.Communities[0].Plants[0].ScientificNames = nil

	result := reference.Validate(record)

	require.False(t, result.Valid)
	require.Len(t, result.Fields, 1)
	assert.Equal(t, "communities[0].plants[0].scientific_names", result.Fields[0].Field)
	assert.Equal(t, "Community 1, Plant 1: scientific name is required", result.Fields[0].Message)
}
