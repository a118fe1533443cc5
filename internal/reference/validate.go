// Copyright (c) 2026 Etnoflora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/etnoflora/internal/platform/apperr"
	"github.com/taibuivan/etnoflora/internal/platform/validate"
)

// # Validation Engine

// Result is the outcome of validating a [Reference].
//
// Errors holds every applicable human-readable message in rule order —
// validation never short-circuits, so a submitter can fix the whole record in
// one pass. Valid is true exactly when Errors is empty.
type Result struct {
	Valid  bool
	Errors []string
	// Fields pairs each message with the record field path that produced it,
	// ready to embed in an [apperr.AppError].
	Fields []apperr.FieldError
}

// Err converts a failed result into a VALIDATION_ERROR [apperr.AppError],
// or nil when the record is valid.
func (r *Result) Err() error {
	if r.Valid {
		return nil
	}
	return apperr.ValidationError("Validation failed", r.Fields...)
}

// Validate walks a reconstructed record and collects every constraint
// violation. It never panics and never stops at the first failure.
//
// Messages are written for end-user display and carry 1-based community and
// plant indices ("Community 2, Plant 1: scientific name is required") so the
// submitter can locate the offending nested input.
func Validate(record *Reference) *Result {
	v := &validate.Validator{}

	validateBibliographic(v, record)
	validateCommunities(v, record.Communities)

	fields := v.Errors()
	return &Result{
		Valid:  len(fields) == 0,
		Errors: v.Messages(),
		Fields: fields,
	}
}

// validateBibliographic checks the top-level citation fields.
func validateBibliographic(v *validate.Validator, record *Reference) {
	v.Custom(FieldTitle, strings.TrimSpace(record.Title) == "",
		"Title is required")
	v.Custom(FieldTitle, utf8.RuneCountInString(record.Title) > MaxTitleLen,
		fmt.Sprintf("Title must be at most %d characters", MaxTitleLen))

	if len(record.Authors) == 0 {
		v.Custom(FieldAuthors, true, "At least one author is required")
	} else {
		for i, author := range record.Authors {
			v.Custom(fmt.Sprintf("%s[%d]", FieldAuthors, i),
				strings.TrimSpace(author) == "",
				fmt.Sprintf("Author %d must not be empty", i+1))
		}
	}

	if record.Year == 0 {
		v.Custom(FieldYear, true, "Year is required")
	} else {
		v.Custom(FieldYear, record.Year < MinYear || record.Year > MaxYear,
			fmt.Sprintf("Year must be between %d and %d", MinYear, MaxYear))
	}

	v.Custom(FieldAbstract, utf8.RuneCountInString(record.Abstract) > MaxAbstractLen,
		fmt.Sprintf("Abstract must be at most %d characters", MaxAbstractLen))
	v.Custom(FieldDOI, utf8.RuneCountInString(record.DOI) > MaxDOILen,
		fmt.Sprintf("DOI must be at most %d characters", MaxDOILen))

	v.Custom(FieldStatus, record.Status != "" && !record.Status.IsValid(),
		fmt.Sprintf("Status must be one of: %s", strings.Join(StatusValues(), ", ")))
}

// validateCommunities checks the embedded community array level.
func validateCommunities(v *validate.Validator, communities []Community) {
	if len(communities) == 0 {
		v.Custom(FieldCommunities, true, "At least one community is required")
		return
	}

	for i, community := range communities {
		validateCommunity(v, i, community)
	}
}

// validateCommunity checks one community and its embedded plants.
// Index i is zero-based; messages use 1-based indices.
func validateCommunity(v *validate.Validator, i int, community Community) {
	path := fmt.Sprintf("%s[%d]", FieldCommunities, i)
	label := fmt.Sprintf("Community %d", i+1)

	v.Custom(path+".name", strings.TrimSpace(community.Name) == "",
		label+": name is required")
	v.Custom(path+".name", utf8.RuneCountInString(community.Name) > MaxCommunityNameLen,
		fmt.Sprintf("%s: name must be at most %d characters", label, MaxCommunityNameLen))

	v.Custom(path+".municipality", strings.TrimSpace(community.Municipality) == "",
		label+": municipality is required")
	v.Custom(path+".municipality", utf8.RuneCountInString(community.Municipality) > MaxMunicipalityLen,
		fmt.Sprintf("%s: municipality must be at most %d characters", label, MaxMunicipalityLen))

	v.Custom(path+".state", strings.TrimSpace(community.State) == "",
		label+": state is required")
	v.Custom(path+".state", utf8.RuneCountInString(community.State) > MaxStateLen,
		fmt.Sprintf("%s: state must be at most %d characters", label, MaxStateLen))

	v.Custom(path+".location", utf8.RuneCountInString(community.Location) > MaxLocationLen,
		fmt.Sprintf("%s: location must be at most %d characters", label, MaxLocationLen))
	v.Custom(path+".notes", utf8.RuneCountInString(community.Notes) > MaxNotesLen,
		fmt.Sprintf("%s: notes must be at most %d characters", label, MaxNotesLen))

	for j, activity := range community.EconomicActivities {
		v.Custom(fmt.Sprintf("%s.economic_activities[%d]", path, j),
			utf8.RuneCountInString(activity) > MaxActivityLen,
			fmt.Sprintf("%s: economic activity %d must be at most %d characters", label, j+1, MaxActivityLen))
	}

	if len(community.Plants) == 0 {
		v.Custom(path+".plants", true, label+": at least one plant is required")
		return
	}

	for j, plant := range community.Plants {
		validatePlant(v, i, j, plant)
	}
}

// validatePlant checks one plant's three name/use lists.
func validatePlant(v *validate.Validator, i, j int, plant Plant) {
	path := fmt.Sprintf("%s[%d].plants[%d]", FieldCommunities, i, j)
	label := fmt.Sprintf("Community %d, Plant %d", i+1, j+1)

	validateNameList(v, path+".scientific_names", label, "scientific name",
		plant.ScientificNames, MaxScientificNameLen)
	validateNameList(v, path+".vernacular_names", label, "vernacular name",
		plant.VernacularNames, MaxVernacularNameLen)
	validateNameList(v, path+".use_types", label, "use type",
		plant.UseTypes, MaxUseTypeLen)
}

// validateNameList applies the shared non-empty-list rule to one of a plant's
// string lists: the list must exist, and every entry must be non-empty and
// within the cap.
func validateNameList(v *validate.Validator, path, label, noun string, entries []string, maxLen int) {
	if len(entries) == 0 {
		v.Custom(path, true, fmt.Sprintf("%s: %s is required", label, noun))
		return
	}

	for k, entry := range entries {
		entryPath := fmt.Sprintf("%s[%d]", path, k)
		v.Custom(entryPath, strings.TrimSpace(entry) == "",
			fmt.Sprintf("%s: %s %d must not be empty", label, noun, k+1))
		v.Custom(entryPath, utf8.RuneCountInString(entry) > maxLen,
			fmt.Sprintf("%s: %s %d must be at most %d characters", label, noun, k+1, maxLen))
	}
}
