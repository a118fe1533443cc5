// Copyright (c) 2026 Etnoflora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/taibuivan/etnoflora/pkg/convert"
	"github.com/taibuivan/etnoflora/pkg/slice"
	"github.com/taibuivan/etnoflora/pkg/slug"
)

// # Name/Value Normalizers

// SplitList splits a comma-separated string into trimmed, non-empty pieces.
//
// It is idempotent under round-trip: re-joining the result with commas and
// splitting again yields the same list. Empty input yields nil.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var result []string
	for _, piece := range strings.Split(s, ",") {
		if clean := strings.TrimSpace(piece); clean != "" {
			result = append(result, clean)
		}
	}
	return result
}

// FormatAuthor canonicalizes an author name into "LASTNAME, I." citation form.
//
// # Accepted Shapes
//
//   - "silva, joão"  → "SILVA, J."  (surname before the comma)
//   - "Maria Silva"  → "SILVA, M."  (surname is the last token)
//   - "Madonna"      → "MADONNA"    (single token, no initial)
//
// Empty input yields "".
func FormatAuthor(s string) string {
	name := strings.TrimSpace(norm.NFC.String(s))
	if name == "" {
		return ""
	}

	if before, after, found := strings.Cut(name, ","); found {
		surname := strings.ToUpper(strings.TrimSpace(before))
		given := strings.Fields(after)
		if surname == "" {
			// Degenerate ", joão" input: fall back to the given name alone.
			if len(given) == 0 {
				return ""
			}
			return strings.ToUpper(given[0])
		}
		if len(given) == 0 {
			return surname
		}
		return surname + ", " + initialOf(given[0]) + "."
	}

	tokens := strings.Fields(name)
	if len(tokens) == 1 {
		return strings.ToUpper(tokens[0])
	}

	surname := strings.ToUpper(tokens[len(tokens)-1])
	return surname + ", " + initialOf(tokens[0]) + "."
}

// initialOf returns the uppercased first rune of a name token.
func initialOf(token string) string {
	for _, r := range token {
		return string(unicode.ToUpper(r))
	}
	return ""
}

// brazilianStates maps the official two-letter codes to full state names.
var brazilianStates = map[string]string{
	"AC": "Acre",
	"AL": "Alagoas",
	"AP": "Amapá",
	"AM": "Amazonas",
	"BA": "Bahia",
	"CE": "Ceará",
	"DF": "Distrito Federal",
	"ES": "Espírito Santo",
	"GO": "Goiás",
	"MA": "Maranhão",
	"MT": "Mato Grosso",
	"MS": "Mato Grosso do Sul",
	"MG": "Minas Gerais",
	"PA": "Pará",
	"PB": "Paraíba",
	"PR": "Paraná",
	"PE": "Pernambuco",
	"PI": "Piauí",
	"RJ": "Rio de Janeiro",
	"RN": "Rio Grande do Norte",
	"RS": "Rio Grande do Sul",
	"RO": "Rondônia",
	"RR": "Roraima",
	"SC": "Santa Catarina",
	"SP": "São Paulo",
	"SE": "Sergipe",
	"TO": "Tocantins",
}

// ExpandStateName expands a two-letter Brazilian state code into the full
// state name. Unknown codes and already-full names pass through unchanged
// (aside from whitespace trimming); the lookup itself is case-insensitive.
func ExpandStateName(s string) string {
	trimmed := strings.TrimSpace(s)
	if full, ok := brazilianStates[strings.ToUpper(trimmed)]; ok {
		return full
	}
	return trimmed
}

// StateNames returns the full names of all known states, sorted, for the
// submission form's state picker.
func StateNames() []string {
	names := make([]string, 0, len(brazilianStates))
	for _, name := range brazilianStates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// # Form-to-Record Mapper

// Key aliases accepted by the mapper. The legacy submission form posts
// Portuguese field names; the JSON API uses English ones. Both spell the
// same record.
var (
	titleKeys    = []string{"title", "titulo"}
	authorsKeys  = []string{"authors", "autores"}
	yearKeys     = []string{"year", "ano"}
	abstractKeys = []string{"abstract", "resumo"}
	doiKeys      = []string{"doi"}
	statusKeys   = []string{"status"}

	communitiesKeys = []string{"communities", "comunidades"}

	communityNameKeys = []string{"name", "nome"}
	municipalityKeys  = []string{"municipality", "municipio"}
	stateKeys         = []string{"state", "estado"}
	communityTypeKeys = []string{"type", "tipo"}
	locationKeys      = []string{"location", "localizacao"}
	activitiesKeys    = []string{"economicActivities", "economic_activities", "atividadesEconomicas"}
	notesKeys         = []string{"notes", "observacoes"}
	plantsKeys        = []string{"plants", "plantas"}

	scientificKeys = []string{"scientificNames", "scientific_names", "nomeCientifico", "nomesCientificos"}
	vernacularKeys = []string{"vernacularNames", "vernacular_names", "nomePopular", "nomesPopulares"}
	useTypeKeys    = []string{"useTypes", "use_types", "tipoUso", "tiposUso"}
)

// NormalizeRecord reconstructs a [Reference] from raw form input.
//
// Two input shapes are accepted and resolved once at this entry point:
// an already-nested object (communities as an array of objects, each with a
// plants array) or a flat map of bracket-indexed keys
// ("comunidades[0][plantas][1][nomeCientifico]") as posted by the legacy form.
//
// Normalization never fails: it always produces a record, possibly an invalid
// one that [Validate] will reject. Plants carrying no name at all are dropped
// here, before validation, so a community emptied by the drop surfaces an
// explicit "at least one plant is required" error instead of vanishing data.
func NormalizeRecord(raw map[string]any) *Reference {
	if raw == nil {
		return &Reference{Status: StatusPending}
	}

	if hasFlatKeys(raw) {
		raw = expandFlatKeys(raw)
	}

	record := &Reference{
		Title:    getString(raw, titleKeys...),
		Authors:  normalizeAuthors(raw),
		Year:     getYear(raw, yearKeys...),
		Abstract: getString(raw, abstractKeys...),
		DOI:      getString(raw, doiKeys...),
		Status:   Status(getString(raw, statusKeys...)),
	}
	if record.Status == "" {
		record.Status = StatusPending
	}

	for _, communityMap := range getObjectList(raw, communitiesKeys...) {
		record.Communities = append(record.Communities, normalizeCommunity(communityMap))
	}

	return record
}

// normalizeAuthors splits, citation-formats, and drops empty author entries.
func normalizeAuthors(raw map[string]any) []string {
	formatted := slice.Map(getStringList(raw, authorsKeys...), FormatAuthor)
	return slice.Filter(formatted, func(author string) bool { return author != "" })
}

// normalizeCommunity maps one community object, normalizing its plants and
// dropping plant entries that carry no name information.
func normalizeCommunity(m map[string]any) Community {
	community := Community{
		Name:               getString(m, communityNameKeys...),
		Municipality:       getString(m, municipalityKeys...),
		State:              ExpandStateName(getString(m, stateKeys...)),
		Type:               getString(m, communityTypeKeys...),
		Location:           getString(m, locationKeys...),
		EconomicActivities: getStringList(m, activitiesKeys...),
		Notes:              getString(m, notesKeys...),
	}

	var plants []Plant
	for _, plantMap := range getObjectList(m, plantsKeys...) {
		plants = append(plants, normalizePlant(plantMap))
	}
	community.Plants = slice.Filter(plants, Plant.HasName)

	return community
}

// normalizePlant maps one plant object. Scientific names and use types are
// split only; vernacular names are additionally slugged into canonical form.
func normalizePlant(m map[string]any) Plant {
	vernacular := slice.Map(getStringList(m, vernacularKeys...), slug.Vernacular)

	return Plant{
		ScientificNames: getStringList(m, scientificKeys...),
		VernacularNames: slice.Filter(vernacular, func(name string) bool { return name != "" }),
		UseTypes:        getStringList(m, useTypeKeys...),
	}
}

// # Flat Key-Path Parsing

var (
	// flatKeyPattern matches a bracket-indexed form key such as
	// "comunidades[0][plantas][1][nomeCientifico]".
	flatKeyPattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)((?:\[[^\[\]]+\])+)$`)
	// segmentPattern extracts the individual [segment] pieces of a flat key.
	segmentPattern = regexp.MustCompile(`\[([^\[\]]+)\]`)
)

// hasFlatKeys reports whether the input uses bracket-indexed keys.
func hasFlatKeys(raw map[string]any) bool {
	for key := range raw {
		if flatKeyPattern.MatchString(key) {
			return true
		}
	}
	return false
}

// parseKeyPath parses a flat key into its path segments: string segments are
// field names, integer segments are array indices.
//
// "comunidades[0][plantas][1][nomeCientifico]" becomes
// ["comunidades", 0, "plantas", 1, "nomeCientifico"].
func parseKeyPath(key string) ([]any, bool) {
	match := flatKeyPattern.FindStringSubmatch(key)
	if match == nil {
		return nil, false
	}

	path := []any{match[1]}
	for _, segment := range segmentPattern.FindAllStringSubmatch(match[2], -1) {
		if index, err := strconv.Atoi(segment[1]); err == nil && index >= 0 {
			path = append(path, index)
		} else {
			path = append(path, segment[1])
		}
	}
	return path, true
}

// expandFlatKeys rebuilds the nested object tree encoded by flat keys.
//
// Indexed segments are first collected into sparse index→value maps, so input
// order and index gaps don't matter, then densified into plain slices sorted
// by index ascending. Non-flat keys are carried over untouched.
func expandFlatKeys(raw map[string]any) map[string]any {
	tree := map[string]any{}

	for key, value := range raw {
		path, ok := parseKeyPath(key)
		if !ok {
			tree[key] = value
			continue
		}
		setAtPath(tree, path, value)
	}

	return densify(tree).(map[string]any)
}

// setAtPath writes value into the tree at the given path, creating
// intermediate containers as needed. Integer segments create sparse
// map[int]any containers that densify later turns into slices.
func setAtPath(tree map[string]any, path []any, value any) {
	field := path[0].(string)
	tree[field] = setInto(tree[field], path[1:], value)
}

// setInto recursively descends the remaining path, returning the (possibly
// newly created) container for the current level.
//
// A field addressed with both indexed and named segments across keys is
// malformed input; the container established first wins and the conflicting
// key is dropped, so earlier collected values are never discarded.
func setInto(container any, path []any, value any) any {
	if len(path) == 0 {
		return value
	}

	switch key := path[0].(type) {
	case string:
		if existing, isIndexed := container.(map[int]any); isIndexed {
			return existing
		}
		m, _ := container.(map[string]any)
		if m == nil {
			m = map[string]any{}
		}
		m[key] = setInto(m[key], path[1:], value)
		return m
	case int:
		if existing, isNamed := container.(map[string]any); isNamed {
			return existing
		}
		m, _ := container.(map[int]any)
		if m == nil {
			m = map[int]any{}
		}
		m[key] = setInto(m[key], path[1:], value)
		return m
	default:
		return value
	}
}

// densify converts sparse map[int]any containers into dense []any slices
// ordered by index ascending, recursing through the whole tree.
func densify(node any) any {
	switch typed := node.(type) {
	case map[string]any:
		for key, value := range typed {
			typed[key] = densify(value)
		}
		return typed
	case map[int]any:
		indices := make([]int, 0, len(typed))
		for index := range typed {
			indices = append(indices, index)
		}
		sort.Ints(indices)

		dense := make([]any, 0, len(indices))
		for _, index := range indices {
			dense = append(dense, densify(typed[index]))
		}
		return dense
	default:
		return node
	}
}

// # Loose-Typed Accessors

// getString returns the first present alias as a trimmed string.
func getString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		value, exists := m[key]
		if !exists {
			continue
		}
		if s, ok := value.(string); ok {
			return strings.TrimSpace(norm.NFC.String(s))
		}
	}
	return ""
}

// getYear reads an integer that may arrive as a JSON number or a form string.
func getYear(m map[string]any, keys ...string) int {
	for _, key := range keys {
		switch value := m[key].(type) {
		case float64:
			return int(value)
		case int:
			return value
		case string:
			return convert.ToInt(strings.TrimSpace(value))
		}
	}
	return 0
}

// getStringList reads a list field that may arrive as a comma-separated
// string (split per [SplitList]) or as an already-structured array (entries
// trimmed, empties dropped).
func getStringList(m map[string]any, keys ...string) []string {
	for _, key := range keys {
		value, exists := m[key]
		if !exists {
			continue
		}

		switch typed := value.(type) {
		case string:
			return SplitList(typed)
		case []string:
			return slice.Filter(
				slice.Map(typed, func(s string) string { return strings.TrimSpace(norm.NFC.String(s)) }),
				func(s string) bool { return s != "" },
			)
		case []any:
			var result []string
			for _, entry := range typed {
				if s, ok := entry.(string); ok {
					if clean := strings.TrimSpace(norm.NFC.String(s)); clean != "" {
						result = append(result, clean)
					}
				}
			}
			return result
		}
	}
	return nil
}

// getObjectList reads an array-of-objects field such as communities or plants.
func getObjectList(m map[string]any, keys ...string) []map[string]any {
	for _, key := range keys {
		entries, ok := m[key].([]any)
		if !ok {
			// Already-typed input (internal callers) is accepted as-is.
			if typed, isTyped := m[key].([]map[string]any); isTyped {
				return typed
			}
			continue
		}

		var result []map[string]any
		for _, entry := range entries {
			if object, isObject := entry.(map[string]any); isObject {
				result = append(result, object)
			}
		}
		return result
	}
	return nil
}
