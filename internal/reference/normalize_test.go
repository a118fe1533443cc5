// Copyright (c) 2026 Etnoflora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/etnoflora/internal/reference"
)

/*
TestSplitList checks the comma-list splitter, including its round-trip
idempotence.
*/
func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"simple", "a,b,c", []string{"a", "b", "c"}},
		{"trims_pieces", " erva-doce , funcho ", []string{"erva-doce", "funcho"}},
		{"drops_empty_pieces", "a,,b,", []string{"a", "b"}},
		{"single_value", "medicinal", []string{"medicinal"}},
		{"empty", "", nil},
		{"whitespace_only", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := reference.SplitList(tt.input)
			assert.Equal(t, tt.expected, result)

			// Round-trip: re-joining and re-splitting changes nothing.
			assert.Equal(t, result, reference.SplitList(strings.Join(result, ",")))
		})
	}
}

/*
TestFormatAuthor covers the three accepted author name shapes.
*/
func TestFormatAuthor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"comma_form", "silva, joão", "SILVA, J."},
		{"comma_form_multiple_given", "Souza, Maria Clara", "SOUZA, M."},
		{"whitespace_form", "Maria Silva", "SILVA, M."},
		{"whitespace_form_middle_names", "João da Silva Souza", "SOUZA, J."},
		{"single_token", "Madonna", "MADONNA"},
		{"comma_no_given", "Silva,", "SILVA"},
		{"accented_initial", "Érica Santos", "SANTOS, É."},
		{"empty", "", ""},
		{"whitespace_only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, reference.FormatAuthor(tt.input))
		})
	}
}

/*
TestExpandStateName checks code expansion, pass-through, and case handling.
*/
func TestExpandStateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"uppercase_code", "SP", "São Paulo"},
		{"lowercase_code", "ba", "Bahia"},
		{"code_with_whitespace", " MG ", "Minas Gerais"},
		{"full_name_passes_through", "São Paulo", "São Paulo"},
		{"unknown_passes_through", "XX", "XX"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, reference.ExpandStateName(tt.input))
		})
	}
}

/*
TestStateNames verifies the picker list covers all 26 states plus the Distrito
Federal, sorted.
*/
func TestStateNames(t *testing.T) {
	names := reference.StateNames()

	assert.Len(t, names, 27)
	assert.True(t, sortedStrings(names))
	assert.Contains(t, names, "Distrito Federal")
	assert.Contains(t, names, "São Paulo")
}

func sortedStrings(values []string) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return false
		}
	}
	return true
}

/*
TestNormalizeRecord_Nested maps an already-nested Portuguese payload into a
record, exercising trimming, author formatting, state expansion, and
vernacular slugging.
*/
func TestNormalizeRecord_Nested(t *testing.T) {
	raw := map[string]any{
		"titulo":  "  Plantas medicinais no cerrado  ",
		"autores": []any{"silva, joão", "Maria Souza"},
		"ano":     "2003",
		"resumo":  "Levantamento etnobotânico.",
		"doi":     "10.1590/etno.2003",
		"comunidades": []any{
			map[string]any{
				"nome":                 "Comunidade Kalunga",
				"municipio":            "Cavalcante",
				"estado":               "GO",
				"tipo":                 "quilombola",
				"atividadesEconomicas": "agricultura, extrativismo",
				"plantas": []any{
					map[string]any{
						"nomeCientifico": "Foeniculum vulgare Mill.",
						"nomePopular":    "Erva Doce, Funcho",
						"tipoUso":        "medicinal",
					},
				},
			},
		},
	}

	record := reference.NormalizeRecord(raw)

	assert.Equal(t, "Plantas medicinais no cerrado", record.Title)
	assert.Equal(t, []string{"SILVA, J.", "SOUZA, M."}, record.Authors)
	assert.Equal(t, 2003, record.Year)
	assert.Equal(t, "Levantamento etnobotânico.", record.Abstract)
	assert.Equal(t, "10.1590/etno.2003", record.DOI)
	assert.Equal(t, reference.StatusPending, record.Status)

	require.Len(t, record.Communities, 1)
	community := record.Communities[0]
	assert.Equal(t, "Comunidade Kalunga", community.Name)
	assert.Equal(t, "Cavalcante", community.Municipality)
	assert.Equal(t, "Goiás", community.State)
	assert.Equal(t, "quilombola", community.Type)
	assert.Equal(t, []string{"agricultura", "extrativismo"}, community.EconomicActivities)

	require.Len(t, community.Plants, 1)
	plant := community.Plants[0]
	assert.Equal(t, []string{"Foeniculum vulgare Mill."}, plant.ScientificNames)
	assert.Equal(t, []string{"erva-doce", "funcho"}, plant.VernacularNames)
	assert.Equal(t, []string{"medicinal"}, plant.UseTypes)
}

/*
TestNormalizeRecord_FlatKeys rebuilds nesting from the legacy form's
bracket-indexed Portuguese keys.
*/
func TestNormalizeRecord_FlatKeys(t *testing.T) {
	raw := map[string]any{
		"titulo":  "Etnobotânica caiçara",
		"autores": "Ana Lima",
		"ano":     "2015",

		"comunidades[0][nome]":                       "Praia do Sono",
		"comunidades[0][municipio]":                  "Paraty",
		"comunidades[0][estado]":                     "RJ",
		"comunidades[0][plantas][0][nomeCientifico]": "Schinus terebinthifolia",
		"comunidades[0][plantas][0][nomePopular]":    "Aroeira",
		"comunidades[0][plantas][0][tipoUso]":        "medicinal",
		"comunidades[0][plantas][1][nomeCientifico]": "Euterpe edulis",
		"comunidades[0][plantas][1][nomePopular]":    "Juçara",
		"comunidades[0][plantas][1][tipoUso]":        "alimentar",
	}

	record := reference.NormalizeRecord(raw)

	assert.Equal(t, "Etnobotânica caiçara", record.Title)
	assert.Equal(t, []string{"LIMA, A."}, record.Authors)
	assert.Equal(t, 2015, record.Year)

	require.Len(t, record.Communities, 1)
	community := record.Communities[0]
	assert.Equal(t, "Praia do Sono", community.Name)
	assert.Equal(t, "Rio de Janeiro", community.State)

	require.Len(t, community.Plants, 2)
	assert.Equal(t, []string{"Schinus terebinthifolia"}, community.Plants[0].ScientificNames)
	assert.Equal(t, []string{"aroeira"}, community.Plants[0].VernacularNames)
	assert.Equal(t, []string{"juçara"}, community.Plants[1].VernacularNames)
}

/*
TestNormalizeRecord_FlatKeys_SparseIndices verifies that input order and index
gaps do not matter: indices densify into ascending order.
*/
func TestNormalizeRecord_FlatKeys_SparseIndices(t *testing.T) {
	raw := map[string]any{
		"title":   "Sparse indices",
		"authors": "Ana Lima",
		"year":    "1999",

		"communities[2][name]":                       "Terceira",
		"communities[2][municipality]":               "Manaus",
		"communities[2][state]":                      "AM",
		"communities[2][plants][5][scientificNames]": "Carapa guianensis",
		"communities[2][plants][5][vernacularNames]": "Andiroba",
		"communities[2][plants][5][useTypes]":        "medicinal",
		"communities[0][name]":                       "Primeira",
		"communities[0][municipality]":               "Belém",
		"communities[0][state]":                      "PA",
		"communities[0][plants][0][scientificNames]": "Euterpe oleracea",
		"communities[0][plants][0][vernacularNames]": "Açaí",
		"communities[0][plants][0][useTypes]":        "alimentar",
	}

	record := reference.NormalizeRecord(raw)

	require.Len(t, record.Communities, 2)
	assert.Equal(t, "Primeira", record.Communities[0].Name)
	assert.Equal(t, "Pará", record.Communities[0].State)
	assert.Equal(t, "Terceira", record.Communities[1].Name)
	assert.Equal(t, "Amazonas", record.Communities[1].State)

	require.Len(t, record.Communities[1].Plants, 1)
	assert.Equal(t, []string{"andiroba"}, record.Communities[1].Plants[0].VernacularNames)
}

/*
TestNormalizeRecord_FlatKeys_MixedAliases accepts flat keys that mix the
English array name with Portuguese field names, as the legacy form produced.
*/
func TestNormalizeRecord_FlatKeys_MixedAliases(t *testing.T) {
	raw := map[string]any{
		"title": "Mixed key languages",
		"communities[0][nome]":                       "Comunidade X",
		"communities[0][plantas][0][nomeCientifico]": "Yucca gloriosa",
	}

	record := reference.NormalizeRecord(raw)

	require.Len(t, record.Communities, 1)
	assert.Equal(t, "Comunidade X", record.Communities[0].Name)
	require.Len(t, record.Communities[0].Plants, 1)
	assert.Equal(t, []string{"Yucca gloriosa"}, record.Communities[0].Plants[0].ScientificNames)
}

/*
TestNormalizeRecord_DropsNamelessPlants verifies that plant entries carrying
no name at all are filtered out before the record reaches validation.
*/
func TestNormalizeRecord_DropsNamelessPlants(t *testing.T) {
	raw := map[string]any{
		"title":   "Plant filtering",
		"authors": []any{"SILVA, J."},
		"year":    float64(2010),
		"communities": []any{
			map[string]any{
				"name":         "Comunidade",
				"municipality": "Cidade",
				"state":        "BA",
				"plants": []any{
					// Form noise: a row with uses but no name.
					map[string]any{"useTypes": "medicinal"},
					map[string]any{"scientificNames": "Anadenanthera colubrina"},
					// Whitespace-only names are still nameless.
					map[string]any{"scientificNames": "   ", "vernacularNames": ""},
				},
			},
		},
	}

	record := reference.NormalizeRecord(raw)

	require.Len(t, record.Communities, 1)
	require.Len(t, record.Communities[0].Plants, 1)
	assert.Equal(t, []string{"Anadenanthera colubrina"}, record.Communities[0].Plants[0].ScientificNames)
}

/*
TestNormalizeRecord_FilteringSurfacesValidationError: a community whose only
plant is nameless loses it during normalization, and validation then reports
the missing plant explicitly instead of the data vanishing silently.
*/
func TestNormalizeRecord_FilteringSurfacesValidationError(t *testing.T) {
	raw := map[string]any{
		"title":   "Nameless plants",
		"authors": []any{"SILVA, J."},
		"year":    float64(2010),
		"communities": []any{
			map[string]any{
				"name":         "Comunidade",
				"municipality": "Cidade",
				"state":        "BA",
				"plants": []any{
					map[string]any{"useTypes": "medicinal"},
				},
			},
		},
	}

	record := reference.NormalizeRecord(raw)
	require.Empty(t, record.Communities[0].Plants)

	result := reference.Validate(record)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Community 1: at least one plant is required")
}

/*
TestNormalizeRecord_EmptyInput verifies nil and empty payloads normalize to an
empty pending record rather than failing.
*/
func TestNormalizeRecord_EmptyInput(t *testing.T) {
	for name, raw := range map[string]map[string]any{"nil": nil, "empty": {}} {
		t.Run(name, func(t *testing.T) {
			record := reference.NormalizeRecord(raw)

			require.NotNil(t, record)
			assert.Equal(t, reference.StatusPending, record.Status)
			assert.Empty(t, record.Title)
			assert.Empty(t, record.Communities)
		})
	}
}

/*
TestNormalizeRecord_YearShapes checks the three accepted year encodings and
the unparseable fallback to zero.
*/
func TestNormalizeRecord_YearShapes(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected int
	}{
		{"json_number", float64(1987), 1987},
		{"form_string", "1987", 1987},
		{"padded_string", " 1987 ", 1987},
		{"unparseable", "approx. 1987", 0},
		{"missing", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[string]any{"title": "Year shapes"}
			if tt.value != nil {
				raw["year"] = tt.value
			}

			assert.Equal(t, tt.expected, reference.NormalizeRecord(raw).Year)
		})
	}
}
