// Copyright (c) 2026 Etnoflora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ReferenceCollection represents the 'references' collection: one document per
// bibliographic reference with communities and plants embedded.
type ReferenceCollection struct {
	Collection string
	ID         string
	Title      string
	Authors    string
	Year       string
	Abstract   string
	DOI        string
	Status     string
	Community  string
	CreatedAt  string
	UpdatedAt  string

	// Dotted query paths into the embedded communities array.
	CommunityName         string
	CommunityMunicipality string
	CommunityState        string

	// Dotted query paths into the doubly-embedded plants array.
	PlantScientificNames string
	PlantVernacularNames string
}

// Reference is the schema definition for the 'references' collection.
var Reference = ReferenceCollection{
	Collection: "references",
	ID:         "_id",
	Title:      "title",
	Authors:    "authors",
	Year:       "year",
	Abstract:   "abstract",
	DOI:        "doi",
	Status:     "status",
	Community:  "communities",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",

	CommunityName:         "communities.name",
	CommunityMunicipality: "communities.municipality",
	CommunityState:        "communities.state",

	PlantScientificNames: "communities.plants.scientific_names",
	PlantVernacularNames: "communities.plants.vernacular_names",
}

// SearchPaths returns every dotted path the search query builder may filter on.
func (c ReferenceCollection) SearchPaths() []string {
	return []string{
		c.Status,
		c.CommunityName,
		c.CommunityMunicipality,
		c.CommunityState,
		c.PlantScientificNames,
		c.PlantVernacularNames,
	}
}
