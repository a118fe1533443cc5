// Copyright (c) 2026 Etnoflora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reference implements the record engine at the heart of Etnoflora.

It manages the three-level hierarchical bibliographic record (a [Reference]
documenting one or more traditional communities, each documenting one or more
plant species) through its submission, curation and publication lifecycle.

# Core Responsibility

  - Normalization: Reconstructs a nested record from free-text form input,
    including flat bracket-indexed submissions from the legacy HTML form.
  - Validation: Walks the reconstructed record and collects every
    field- and index-specific error in a single pass.
  - Workflow: Tracks the pending/approved/rejected curation state that gates
    public search visibility.
  - Search: Builds the multi-criteria, status-gated query over the document
    store.

Communities and plants have no identity of their own: they live embedded in
their parent document and are replaced wholesale on every edit.
*/
package reference

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// # Status Workflow

// Status is the curation state of a reference.
//
// Every reference is created as [StatusPending]. Curators may move it to
// [StatusApproved] or [StatusRejected] and back again; only approved
// references are reachable through the public search. No transition history
// is kept.
type Status string

const (
	// StatusPending marks a freshly submitted reference awaiting curation.
	StatusPending Status = "pending"
	// StatusApproved marks a curated reference visible to public search.
	StatusApproved Status = "approved"
	// StatusRejected marks a reference excluded from public search.
	StatusRejected Status = "rejected"
)

// IsValid reports whether s is one of the three known curation states.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// StatusValues returns the allowed status strings, used by enum validation.
func StatusValues() []string {
	return []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}
}

// # Record Hierarchy

// Plant is a species-use entry nested in a [Community].
type Plant struct {
	// ScientificNames holds botanical binomials, possibly with authority
	// abbreviations ("Foeniculum vulgare Mill.").
	ScientificNames []string `bson:"scientific_names" json:"scientific_names"`
	// VernacularNames holds local names in canonical lowercase-hyphenated
	// form ("erva-doce").
	VernacularNames []string `bson:"vernacular_names" json:"vernacular_names"`
	// UseTypes classifies how the community uses the plant ("medicinal", "food").
	UseTypes []string `bson:"use_types" json:"use_types"`
}

// HasName reports whether the plant carries at least one non-empty scientific
// or vernacular name. A plant entry with neither is form noise, not data.
func (p Plant) HasName() bool {
	for _, name := range p.ScientificNames {
		if strings.TrimSpace(name) != "" {
			return true
		}
	}
	for _, name := range p.VernacularNames {
		if strings.TrimSpace(name) != "" {
			return true
		}
	}
	return false
}

// Community is a traditional community documented within a [Reference].
type Community struct {
	Name         string `bson:"name" json:"name"`
	Municipality string `bson:"municipality" json:"municipality"`
	// State is the full state name; two-letter codes are expanded during
	// normalization so exact-match search behaves predictably.
	State string `bson:"state" json:"state"`
	// Type is a free-text classification tag. [CommunityTypes] offers the
	// known palette as UI guidance, but any value is accepted.
	Type     string `bson:"type,omitempty" json:"type,omitempty"`
	Location string `bson:"location,omitempty" json:"location,omitempty"`
	// EconomicActivities lists the community's livelihood activities.
	EconomicActivities []string `bson:"economic_activities,omitempty" json:"economic_activities,omitempty"`
	Notes              string   `bson:"notes,omitempty" json:"notes,omitempty"`
	Plants             []Plant  `bson:"plants" json:"plants"`
}

// Reference is the top-level bibliographic record being curated.
type Reference struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title string             `bson:"title" json:"title"`
	// Authors holds citation-form names ("SILVA, J."), normalized on intake.
	Authors  []string `bson:"authors" json:"authors"`
	Year     int      `bson:"year" json:"year"`
	Abstract string   `bson:"abstract,omitempty" json:"abstract,omitempty"`
	DOI      string   `bson:"doi,omitempty" json:"doi,omitempty"`
	Status   Status   `bson:"status" json:"status"`

	Communities []Community `bson:"communities" json:"communities"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// # Field Constraints

// Length caps and bounds enforced by the validation engine.
const (
	MaxTitleLen    = 500
	MaxAbstractLen = 5000
	MaxDOILen      = 100

	MinYear = 1500
	MaxYear = 2100

	MaxCommunityNameLen = 200
	MaxMunicipalityLen  = 100
	MaxStateLen         = 100
	MaxLocationLen      = 500
	MaxActivityLen      = 100
	MaxNotesLen         = 2000

	MaxScientificNameLen = 200
	MaxVernacularNameLen = 100
	MaxUseTypeLen        = 100
)

// # Field Identifiers

// Field paths used in validation details and dynamic query mapping.
const (
	FieldTitle       = "title"
	FieldAuthors     = "authors"
	FieldYear        = "year"
	FieldAbstract    = "abstract"
	FieldDOI         = "doi"
	FieldStatus      = "status"
	FieldCommunities = "communities"
)

// # Community Type Palette

// CommunityTypes lists the known categories of traditional peoples and
// communities, offered to the submission form as guidance. The Type field
// itself is free text — values outside this palette are not rejected.
var CommunityTypes = []string{
	"indígena",
	"quilombola",
	"caiçara",
	"ribeirinha",
	"extrativista",
	"pescadores artesanais",
	"quebradeiras de coco babaçu",
	"seringueiros",
	"castanheiros",
	"catadores de mangaba",
	"apanhadores de flores sempre-vivas",
	"faxinalenses",
	"geraizeiros",
	"vazanteiros",
	"veredeiros",
	"pantaneiros",
	"sertanejos",
	"caatingueiros",
	"fundo e fecho de pasto",
	"comunidades de terreiro",
	"ciganos",
	"pomeranos",
	"retireiros",
	"andirobeiras",
	"piaçabeiros",
	"morroquianos",
	"ilhéus",
}
