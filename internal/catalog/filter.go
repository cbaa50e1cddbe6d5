package catalog

import (
	"fmt"
	"strings"

	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/schema"
)

// DefaultRadiusMeters is used when a search names no radius.
const DefaultRadiusMeters = 10000

// SearchInput is the wire shape of a facility search. Filters left
// empty match everything.
type SearchInput struct {
	Location       string   `mapstructure:"location"`
	RadiusMeters   float64  `mapstructure:"radius"`
	TreatmentNeeds []string `mapstructure:"treatment_needs"`
	CareQuality    string   `mapstructure:"care_quality"`
	PriceRange     string   `mapstructure:"price_range"`
	FacilityTypes  []string `mapstructure:"facility_types"`
	Infrastructure string   `mapstructure:"infrastructure"`
}

// Validate checks the search arguments and normalizes defaults in
// place: a zero radius becomes DefaultRadiusMeters and empty enum
// filters become "any".
func (in *SearchInput) Validate() error {
	if in.Location == "" {
		return schema.Required("location")
	}
	if in.RadiusMeters < 0 {
		return schema.Invalid("radius", "must not be negative")
	}
	if in.RadiusMeters == 0 {
		in.RadiusMeters = DefaultRadiusMeters
	}
	if in.CareQuality == "" {
		in.CareQuality = string(QualityAny)
	}
	if _, ok := qualityRank[CareQuality(in.CareQuality)]; !ok {
		return schema.Invalid("care_quality", fmt.Sprintf("must be one of: %s, %s, %s", QualityHigh, QualityMedium, QualityAny))
	}
	if in.PriceRange == "" {
		in.PriceRange = string(PriceAny)
	}
	if !priceValues[PriceRange(in.PriceRange)] {
		return schema.Invalid("price_range", fmt.Sprintf("must be one of: %s, %s, %s, %s", PriceLow, PriceModerate, PriceHigh, PriceAny))
	}
	if in.Infrastructure == "" {
		in.Infrastructure = string(InfraAny)
	}
	if _, ok := infraRank[InfraGrade(in.Infrastructure)]; !ok {
		return schema.Invalid("infrastructure", fmt.Sprintf("must be one of: %s, %s, %s", InfraExcellent, InfraGood, InfraAny))
	}
	for _, ft := range in.FacilityTypes {
		if !validKinds[Kind(ft)] {
			return schema.Invalid("facility_types", fmt.Sprintf("unknown facility type %q", ft))
		}
	}
	return nil
}

// Search applies every requested filter as an intersection over the
// reference set and returns matches in catalog order. Location and
// radius scope the search for the caller but do not narrow the fixed
// set.
func Search(in SearchInput) []Facility {
	out := make([]Facility, 0, len(facilities))
	for _, f := range facilities {
		if !matches(f, in) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func matches(f Facility, in SearchInput) bool {
	if len(in.TreatmentNeeds) > 0 && !coversAnyNeed(f, in.TreatmentNeeds) {
		return false
	}
	if qualityRank[f.Quality] < qualityRank[CareQuality(in.CareQuality)] {
		return false
	}
	if pr := PriceRange(in.PriceRange); pr != PriceAny && f.Price != pr {
		return false
	}
	if len(in.FacilityTypes) > 0 && !kindListed(f.Kind, in.FacilityTypes) {
		return false
	}
	if infraRank[f.Infrastructure] < infraRank[InfraGrade(in.Infrastructure)] {
		return false
	}
	return true
}

// coversAnyNeed reports whether any facility service covers any of the
// requested needs. Matching is case-insensitive on service substrings,
// so "oncology" finds a facility listing "oncology" and "emergency"
// finds one listing "emergency care".
func coversAnyNeed(f Facility, needs []string) bool {
	for _, need := range needs {
		n := strings.ToLower(strings.TrimSpace(need))
		if n == "" {
			continue
		}
		for _, svc := range f.Services {
			if strings.Contains(strings.ToLower(svc), n) {
				return true
			}
		}
	}
	return false
}

func kindListed(k Kind, kinds []string) bool {
	for _, want := range kinds {
		if Kind(want) == k {
			return true
		}
	}
	return false
}
