package catalog

import (
	"strings"
	"testing"
)

func names(fs []Facility) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.Name
	}
	return out
}

func search(t *testing.T, in SearchInput) []Facility {
	t.Helper()
	if in.Location == "" {
		in.Location = "Baltimore, MD"
	}
	if err := in.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	return Search(in)
}

func TestSearchWithoutFiltersReturnsWholeSet(t *testing.T) {
	got := search(t, SearchInput{})
	if len(got) != 3 {
		t.Fatalf("got %d facilities, want 3: %v", len(got), names(got))
	}
}

func TestSearchByTreatmentNeed(t *testing.T) {
	got := search(t, SearchInput{TreatmentNeeds: []string{"oncology"}})
	if len(got) != 1 || got[0].Name != "Specialized Medical Center" {
		t.Errorf("oncology matched %v, want [Specialized Medical Center]", names(got))
	}

	got = search(t, SearchInput{TreatmentNeeds: []string{"Emergency"}})
	if len(got) != 1 || got[0].Name != "City General Hospital" {
		t.Errorf("emergency matched %v, want [City General Hospital]", names(got))
	}

	// Any listed need is enough.
	got = search(t, SearchInput{TreatmentNeeds: []string{"unobtainium", "vaccinations"}})
	if len(got) != 1 || got[0].Name != "Community Health Clinic" {
		t.Errorf("mixed needs matched %v, want [Community Health Clinic]", names(got))
	}
}

func TestSearchQualityLadder(t *testing.T) {
	if got := search(t, SearchInput{CareQuality: "medium"}); len(got) != 3 {
		t.Errorf("medium quality matched %v, want all three", names(got))
	}
	got := search(t, SearchInput{CareQuality: "high"})
	if len(got) != 2 {
		t.Fatalf("high quality matched %v, want two", names(got))
	}
	for _, f := range got {
		if f.Quality != QualityHigh {
			t.Errorf("%s has quality %s, want high", f.Name, f.Quality)
		}
	}
}

func TestSearchPriceIsExact(t *testing.T) {
	cases := map[string]string{
		"low":      "Community Health Clinic",
		"moderate": "City General Hospital",
		"high":     "Specialized Medical Center",
	}
	for price, want := range cases {
		got := search(t, SearchInput{PriceRange: price})
		if len(got) != 1 || got[0].Name != want {
			t.Errorf("price %s matched %v, want [%s]", price, names(got), want)
		}
	}
}

func TestSearchInfrastructureLadder(t *testing.T) {
	if got := search(t, SearchInput{Infrastructure: "good"}); len(got) != 3 {
		t.Errorf("good infrastructure matched %v, want all three", names(got))
	}
	got := search(t, SearchInput{Infrastructure: "excellent"})
	if len(got) != 2 {
		t.Errorf("excellent infrastructure matched %v, want two", names(got))
	}
}

func TestSearchByFacilityType(t *testing.T) {
	got := search(t, SearchInput{FacilityTypes: []string{"clinic"}})
	if len(got) != 1 || got[0].Name != "Community Health Clinic" {
		t.Errorf("clinic matched %v", names(got))
	}
	got = search(t, SearchInput{FacilityTypes: []string{"hospital", "specialized_center"}})
	if len(got) != 2 {
		t.Errorf("hospital+specialized matched %v, want two", names(got))
	}
}

func TestSearchIntersectsFilters(t *testing.T) {
	got := search(t, SearchInput{
		TreatmentNeeds: []string{"oncology"},
		PriceRange:     "low",
	})
	if len(got) != 0 {
		t.Errorf("contradictory filters matched %v, want none", names(got))
	}
}

func TestValidateNormalizesDefaults(t *testing.T) {
	in := SearchInput{Location: "Austin, TX"}
	if err := in.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if in.RadiusMeters != DefaultRadiusMeters {
		t.Errorf("RadiusMeters = %v, want %d", in.RadiusMeters, DefaultRadiusMeters)
	}
	if in.CareQuality != "any" || in.PriceRange != "any" || in.Infrastructure != "any" {
		t.Errorf("enum defaults not applied: %+v", in)
	}
}

func TestValidateRejectsBadArguments(t *testing.T) {
	cases := []struct {
		name  string
		in    SearchInput
		field string
	}{
		{"missing location", SearchInput{}, "'location'"},
		{"negative radius", SearchInput{Location: "x", RadiusMeters: -1}, "'radius'"},
		{"bad quality", SearchInput{Location: "x", CareQuality: "superb"}, "'care_quality'"},
		{"bad price", SearchInput{Location: "x", PriceRange: "free"}, "'price_range'"},
		{"bad infrastructure", SearchInput{Location: "x", Infrastructure: "shiny"}, "'infrastructure'"},
		{"bad facility type", SearchInput{Location: "x", FacilityTypes: []string{"spa"}}, "'facility_types'"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q does not name %s", err, tc.field)
			}
		})
	}
}

func TestFacilitiesReturnsCopy(t *testing.T) {
	fs := Facilities()
	fs[0].Name = "mutated"
	fs[0].Services[0] = "mutated"
	if got := Facilities()[0]; got.Name == "mutated" || got.Services[0] == "mutated" {
		t.Error("Facilities() exposes internal state")
	}
}

func TestEmergencyContactsDirectory(t *testing.T) {
	groups := EmergencyContacts()
	if len(groups) == 0 {
		t.Fatal("directory is empty")
	}
	var found bool
	for _, g := range groups {
		for _, c := range g.Contacts {
			if c.Number == "911" {
				found = true
			}
		}
	}
	if !found {
		t.Error("directory is missing 911")
	}

	groups[0].Contacts[0].Number = "mutated"
	if EmergencyContacts()[0].Contacts[0].Number == "mutated" {
		t.Error("EmergencyContacts() exposes internal state")
	}
}
