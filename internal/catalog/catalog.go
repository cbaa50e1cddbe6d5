// Package catalog holds the built-in reference data: a fixed set of
// Medicare facilities with filterable attributes, and the emergency
// contact directory. The data ships with the binary; nothing here is
// fetched or persisted.
package catalog

// Kind classifies a facility.
type Kind string

const (
	KindHospital       Kind = "hospital"
	KindClinic         Kind = "clinic"
	KindSpecialized    Kind = "specialized_center"
	KindRehabilitation Kind = "rehabilitation_center"
)

// CareQuality grades clinical quality. The values form a ladder:
// QualityAny admits everything, QualityMedium admits medium and high,
// QualityHigh admits only high.
type CareQuality string

const (
	QualityAny    CareQuality = "any"
	QualityMedium CareQuality = "medium"
	QualityHigh   CareQuality = "high"
)

// PriceRange buckets expected out-of-pocket cost. Unlike quality it is
// matched exactly; a caller asking for "low" does not want "moderate".
type PriceRange string

const (
	PriceAny      PriceRange = "any"
	PriceLow      PriceRange = "low"
	PriceModerate PriceRange = "moderate"
	PriceHigh     PriceRange = "high"
)

// InfraGrade grades equipment and infrastructure, on the same
// exact-or-better ladder as CareQuality.
type InfraGrade string

const (
	InfraAny       InfraGrade = "any"
	InfraGood      InfraGrade = "good"
	InfraExcellent InfraGrade = "excellent"
)

var validKinds = map[Kind]bool{
	KindHospital:       true,
	KindClinic:         true,
	KindSpecialized:    true,
	KindRehabilitation: true,
}

var qualityRank = map[CareQuality]int{
	QualityAny:    0,
	QualityMedium: 1,
	QualityHigh:   2,
}

var priceValues = map[PriceRange]bool{
	PriceAny:      true,
	PriceLow:      true,
	PriceModerate: true,
	PriceHigh:     true,
}

var infraRank = map[InfraGrade]int{
	InfraAny:       0,
	InfraGood:      1,
	InfraExcellent: 2,
}

// Facility is one entry in the reference set.
type Facility struct {
	Name           string      `json:"name"`
	Kind           Kind        `json:"kind"`
	Address        string      `json:"address"`
	Phone          string      `json:"phone"`
	Services       []string    `json:"services"`
	Quality        CareQuality `json:"care_quality"`
	Price          PriceRange  `json:"price_range"`
	Infrastructure InfraGrade  `json:"infrastructure"`
}

var facilities = []Facility{
	{
		Name:           "City General Hospital",
		Kind:           KindHospital,
		Address:        "1200 Main Street",
		Phone:          "(555) 010-2400",
		Services:       []string{"emergency care", "surgery", "cardiology", "internal medicine", "radiology"},
		Quality:        QualityHigh,
		Price:          PriceModerate,
		Infrastructure: InfraExcellent,
	},
	{
		Name:           "Community Health Clinic",
		Kind:           KindClinic,
		Address:        "48 Elm Avenue",
		Phone:          "(555) 010-7310",
		Services:       []string{"primary care", "preventive care", "vaccinations", "basic diagnostics"},
		Quality:        QualityMedium,
		Price:          PriceLow,
		Infrastructure: InfraGood,
	},
	{
		Name:           "Specialized Medical Center",
		Kind:           KindSpecialized,
		Address:        "900 Research Parkway",
		Phone:          "(555) 010-5125",
		Services:       []string{"oncology", "neurology", "advanced imaging", "specialized surgery"},
		Quality:        QualityHigh,
		Price:          PriceHigh,
		Infrastructure: InfraExcellent,
	},
}

// Facilities returns a copy of the full reference set, in catalog order.
func Facilities() []Facility {
	out := make([]Facility, len(facilities))
	for i, f := range facilities {
		f.Services = append([]string(nil), f.Services...)
		out[i] = f
	}
	return out
}
