// Package taxonomy holds the fixed registry of waste categories and their
// escalation policy. The set of keys is closed: classifier output outside it
// is rejected, never remapped.
package taxonomy

import "strings"

// Category describes a single waste category.
type Category struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	RequiresReport       bool     `json:"requiresReport"`
	DisposalInstructions []string `json:"disposalInstructions"`
	RecyclingOptions     []string `json:"recyclingOptions"`
	Tips                 []string `json:"tips"`
}

// Keys of the registry, in display order.
var order = []string{
	"organic",
	"recyclable",
	"non-recyclable",
	"e-waste",
	"hazardous",
	"medical",
	"construction",
}

var categories = map[string]Category{
	"organic": {
		ID:             "organic",
		Name:           "Organic Waste",
		Description:    "Biodegradable waste from plants and animals",
		RequiresReport: false,
		DisposalInstructions: []string{
			"Separate from other waste types",
			"Use green/brown bins designated for organic waste",
			"Can be composted at home or community centers",
			"Avoid mixing with plastic bags",
		},
		RecyclingOptions: []string{
			"Home composting",
			"Community composting programs",
			"Biogas production facilities",
			"Municipal green waste collection",
		},
		Tips: []string{
			"Keep a small compost bin in your kitchen",
			"Layer green and brown materials for best composting",
			"Avoid meat and dairy in home compost",
		},
	},
	"recyclable": {
		ID:             "recyclable",
		Name:           "Recyclable",
		Description:    "Materials that can be processed and reused",
		RequiresReport: false,
		DisposalInstructions: []string{
			"Clean containers before recycling",
			"Remove caps and labels when possible",
			"Flatten cardboard boxes",
			"Use blue recycling bins",
		},
		RecyclingOptions: []string{
			"Curbside recycling pickup",
			"Drop-off recycling centers",
			"Bottle deposit programs",
			"Scrap metal recyclers",
		},
		Tips: []string{
			"Check local guidelines for accepted materials",
			"Rinse food containers to prevent contamination",
			"Avoid 'wish-cycling' - when in doubt, find out",
		},
	},
	"non-recyclable": {
		ID:             "non-recyclable",
		Name:           "Non-Recyclable",
		Description:    "General waste that cannot be recycled",
		RequiresReport: false,
		DisposalInstructions: []string{
			"Place in general waste/black bin",
			"Ensure waste is bagged properly",
			"Do not mix with recyclables",
			"Check if any components can be recycled",
		},
		RecyclingOptions: []string{
			"Energy-from-waste facilities",
			"Sanitary landfill disposal",
			"Some items may have specialty recyclers",
		},
		Tips: []string{
			"Try to reduce non-recyclable purchases",
			"Look for recyclable alternatives",
			"Consider product lifecycle before buying",
		},
	},
	"e-waste": {
		ID:             "e-waste",
		Name:           "E-Waste",
		Description:    "Electronic devices and components",
		RequiresReport: false,
		DisposalInstructions: []string{
			"Never dispose in regular trash",
			"Remove batteries if possible",
			"Delete personal data from devices",
			"Take to certified e-waste collection points",
		},
		RecyclingOptions: []string{
			"Manufacturer take-back programs",
			"Certified e-waste recyclers",
			"Retail store drop-off programs",
			"Municipal e-waste collection events",
		},
		Tips: []string{
			"Consider donating working electronics",
			"Many retailers offer trade-in programs",
			"E-waste contains valuable recoverable materials",
		},
	},
	"hazardous": {
		ID:             "hazardous",
		Name:           "Hazardous Waste",
		Description:    "Toxic, flammable, or chemically dangerous materials",
		RequiresReport: true,
		DisposalInstructions: []string{
			"DO NOT dispose in regular trash",
			"Keep in original containers when possible",
			"Store safely away from heat and children",
			"Contact local authorities for pickup",
		},
		RecyclingOptions: []string{
			"Household hazardous waste facilities",
			"Municipal collection events",
			"Authorized disposal contractors",
		},
		Tips: []string{
			"Never pour chemicals down drains",
			"Keep materials in ventilated areas",
			"Wear protective gear when handling",
		},
	},
	"medical": {
		ID:             "medical",
		Name:           "Medical Waste",
		Description:    "Healthcare-related waste including sharps and biohazards",
		RequiresReport: true,
		DisposalInstructions: []string{
			"Use approved sharps containers",
			"Seal all biohazard bags properly",
			"Never flush medications",
			"Request professional pickup",
		},
		RecyclingOptions: []string{
			"Hospital take-back programs",
			"Pharmacy disposal programs",
			"Medical waste disposal services",
		},
		Tips: []string{
			"FDA-cleared sharps containers are safest",
			"Many pharmacies accept unused medications",
			"Never recap needles - use sharps container",
		},
	},
	"construction": {
		ID:             "construction",
		Name:           "Construction Waste",
		Description:    "Building materials, debris, and demolition waste",
		RequiresReport: true,
		DisposalInstructions: []string{
			"Separate materials by type",
			"Large quantities require special pickup",
			"Some materials may contain asbestos",
			"Contact municipal construction waste services",
		},
		RecyclingOptions: []string{
			"Construction material recyclers",
			"Concrete and aggregate recycling",
			"Metal scrap recyclers",
			"Wood waste processors",
		},
		Tips: []string{
			"Many materials can be reused or donated",
			"Habitat for Humanity accepts building materials",
			"Sort materials on-site for easier recycling",
		},
	},
}

// Lookup resolves a category key, case-folded. The second return value is
// false for any key outside the registry; callers must not substitute a
// default on a miss.
func Lookup(key string) (Category, bool) {
	cat, ok := categories[strings.ToLower(strings.TrimSpace(key))]
	return cat, ok
}

// RequiresReport reports whether items of the given category must be
// escalated into a pickup report. Unknown keys never require escalation.
func RequiresReport(key string) bool {
	cat, ok := Lookup(key)
	return ok && cat.RequiresReport
}

// All returns the registry in display order.
func All() []Category {
	out := make([]Category, 0, len(order))
	for _, k := range order {
		out = append(out, categories[k])
	}
	return out
}
