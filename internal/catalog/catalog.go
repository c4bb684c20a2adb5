package catalog

import "fmt"

// Venue is one bookable venue option.
type Venue struct {
	Capacity  int     `yaml:"capacity" json:"capacity"`     // hard attendance ceiling (> 0)
	FixedCost float64 `yaml:"fixed_cost" json:"fixed_cost"` // flat hire cost, independent of attendance
	Vibe      float64 `yaml:"vibe" json:"vibe"`             // ambience rating in [0,10]
}

// Catering is one catering tier.
type Catering struct {
	UnitCost float64 `yaml:"unit_cost" json:"unit_cost"` // cost per attendee
	Quality  float64 `yaml:"quality" json:"quality"`     // food rating in [0,10]
}

// Staffing is one service level.
type Staffing struct {
	Ratio   float64 `yaml:"ratio" json:"ratio"`       // staff per 100 attendees (> 0)
	CostPer float64 `yaml:"cost_per" json:"cost_per"` // cost per staff member
}

// Risk is one external risk scenario.
type Risk struct {
	DemandMult float64 `yaml:"demand_mult" json:"demand_mult"` // multiplier on base demand (>= 0)
	SatDelta   float64 `yaml:"sat_delta" json:"sat_delta"`     // flat satisfaction adjustment
}

type VenueEntry struct {
	Label string `yaml:"label" json:"label"`
	Venue `yaml:",inline"`
}

type CateringEntry struct {
	Label    string `yaml:"label" json:"label"`
	Catering `yaml:",inline"`
}

type StaffingEntry struct {
	Label    string `yaml:"label" json:"label"`
	Staffing `yaml:",inline"`
}

type RiskEntry struct {
	Label string `yaml:"label" json:"label"`
	Risk  `yaml:",inline"`
}

// Catalog holds the reference tables the engine resolves decisions
// against. Entry order is the presentation order for UI controls and
// carries no other meaning. A catalog is built once at startup and
// never mutated, so concurrent reads need no locking.
type Catalog struct {
	Venues   []VenueEntry    `yaml:"venues" json:"venues"`
	Catering []CateringEntry `yaml:"catering" json:"catering"`
	Staffing []StaffingEntry `yaml:"staffing" json:"staffing"`
	Risks    []RiskEntry     `yaml:"risks" json:"risks"`
}

// Default returns the built-in Tech Summit catalog.
func Default() *Catalog {
	return &Catalog{
		Venues: []VenueEntry{
			{Label: "Grand Hall", Venue: Venue{Capacity: 500, FixedCost: 5000, Vibe: 8}},
			{Label: "Tech Hub", Venue: Venue{Capacity: 1000, FixedCost: 12000, Vibe: 6}},
			{Label: "City Center", Venue: Venue{Capacity: 2000, FixedCost: 25000, Vibe: 9}},
			{Label: "Open Grounds", Venue: Venue{Capacity: 5000, FixedCost: 40000, Vibe: 7}},
		},
		Catering: []CateringEntry{
			{Label: "Basic Snacks", Catering: Catering{UnitCost: 15, Quality: 2}},
			{Label: "Standard Buffet", Catering: Catering{UnitCost: 35, Quality: 6}},
			{Label: "Premium Gourmet", Catering: Catering{UnitCost: 60, Quality: 9}},
		},
		Staffing: []StaffingEntry{
			{Label: "Skeleton Crew", Staffing: Staffing{Ratio: 1, CostPer: 200}},
			{Label: "Standard", Staffing: Staffing{Ratio: 2, CostPer: 250}},
			{Label: "Premium Service", Staffing: Staffing{Ratio: 4, CostPer: 300}},
		},
		Risks: []RiskEntry{
			{Label: "None (Normal)", Risk: Risk{DemandMult: 1.0, SatDelta: 0}},
			{Label: "Heavy Rain", Risk: Risk{DemandMult: 0.7, SatDelta: -10}},
			{Label: "Competitor Event", Risk: Risk{DemandMult: 0.6, SatDelta: 0}},
			{Label: "Viral Buzz", Risk: Risk{DemandMult: 1.5, SatDelta: 5}},
		},
	}
}

func (c *Catalog) Venue(label string) (Venue, bool) {
	for _, e := range c.Venues {
		if e.Label == label {
			return e.Venue, true
		}
	}
	return Venue{}, false
}

func (c *Catalog) CateringTier(label string) (Catering, bool) {
	for _, e := range c.Catering {
		if e.Label == label {
			return e.Catering, true
		}
	}
	return Catering{}, false
}

func (c *Catalog) StaffingLevel(label string) (Staffing, bool) {
	for _, e := range c.Staffing {
		if e.Label == label {
			return e.Staffing, true
		}
	}
	return Staffing{}, false
}

func (c *Catalog) RiskScenario(label string) (Risk, bool) {
	for _, e := range c.Risks {
		if e.Label == label {
			return e.Risk, true
		}
	}
	return Risk{}, false
}

// Validate checks the table invariants the engine relies on.
func (c *Catalog) Validate() error {
	if len(c.Venues) == 0 || len(c.Catering) == 0 || len(c.Staffing) == 0 || len(c.Risks) == 0 {
		return fmt.Errorf("catalog: every table needs at least one entry")
	}
	for _, e := range c.Venues {
		if e.Capacity <= 0 {
			return fmt.Errorf("catalog: venue %q capacity must be > 0", e.Label)
		}
		if e.FixedCost < 0 {
			return fmt.Errorf("catalog: venue %q fixed cost must be >= 0", e.Label)
		}
		if e.Vibe < 0 || e.Vibe > 10 {
			return fmt.Errorf("catalog: venue %q vibe must be in [0,10]", e.Label)
		}
	}
	for _, e := range c.Catering {
		if e.UnitCost < 0 {
			return fmt.Errorf("catalog: catering %q unit cost must be >= 0", e.Label)
		}
		if e.Quality < 0 || e.Quality > 10 {
			return fmt.Errorf("catalog: catering %q quality must be in [0,10]", e.Label)
		}
	}
	for _, e := range c.Staffing {
		if e.Ratio <= 0 {
			return fmt.Errorf("catalog: staffing %q ratio must be > 0", e.Label)
		}
		if e.CostPer < 0 {
			return fmt.Errorf("catalog: staffing %q cost per staff must be >= 0", e.Label)
		}
	}
	for _, e := range c.Risks {
		if e.DemandMult < 0 {
			return fmt.Errorf("catalog: risk %q demand multiplier must be >= 0", e.Label)
		}
	}
	return nil
}
