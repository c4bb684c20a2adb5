package sim

// Decision is one set of operational choices for the summit.
type Decision struct {
	Venue     string  `json:"venue"`
	Catering  string  `json:"catering"`
	Staffing  string  `json:"staffing"`
	Risk      string  `json:"risk"`
	Price     float64 `json:"price"`
	Marketing float64 `json:"marketing"`
}

// CostBreakdown itemizes the four cost lines behind TotalCost.
type CostBreakdown struct {
	Venue     float64 `json:"venue"`
	Marketing float64 `json:"marketing"`
	Catering  float64 `json:"catering"`
	Staff     float64 `json:"staff"`
}

// Outcome is everything the dashboard renders for one decision. It is
// recomputed from scratch on every evaluation; nothing is cached.
type Outcome struct {
	Attendance      int           `json:"attendance"`
	Revenue         float64       `json:"revenue"`
	TotalCost       float64       `json:"total_cost"`
	Profit          float64       `json:"profit"`
	Satisfaction    float64       `json:"satisfaction"`
	Score           float64       `json:"score"`
	CrowdingPercent float64       `json:"crowding_percent"`
	Costs           CostBreakdown `json:"costs"`
}

// Evaluated is the event payload broadcast to dashboard clients.
type Evaluated struct {
	Decision Decision `json:"decision"`
	Outcome  Outcome  `json:"outcome"`
}
