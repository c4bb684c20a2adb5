package sim

import (
	"fmt"
	"math"

	"github.com/Saannndddyyyyy/best-manager/internal/catalog"
)

// Demand model: 2000 - 3.5*price + 0.04*marketing + 10*sqrt(marketing).
// Price pushes demand down linearly, marketing pushes it up with
// diminishing returns through the sqrt term.
const (
	demandBase          = 2000.0
	demandPriceSlope    = 3.5
	demandMarketingRate = 0.04
	demandMarketingDim  = 10.0

	crowdingThreshold = 0.9
	crowdingPenalty   = 15.0

	satWeightVibe    = 3.3
	satWeightQuality = 3.3
	satWeightStaff   = 8.0

	// Profit worth the full 50 score points. Profit past this keeps
	// adding linearly; the composite score is deliberately not capped
	// at 100.
	scoreProfitRef = 200000.0
)

// Evaluate maps one decision to its outcome against the given catalog.
// It is a pure function: no state, no side effects, safe for
// concurrent callers. Labels must resolve or it fails with
// ErrInvalidSelection; numeric bounds on price and marketing are the
// caller's responsibility (see Service.Evaluate).
func Evaluate(cat *catalog.Catalog, d Decision) (Outcome, error) {
	venue, ok := cat.Venue(d.Venue)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: venue %q", ErrInvalidSelection, d.Venue)
	}
	cater, ok := cat.CateringTier(d.Catering)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: catering %q", ErrInvalidSelection, d.Catering)
	}
	staff, ok := cat.StaffingLevel(d.Staffing)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: staffing %q", ErrInvalidSelection, d.Staffing)
	}
	risk, ok := cat.RiskScenario(d.Risk)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: risk %q", ErrInvalidSelection, d.Risk)
	}

	baseDemand := math.Max(0, demandBase-demandPriceSlope*d.Price+
		demandMarketingRate*d.Marketing+demandMarketingDim*math.Sqrt(d.Marketing))
	riskDemand := baseDemand * risk.DemandMult

	// Capacity is a hard ceiling; truncation toward zero, not rounding.
	attendance := int(math.Min(riskDemand, float64(venue.Capacity)))

	revenue := float64(attendance) * d.Price

	costs := CostBreakdown{
		Venue:     venue.FixedCost,
		Marketing: d.Marketing, // spent in full even when demand saturates capacity
		Catering:  float64(attendance) * cater.UnitCost,
	}
	// Staff come in blocks of 100 attendees; a partial block still
	// needs the full increment.
	staffCount := math.Ceil(float64(attendance) / 100 * staff.Ratio)
	costs.Staff = staffCount * staff.CostPer

	totalCost := costs.Venue + costs.Marketing + costs.Catering + costs.Staff
	profit := revenue - totalCost

	crowding := 0.0
	if venue.Capacity > 0 {
		crowding = float64(attendance) / float64(venue.Capacity)
	}
	penalty := 0.0
	if crowding > crowdingThreshold {
		penalty = crowdingPenalty
	}

	sat := venue.Vibe*satWeightVibe + cater.Quality*satWeightQuality + staff.Ratio*satWeightStaff
	sat = sat - penalty + risk.SatDelta
	sat = math.Min(100, math.Max(0, sat))

	// Negative profit contributes zero, never subtracts. The total is
	// left unclamped above 100 on purpose.
	score := math.Max(0, profit)/scoreProfitRef*50 + sat*0.5

	return Outcome{
		Attendance:      attendance,
		Revenue:         revenue,
		TotalCost:       totalCost,
		Profit:          profit,
		Satisfaction:    sat,
		Score:           score,
		CrowdingPercent: crowding * 100,
		Costs:           costs,
	}, nil
}
