package market

import "math/rand"

// Sample is one illustrative historical observation for the analytics
// charts. Display-only; the engine never reads this data.
type Sample struct {
	Price      float64 `json:"price"`
	Marketing  float64 `json:"marketing"`
	Attendance float64 `json:"attendance"`
}

type History struct {
	samples []Sample
}

// Generate produces a fixed pseudo-historical dataset: prices in
// [100,500), marketing in [5000,50000), attendance from the demand
// model plus gaussian noise. A fixed seed keeps the charts stable
// across restarts.
func Generate(seed int64, n int) *History {
	rng := rand.New(rand.NewSource(seed))

	samples := make([]Sample, n)
	for i := range samples {
		price := 100 + rng.Float64()*400
		marketing := 5000 + rng.Float64()*45000
		attendance := 2000 - 3.5*price + 0.04*marketing + rng.NormFloat64()*50

		samples[i] = Sample{
			Price:      price,
			Marketing:  marketing,
			Attendance: attendance,
		}
	}

	return &History{samples: samples}
}

func (h *History) Samples() []Sample {
	return h.samples
}
