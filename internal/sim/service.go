package sim

import (
	"math"

	"go.uber.org/zap"

	"github.com/Saannndddyyyyy/best-manager/internal/catalog"
	"github.com/Saannndddyyyyy/best-manager/internal/event"
	"github.com/Saannndddyyyyy/best-manager/internal/monitoring"
)

type Service struct {
	catalog *catalog.Catalog
	bus     *event.Bus
	log     *zap.Logger
}

func NewService(cat *catalog.Catalog, bus *event.Bus, log *zap.Logger) *Service {
	return &Service{catalog: cat, bus: bus, log: log}
}

func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Evaluate enforces the numeric input boundary, runs the engine and
// fans the result out to dashboard listeners. The engine itself never
// re-validates price or marketing.
func (s *Service) Evaluate(d Decision) (Outcome, error) {
	if d.Price < 0 || math.IsNaN(d.Price) || math.IsInf(d.Price, 0) {
		return Outcome{}, ErrInvalidPrice
	}
	if d.Marketing < 0 || math.IsNaN(d.Marketing) || math.IsInf(d.Marketing, 0) {
		return Outcome{}, ErrInvalidMarketing
	}

	out, err := Evaluate(s.catalog, d)
	if err != nil {
		return Outcome{}, err
	}

	monitoring.Evaluations.Inc()

	s.log.Debug("decision evaluated",
		zap.String("venue", d.Venue),
		zap.Int("attendance", out.Attendance),
		zap.Float64("profit", out.Profit),
		zap.Float64("score", out.Score),
	)

	if s.bus != nil {
		s.bus.Publish(event.EventSimulationEvaluated, &Evaluated{Decision: d, Outcome: out})
	}

	return out, nil
}
