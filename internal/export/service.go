package export

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Saannndddyyyyy/best-manager/internal/event"
	"github.com/Saannndddyyyyy/best-manager/internal/monitoring"
	"github.com/Saannndddyyyyy/best-manager/internal/sim"
)

type Service struct {
	sim *sim.Service
	bus *event.Bus
	log *zap.Logger
}

func NewService(simService *sim.Service, bus *event.Bus, log *zap.Logger) *Service {
	return &Service{sim: simService, bus: bus, log: log}
}

// Submission evaluates the decision fresh and returns the workbook
// bytes plus the download filename. There is no cached outcome to
// export; a submission always reflects the current decision.
func (s *Service) Submission(team string, d sim.Decision) (string, []byte, error) {
	if team == "" {
		team = "Team Alpha"
	}

	out, err := s.sim.Evaluate(d)
	if err != nil {
		return "", nil, err
	}

	f, err := Build(team, d, out)
	if err != nil {
		return "", nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", nil, err
	}

	monitoring.Exports.Inc()

	s.log.Info("submission exported",
		zap.String("team", team),
		zap.Float64("score", out.Score),
	)

	if s.bus != nil {
		s.bus.Publish(event.EventSubmissionExported, team)
	}

	name := fmt.Sprintf("%s_Submission_%s.xlsx", team, time.Now().Format("20060102_1504"))
	return name, buf.Bytes(), nil
}
