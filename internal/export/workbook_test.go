package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Saannndddyyyyy/best-manager/internal/catalog"
	"github.com/Saannndddyyyyy/best-manager/internal/event"
	"github.com/Saannndddyyyyy/best-manager/internal/sim"
)

func sampleDecision() sim.Decision {
	return sim.Decision{
		Venue:     "City Center",
		Catering:  "Standard Buffet",
		Staffing:  "Standard",
		Risk:      "None (Normal)",
		Price:     250,
		Marketing: 20000,
	}
}

func TestBuild_SheetLayout(t *testing.T) {
	d := sampleDecision()
	out, err := sim.Evaluate(catalog.Default(), d)
	require.NoError(t, err)

	f, err := Build("Team Alpha", d, out)
	require.NoError(t, err)

	assert.Equal(t, []string{SheetSummary, SheetDecisions, SheetCosts}, f.GetSheetList())

	cell := func(sheet, ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return v
	}

	// Summary: metric/value pairs with the team first.
	assert.Equal(t, "Metric", cell(SheetSummary, "A1"))
	assert.Equal(t, "Team Name", cell(SheetSummary, "A2"))
	assert.Equal(t, "Team Alpha", cell(SheetSummary, "B2"))
	assert.Equal(t, "Submission Ref", cell(SheetSummary, "A3"))
	assert.NotEmpty(t, cell(SheetSummary, "B3"))
	assert.Equal(t, "Net Profit", cell(SheetSummary, "A5"))
	assert.Equal(t, "375000", cell(SheetSummary, "B5"))
	assert.Equal(t, "Attendance", cell(SheetSummary, "A7"))
	assert.Equal(t, "2000", cell(SheetSummary, "B7"))

	// Decisions: one row per decision variable, original order.
	assert.Equal(t, "Venue", cell(SheetDecisions, "A2"))
	assert.Equal(t, "City Center", cell(SheetDecisions, "B2"))
	assert.Equal(t, "Risk", cell(SheetDecisions, "A7"))
	assert.Equal(t, "None (Normal)", cell(SheetDecisions, "B7"))

	// Cost breakdown: all four categories.
	assert.Equal(t, "Venue Cost", cell(SheetCosts, "A2"))
	assert.Equal(t, "25000", cell(SheetCosts, "B2"))
	assert.Equal(t, "Staff Cost", cell(SheetCosts, "A5"))
	assert.Equal(t, "10000", cell(SheetCosts, "B5"))
}

func TestSubmission(t *testing.T) {
	simService := sim.NewService(catalog.Default(), event.NewBus(), zap.NewNop())
	s := NewService(simService, event.NewBus(), zap.NewNop())

	name, data, err := s.Submission("Team Alpha", sampleDecision())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(name, "Team Alpha_Submission_"))
	assert.True(t, strings.HasSuffix(name, ".xlsx"))
	require.NotEmpty(t, data)

	// The payload must be a readable workbook.
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []string{SheetSummary, SheetDecisions, SheetCosts}, f.GetSheetList())
}

func TestSubmission_DefaultTeamName(t *testing.T) {
	simService := sim.NewService(catalog.Default(), event.NewBus(), zap.NewNop())
	s := NewService(simService, event.NewBus(), zap.NewNop())

	name, _, err := s.Submission("", sampleDecision())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "Team Alpha_Submission_"))
}

func TestSubmission_InvalidDecision(t *testing.T) {
	simService := sim.NewService(catalog.Default(), event.NewBus(), zap.NewNop())
	s := NewService(simService, event.NewBus(), zap.NewNop())

	d := sampleDecision()
	d.Staffing = "Robots"
	_, _, err := s.Submission("Team Alpha", d)
	assert.ErrorIs(t, err, sim.ErrInvalidSelection)
}
