package export

import (
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/Saannndddyyyyy/best-manager/internal/sim"
)

const (
	SheetSummary   = "Summary"
	SheetDecisions = "Decisions"
	SheetCosts     = "Cost Breakdown"
)

// Build renders one submission as a three-sheet workbook: key metrics,
// the chosen decision variables, and the cost breakdown.
func Build(team string, d sim.Decision, o sim.Outcome) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(SheetDecisions); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(SheetCosts); err != nil {
		return nil, err
	}

	ref := uuid.New().String()

	summary := [][]any{
		{"Metric", "Value"},
		{"Team Name", team},
		{"Submission Ref", ref},
		{"Success Score", o.Score},
		{"Net Profit", o.Profit},
		{"Satisfaction", o.Satisfaction},
		{"Attendance", o.Attendance},
		{"Total Revenue", o.Revenue},
		{"Total Cost", o.TotalCost},
	}

	decisions := [][]any{
		{"Decision Variable", "Selected Option"},
		{"Venue", d.Venue},
		{"Catering", d.Catering},
		{"Staffing", d.Staffing},
		{"Price", d.Price},
		{"Marketing", d.Marketing},
		{"Risk", d.Risk},
	}

	costs := [][]any{
		{"Category", "Amount"},
		{"Venue Cost", o.Costs.Venue},
		{"Marketing Cost", o.Costs.Marketing},
		{"Catering Cost", o.Costs.Catering},
		{"Staff Cost", o.Costs.Staff},
	}

	for _, sheet := range []struct {
		name string
		rows [][]any
	}{
		{SheetSummary, summary},
		{SheetDecisions, decisions},
		{SheetCosts, costs},
	} {
		if err := writeRows(f, sheet.name, sheet.rows); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
