// Package fixture produces the deterministic mock dataset served while
// no persistence layer is wired.  The plot grid stands in for a real
// database query; its shape and status assignments are a fixed contract
// relied on by the frontend and by tests, so the constants below must
// not be generalized or re-derived.
package fixture

import (
	"strconv"
	"time"

	"github.com/plotvista/plotvista/internal/model"
)

const (
	gridRows = 18
	gridCols = 20

	// LayoutID is the single layout all mock plots belong to.
	LayoutID = 1
	// LayoutName is the synthetic layout served by the layouts API.
	LayoutName = "Ruby Sizzle Heritage"
	// LayoutTotalArea is quoted as free text, matching marketing copy.
	LayoutTotalArea = "22 acres"
)

// statusOverrides maps plot numbers to a fixed status; every other plot
// defaults to available.  Membership is part of the mock-data contract.
var statusOverrides = map[string]model.PlotStatus{
	// registration
	"10": model.PlotRegistration, "25": model.PlotRegistration,
	"67": model.PlotRegistration, "123": model.PlotRegistration,
	"234": model.PlotRegistration, "345": model.PlotRegistration,
	// agreement
	"15": model.PlotAgreement, "30": model.PlotAgreement,
	"45": model.PlotAgreement, "89": model.PlotAgreement,
	"156": model.PlotAgreement, "267": model.PlotAgreement,
	// booked
	"5": model.PlotBooked, "20": model.PlotBooked,
	"35": model.PlotBooked, "50": model.PlotBooked,
	"78": model.PlotBooked, "99": model.PlotBooked,
	"111": model.PlotBooked, "222": model.PlotBooked,
}

// Plots generates the 18×20 mock grid: 360 plots numbered row-major
// from 1, dimension alternating by parity of row+col ("30×40"/1200 on
// even, "30×50"/1500 on odd), status available unless overridden.
func Plots() []model.Plot {
	now := time.Now().UTC()
	plots := make([]model.Plot, 0, gridRows*gridCols)
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			id := row*gridCols + col + 1
			number := strconv.Itoa(id)

			dimension := "30×40"
			area := 1200.0
			if (row+col)%2 != 0 {
				dimension = "30×50"
				area = 1500.0
			}

			status := model.PlotAvailable
			if s, ok := statusOverrides[number]; ok {
				status = s
			}

			plots = append(plots, model.Plot{
				ID:         id,
				PlotNumber: number,
				Dimension:  dimension,
				Area:       area,
				Status:     status,
				Row:        row,
				Col:        col,
				LayoutID:   LayoutID,
				CreatedAt:  now,
			})
		}
	}
	return plots
}

// Layout returns the synthetic layout with the full plot grid embedded.
func Layout() model.Layout {
	plots := Plots()
	return model.Layout{
		ID:         LayoutID,
		Name:       LayoutName,
		TotalArea:  LayoutTotalArea,
		TotalPlots: len(plots),
		Plots:      plots,
		CreatedAt:  time.Now().UTC(),
	}
}

// Plot returns the synthetic single-plot record served by GET /plots/:id.
// It does not consult the grid overrides; lookups outside the grid are
// answered with the same default shape.
func Plot(id int) model.Plot {
	return model.Plot{
		ID:         id,
		PlotNumber: strconv.Itoa(id),
		Dimension:  "30×40",
		Area:       1200,
		Status:     model.PlotAvailable,
		Row:        0,
		Col:        0,
		LayoutID:   LayoutID,
		CreatedAt:  time.Now().UTC(),
	}
}

// ManagerUser returns the single seeded manager principal.
func ManagerUser() model.User {
	return model.User{
		ID:        1,
		Username:  "manager",
		Email:     "manager@plotvista.com",
		FullName:  "Plot Manager",
		Role:      model.RoleManager,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
}
