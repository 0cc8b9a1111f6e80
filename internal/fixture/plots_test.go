package fixture_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotvista/plotvista/internal/fixture"
	"github.com/plotvista/plotvista/internal/model"
)

func TestPlotsGridContract(t *testing.T) {
	plots := fixture.Plots()
	require.Len(t, plots, 360)

	overrides := map[string]model.PlotStatus{
		"10": model.PlotRegistration, "25": model.PlotRegistration,
		"67": model.PlotRegistration, "123": model.PlotRegistration,
		"234": model.PlotRegistration, "345": model.PlotRegistration,
		"15": model.PlotAgreement, "30": model.PlotAgreement,
		"45": model.PlotAgreement, "89": model.PlotAgreement,
		"156": model.PlotAgreement, "267": model.PlotAgreement,
		"5": model.PlotBooked, "20": model.PlotBooked,
		"35": model.PlotBooked, "50": model.PlotBooked,
		"78": model.PlotBooked, "99": model.PlotBooked,
		"111": model.PlotBooked, "222": model.PlotBooked,
	}

	seen := make(map[[2]int]bool, 360)
	for i, p := range plots {
		wantID := p.Row*20 + p.Col + 1
		assert.Equal(t, wantID, p.ID)
		assert.Equal(t, strconv.Itoa(wantID), p.PlotNumber)
		assert.Equal(t, 1, p.LayoutID)
		assert.Nil(t, p.UpdatedAt)

		if (p.Row+p.Col)%2 == 0 {
			assert.Equal(t, "30×40", p.Dimension, "plot %s", p.PlotNumber)
			assert.Equal(t, 1200.0, p.Area)
		} else {
			assert.Equal(t, "30×50", p.Dimension, "plot %s", p.PlotNumber)
			assert.Equal(t, 1500.0, p.Area)
		}

		want := model.PlotAvailable
		if s, ok := overrides[p.PlotNumber]; ok {
			want = s
		}
		assert.Equal(t, want, p.Status, "plot %s", p.PlotNumber)

		// Row-major ordering and grid position uniqueness.
		assert.Equal(t, i+1, wantID)
		pos := [2]int{p.Row, p.Col}
		assert.False(t, seen[pos], "duplicate position %v", pos)
		seen[pos] = true
	}
}

func TestPlotsDeterministic(t *testing.T) {
	a := fixture.Plots()
	b := fixture.Plots()
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Status, b[i].Status)
		assert.Equal(t, a[i].Dimension, b[i].Dimension)
	}
}

func TestLayoutFixture(t *testing.T) {
	l := fixture.Layout()
	assert.Equal(t, 1, l.ID)
	assert.Equal(t, "Ruby Sizzle Heritage", l.Name)
	assert.Equal(t, "22 acres", l.TotalArea)
	assert.Equal(t, 360, l.TotalPlots)
	assert.Len(t, l.Plots, 360)
}

func TestPlotFixture(t *testing.T) {
	p := fixture.Plot(42)
	assert.Equal(t, 42, p.ID)
	assert.Equal(t, "42", p.PlotNumber)
	assert.Equal(t, "30×40", p.Dimension)
	assert.Equal(t, 1200.0, p.Area)
	assert.Equal(t, model.PlotAvailable, p.Status)
	assert.Equal(t, 0, p.Row)
	assert.Equal(t, 0, p.Col)
}

func TestManagerUserFixture(t *testing.T) {
	u := fixture.ManagerUser()
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, "manager", u.Username)
	assert.Equal(t, model.RoleManager, u.Role)
	assert.True(t, u.IsActive)
	assert.Empty(t, u.HashedPassword)
}
