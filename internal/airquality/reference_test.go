package airquality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breatheroute/airreport/internal/airquality"
)

func TestPollutants_DeclaredOrder(t *testing.T) {
	assert.Equal(t, []airquality.Pollutant{
		airquality.PollutantPM25,
		airquality.PollutantPM10,
		airquality.PollutantNO2,
		airquality.PollutantCO,
		airquality.PollutantO3,
		airquality.PollutantSO2,
		airquality.PollutantNH3,
	}, airquality.Pollutants())
}

func TestPollutants_ReturnsCopy(t *testing.T) {
	p := airquality.Pollutants()
	p[0] = "changed"
	assert.Equal(t, airquality.PollutantPM25, airquality.Pollutants()[0])
}

func TestValidateReference(t *testing.T) {
	require.NoError(t, airquality.ValidateReference())
}

func TestLookup(t *testing.T) {
	ref, ok := airquality.Lookup(airquality.PollutantPM25)
	require.True(t, ok)
	assert.Equal(t, 15.0, ref.Ideal)
	assert.Equal(t, "Particulate Matter ≤ 2.5µm (PM2.5)", ref.Name)
	assert.Equal(t, "Lung/eye irritation, cancer risk, asthma trigger", ref.HealthEffect)

	_, ok = airquality.Lookup("no")
	assert.False(t, ok)
}

func TestReferences_IdealValues(t *testing.T) {
	want := map[airquality.Pollutant]float64{
		airquality.PollutantPM25: 15,
		airquality.PollutantPM10: 50,
		airquality.PollutantNO2:  40,
		airquality.PollutantCO:   4400,
		airquality.PollutantO3:   100,
		airquality.PollutantSO2:  20,
		airquality.PollutantNH3:  25,
	}

	refs := airquality.References()
	require.Len(t, refs, len(want))
	for _, ref := range refs {
		assert.Equal(t, want[ref.Pollutant], ref.Ideal, ref.Pollutant)
		assert.NotEmpty(t, ref.Name)
		assert.NotEmpty(t, ref.HealthEffect)
	}
}

func TestCategoryInfo(t *testing.T) {
	tests := []struct {
		level int
		label string
		rng   string
	}{
		{1, "Good", "0–50"},
		{2, "Fair", "51–100"},
		{3, "Moderate", "101–150"},
		{4, "Poor", "151–200"},
		{5, "Very Poor", "201–300+"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			c, ok := airquality.CategoryInfo(tt.level)
			require.True(t, ok)
			assert.Equal(t, tt.level, c.Level)
			assert.Equal(t, tt.label, c.Label)
			assert.Equal(t, tt.rng, c.Range)
			assert.NotEmpty(t, c.Description)
			assert.NotEmpty(t, c.HealthInfo)
		})
	}
}

func TestCategoryInfo_OutOfRange(t *testing.T) {
	for _, level := range []int{-1, 0, 6, 100} {
		_, ok := airquality.CategoryInfo(level)
		assert.False(t, ok, "level %d", level)
		assert.Equal(t, airquality.UnknownLevel, airquality.LevelLabel(level))
	}
}

func TestLevelLabel(t *testing.T) {
	assert.Equal(t, "Good 😊", airquality.LevelLabel(1))
	assert.Equal(t, "Moderate 😐", airquality.LevelLabel(3))
	assert.Equal(t, "Very Poor 😱", airquality.LevelLabel(5))
}

func TestCategories_Ascending(t *testing.T) {
	cats := airquality.Categories()
	require.Len(t, cats, 5)
	for i, c := range cats {
		assert.Equal(t, i+1, c.Level)
	}
}
