package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsEmpty(t *testing.T) {
	var s Statistics
	assert.Equal(t, 0.0, s.Mean())
	assert.Equal(t, 0.0, s.BankruptcyRate())
	assert.Equal(t, 0.0, s.Median())
	assert.Equal(t, 0.0, s.Percentile(0.5))
	assert.Equal(t, 0.0, s.StdError())
	require.Error(t, s.Validate())
}

func TestStatisticsAdd(t *testing.T) {
	var s Statistics
	s.Add(SessionResult{Seed: 1, EV: -0.02, FinalBankroll: 480})
	s.Add(SessionResult{Seed: 2, EV: 0.10, FinalBankroll: 600})
	s.Add(SessionResult{Seed: 3, EV: -1.0, FinalBankroll: 0, Bankrupt: true})
	s.Add(SessionResult{Seed: 4, EV: 0.04, FinalBankroll: 540})

	require.NoError(t, s.Validate())
	assert.Equal(t, 4, s.Sessions)
	assert.Equal(t, 1, s.Bankruptcies)
	assert.Equal(t, 0.25, s.BankruptcyRate())
	assert.InDelta(t, -0.22, s.Mean(), 1e-9)
	assert.InDelta(t, 22.0, s.HouseEdge(), 1e-9)
	assert.InDelta(t, 405.0, s.MeanFinalBankroll(), 1e-9)
	assert.InDelta(t, 0.01, s.Median(), 1e-9)
}

func TestStatisticsVariance(t *testing.T) {
	var s Statistics
	for _, ev := range []float64{-1, 0, 1} {
		s.Add(SessionResult{EV: ev})
	}

	assert.InDelta(t, 1.0, s.Variance(), 1e-9)
	assert.InDelta(t, 1.0, s.StdDev(), 1e-9)

	low, high := s.ConfidenceInterval95()
	assert.Less(t, low, s.Mean())
	assert.Greater(t, high, s.Mean())
}

func TestStatisticsVarianceNeedsTwoSessions(t *testing.T) {
	var s Statistics
	s.Add(SessionResult{EV: 0.5})
	assert.Equal(t, 0.0, s.Variance())
}

func TestStatisticsMedian(t *testing.T) {
	var s Statistics
	for _, ev := range []float64{0.3, -0.1, 0.2} {
		s.Add(SessionResult{EV: ev})
	}
	assert.InDelta(t, 0.2, s.Median(), 1e-9)

	s.Add(SessionResult{EV: 0.4})
	assert.InDelta(t, 0.25, s.Median(), 1e-9)
}

func TestStatisticsPercentile(t *testing.T) {
	var s Statistics
	for i := 1; i <= 5; i++ {
		s.Add(SessionResult{EV: float64(i)})
	}

	assert.InDelta(t, 1.0, s.Percentile(0), 1e-9)
	assert.InDelta(t, 3.0, s.Percentile(0.5), 1e-9)
	assert.InDelta(t, 5.0, s.Percentile(1.0), 1e-9)
	assert.InDelta(t, 2.0, s.Percentile(0.25), 1e-9)
}

func TestStatisticsValidate(t *testing.T) {
	s := Statistics{Sessions: 2, Values: []float64{0.1}}
	require.Error(t, s.Validate())

	s = Statistics{Sessions: 1, Values: []float64{0.1}, Bankruptcies: 2}
	require.Error(t, s.Validate())
}
