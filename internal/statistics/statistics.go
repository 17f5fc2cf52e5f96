package statistics

import (
	"fmt"
	"math"
	"sort"
)

// SessionResult represents the outcome of a single simulated session.
type SessionResult struct {
	Seed          int64   // RNG seed for this session (for replay)
	EV            float64 // Net bankroll change divided by total wagered
	FinalBankroll float64 // Bankroll at session end
	Bankrupt      bool    // Session ended with nothing left
}

// Statistics aggregates simulation results across sessions.
type Statistics struct {
	Sessions int
	SumEV    float64
	SumEV2   float64   // Sum of squares for variance calculation
	Values   []float64 // All EVs, for median/percentile calculation

	Bankruptcies int
	SumFinal     float64 // Sum of final bankrolls
}

// Add incorporates a session result.
func (s *Statistics) Add(result SessionResult) {
	ev := result.EV
	s.Sessions++
	s.SumEV += ev
	s.SumEV2 += ev * ev
	s.Values = append(s.Values, ev)
	s.SumFinal += result.FinalBankroll
	if result.Bankrupt {
		s.Bankruptcies++
	}
}

// Mean returns the arithmetic mean EV per session.
func (s *Statistics) Mean() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return s.SumEV / float64(s.Sessions)
}

// HouseEdge returns the mean EV expressed as a house edge percentage.
func (s *Statistics) HouseEdge() float64 {
	return -100.0 * s.Mean()
}

// BankruptcyRate returns the fraction of sessions that ended bankrupt.
func (s *Statistics) BankruptcyRate() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return float64(s.Bankruptcies) / float64(s.Sessions)
}

// MeanFinalBankroll returns the average bankroll at session end.
func (s *Statistics) MeanFinalBankroll() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return s.SumFinal / float64(s.Sessions)
}

// Variance returns the sample variance of session EVs.
func (s *Statistics) Variance() float64 {
	if s.Sessions < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumEV2 - float64(s.Sessions)*mean*mean) / float64(s.Sessions-1)
}

// StdDev returns the sample standard deviation of session EVs.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean EV.
func (s *Statistics) StdError() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Sessions))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean EV.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median session EV.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the session EV at the given percentile (0.0 to 1.0).
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks the aggregate for internal consistency.
func (s *Statistics) Validate() error {
	if s.Sessions <= 0 {
		return fmt.Errorf("invalid session count: %d", s.Sessions)
	}
	if len(s.Values) != s.Sessions {
		return fmt.Errorf("values length (%d) does not match session count (%d)",
			len(s.Values), s.Sessions)
	}
	if s.Bankruptcies > s.Sessions {
		return fmt.Errorf("bankruptcies (%d) exceed sessions (%d)", s.Bankruptcies, s.Sessions)
	}
	return nil
}
