package service

import "github.com/prometheus/client_golang/prometheus"

// MatchMetrics counts rows handed out by the matching use cases.
type MatchMetrics struct {
	rowsReturned *prometheus.CounterVec
}

// NewMatchMetrics registers the matching counters on reg.
func NewMatchMetrics(reg prometheus.Registerer) (*MatchMetrics, error) {
	m := &MatchMetrics{
		rowsReturned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "freight_match_rows_returned",
				Help: "Matching freight searches returned, by delivery mode.",
			},
			[]string{"mode"},
		),
	}
	if err := reg.Register(m.rowsReturned); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MatchMetrics) add(mode string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.rowsReturned.WithLabelValues(mode).Add(float64(n))
}
