package metrics

import (
	"bootwatcher/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

// Result exposes the registry and the recorder to the Fx graph
type Result struct {
	fx.Out

	Registry *prometheus.Registry
	Gatherer prometheus.Gatherer
	Recorder service.MetricsRecorder
}

// NewMetrics creates a dedicated registry with Go runtime collectors and
// the relay collector registered on it.
func NewMetrics() Result {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return Result{
		Registry: reg,
		Gatherer: reg,
		Recorder: NewCollector(reg),
	}
}
