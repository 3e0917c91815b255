package station

import (
	"context"

	"github.com/signalsfoundry/orbitron-station/internal/logging"
	"github.com/signalsfoundry/orbitron-station/model"
)

// ResearchLab keeps an append-only, ordered record of sample identifiers.
type ResearchLab struct {
	baseModule

	samples []string
}

func newResearchLab(e *env) *ResearchLab {
	return &ResearchLab{baseModule: newBaseModule(model.ModuleResearchLab, e)}
}

// AddSample appends id as given. Duplicates and empty identifiers are kept.
func (r *ResearchLab) AddSample(ctx context.Context, id string) {
	r.samples = append(r.samples, id)
	r.env.console.Printf("New research sample added: %s", id)
	r.env.metrics.SetResearchSamples(len(r.samples))
	r.env.log.Debug(ctx, "research sample added",
		logging.String("sample", id),
		logging.Int("total", len(r.samples)),
	)
}

// Samples returns a copy of the recorded identifiers in insertion order.
func (r *ResearchLab) Samples() []string {
	return append([]string(nil), r.samples...)
}
