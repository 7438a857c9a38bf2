package metrics

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Recorder envia as métricas da página sem interromper o fluxo:
// falhas do provider são apenas registradas no log.
type Recorder struct {
	provider Provider
	tags     []string
	logger   zerolog.Logger
}

// NewRecorder cria um Recorder. Provider nulo descarta tudo.
func NewRecorder(provider Provider, logger zerolog.Logger, tags ...string) *Recorder {
	return &Recorder{provider: provider, tags: tags, logger: logger}
}

// Rebuild registra uma reconstrução das colunas.
func (r *Recorder) Rebuild(visible, hidden int) {
	if r == nil || r.provider == nil {
		return
	}
	r.check(MetricRebuild, r.provider.Count(MetricRebuild, 1, r.tags))
	r.check(MetricVisibleColumns, r.provider.Gauge(MetricVisibleColumns, float64(visible), r.tags))
	r.check(MetricHiddenPaths, r.provider.Gauge(MetricHiddenPaths, float64(hidden), r.tags))
}

// Render registra a duração de uma renderização.
func (r *Recorder) Render(format string, millis float64) {
	if r == nil || r.provider == nil {
		return
	}
	tags := append(append([]string{}, r.tags...), fmt.Sprintf("format:%s", format))
	r.check(MetricRenderMillis, r.provider.Histogram(MetricRenderMillis, millis, tags))
}

func (r *Recorder) check(name string, err error) {
	if err != nil {
		r.logger.Warn().Err(err).Str("metric", name).Msg("falha ao enviar métrica")
	}
}
