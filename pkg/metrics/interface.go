package metrics

// Provider define o contrato para envio de métricas.
// Isso permite trocar Datadog por outro backend sem alterar a página.
type Provider interface {
	Count(name string, value float64, tags []string) error
	Gauge(name string, value float64, tags []string) error
	Histogram(name string, value float64, tags []string) error
}

// Métricas emitidas pela página.
const (
	MetricRebuild        = "columns.rebuild"
	MetricVisibleColumns = "columns.visible"
	MetricHiddenPaths    = "columns.hidden"
	MetricRenderMillis   = "page.render_ms"
)
