package observability

import (
	"fmt"
	"io"
	"math"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/raywall/cattable/pkg/config"
	"github.com/raywall/cattable/pkg/metrics"
)

// NoopProvider descarta tudo. É o provider quando o Datadog está desligado.
type NoopProvider struct{}

func (n *NoopProvider) Count(string, float64, []string) error     { return nil }
func (n *NoopProvider) Gauge(string, float64, []string) error     { return nil }
func (n *NoopProvider) Histogram(string, float64, []string) error { return nil }

// DatadogProvider envia as métricas da página via DogStatsD.
type DatadogProvider struct {
	client statsd.ClientInterface
	rate   float64
}

// NewDatadogProvider embrulha um cliente já criado (statsd.NoOpClient nos testes).
func NewDatadogProvider(client statsd.ClientInterface) *DatadogProvider {
	return &DatadogProvider{client: client, rate: 1}
}

func (d *DatadogProvider) Count(name string, value float64, tags []string) error {
	return d.client.Count(name, int64(math.Round(value)), tags, d.rate)
}

func (d *DatadogProvider) Gauge(name string, value float64, tags []string) error {
	return d.client.Gauge(name, value, tags, d.rate)
}

func (d *DatadogProvider) Histogram(name string, value float64, tags []string) error {
	return d.client.Histogram(name, value, tags, d.rate)
}

// Close descarrega o buffer e fecha o cliente StatsD.
func (d *DatadogProvider) Close() error {
	return d.client.Close()
}

// SetupMetrics escolhe o provider pela configuração do YAML. globalTags vão
// em todas as métricas enviadas pelo cliente.
func SetupMetrics(cfg config.MetricsConf, globalTags ...string) (metrics.Provider, error) {
	if !cfg.Datadog.Enabled {
		return &NoopProvider{}, nil
	}

	opts := []statsd.Option{
		statsd.WithNamespace(cfg.Datadog.Namespace),
		statsd.WithoutTelemetry(),
	}
	if len(globalTags) > 0 {
		opts = append(opts, statsd.WithTags(globalTags))
	}

	client, err := statsd.New(cfg.Datadog.Addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no datadog statsd: %w", err)
	}

	return NewDatadogProvider(client), nil
}

// Close encerra o provider quando ele mantém conexão aberta.
func Close(p metrics.Provider) error {
	if c, ok := p.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
