package metrics

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// MockProvider para verificar chamadas
type MockProvider struct {
	Calls []string
	Last  map[string]float64
	Tags  []string
	Err   error
}

func (m *MockProvider) record(kind, name string, val float64, tags []string) error {
	if m.Last == nil {
		m.Last = map[string]float64{}
	}
	m.Calls = append(m.Calls, kind+":"+name)
	m.Last[name] = val
	m.Tags = tags
	return m.Err
}

func (m *MockProvider) Count(name string, val float64, tags []string) error {
	return m.record("count", name, val, tags)
}
func (m *MockProvider) Gauge(name string, val float64, tags []string) error {
	return m.record("gauge", name, val, tags)
}
func (m *MockProvider) Histogram(name string, val float64, tags []string) error {
	return m.record("histogram", name, val, tags)
}

func TestRecorder_Rebuild(t *testing.T) {
	provider := &MockProvider{}
	rec := NewRecorder(provider, zerolog.Nop(), "page:cats")

	rec.Rebuild(2, 1)

	assert.Equal(t, []string{
		"count:" + MetricRebuild,
		"gauge:" + MetricVisibleColumns,
		"gauge:" + MetricHiddenPaths,
	}, provider.Calls)
	assert.Equal(t, 2.0, provider.Last[MetricVisibleColumns])
	assert.Equal(t, 1.0, provider.Last[MetricHiddenPaths])
	assert.Equal(t, []string{"page:cats"}, provider.Tags)
}

func TestRecorder_Render(t *testing.T) {
	provider := &MockProvider{}
	rec := NewRecorder(provider, zerolog.Nop(), "page:cats")

	rec.Render("html", 3)

	assert.Equal(t, []string{"histogram:" + MetricRenderMillis}, provider.Calls)
	assert.Equal(t, []string{"page:cats", "format:html"}, provider.Tags)
}

func TestRecorder_Tolerante(t *testing.T) {
	t.Run("Erro do provider não propaga", func(t *testing.T) {
		rec := NewRecorder(&MockProvider{Err: errors.New("udp fechado")}, zerolog.Nop())
		assert.NotPanics(t, func() { rec.Rebuild(1, 0) })
	})

	t.Run("Recorder ou provider nulos", func(t *testing.T) {
		var nilRec *Recorder
		assert.NotPanics(t, func() { nilRec.Rebuild(1, 0) })
		assert.NotPanics(t, func() { NewRecorder(nil, zerolog.Nop()).Render("text", 1) })
	})
}
