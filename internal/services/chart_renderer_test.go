package services

import (
	"encoding/json"
	"testing"

	"flightbooking/internal/domain"
	"flightbooking/internal/domain/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTarget struct {
	name    string
	configs []models.ChartConfig
}

func (t *recordingTarget) Draw(cfg models.ChartConfig) (models.ChartHandle, error) {
	t.configs = append(t.configs, cfg)
	return models.ChartHandle{Target: t.name, Seq: uint64(len(t.configs))}, nil
}

func TestBuildChartConfig(t *testing.T) {
	cfg, err := BuildChartConfig(models.ChartSpec{
		Labels:       []string{"Jan", "Feb"},
		Data:         []float64{10, 20},
		Kind:         models.ChartBar,
		Colors:       []string{"#f00", "#0f0"},
		BorderColors: []string{"#a00", "#0a0"},
	})
	require.NoError(t, err)

	require.Len(t, cfg.Data.Datasets, 1)
	ds := cfg.Data.Datasets[0]
	assert.Equal(t, []float64{10, 20}, ds.Data)
	assert.Equal(t, RevenueLabel, ds.Label)
	assert.Equal(t, 1, ds.BorderWidth)
	assert.Equal(t, []string{"#f00", "#0f0"}, ds.BackgroundColor)
	assert.Equal(t, []string{"#a00", "#0a0"}, ds.BorderColor)
	assert.True(t, cfg.Options.Scales.Y.BeginAtZero)
	assert.Equal(t, models.ChartBar, cfg.Type)

	raw, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type":"bar",
		"data":{"labels":["Jan","Feb"],"datasets":[{"label":"Revenue","data":[10,20],"borderWidth":1,"backgroundColor":["#f00","#0f0"],"borderColor":["#a00","#0a0"]}]},
		"options":{"scales":{"y":{"beginAtZero":true}}}
	}`, string(raw))
}

func TestBuildChartConfigDoesNotAliasInput(t *testing.T) {
	spec := models.ChartSpec{Labels: []string{"Jan"}, Data: []float64{1}, Kind: models.ChartLine}
	cfg, err := BuildChartConfig(spec)
	require.NoError(t, err)

	spec.Data[0] = 99
	spec.Labels[0] = "changed"
	assert.Equal(t, []float64{1}, cfg.Data.Datasets[0].Data)
	assert.Equal(t, []string{"Jan"}, cfg.Data.Labels)
	assert.Nil(t, cfg.Data.Datasets[0].BackgroundColor)
}

func TestBuildChartConfigPreconditions(t *testing.T) {
	tests := []struct {
		name  string
		spec  models.ChartSpec
		field string
	}{
		{name: "unknown kind", spec: models.ChartSpec{Kind: "pyramid"}, field: "type"},
		{name: "label mismatch", spec: models.ChartSpec{Kind: models.ChartBar, Labels: []string{"Jan"}, Data: []float64{1, 2}}, field: "labels"},
		{name: "color mismatch", spec: models.ChartSpec{Kind: models.ChartBar, Labels: []string{"Jan", "Feb"}, Data: []float64{1, 2}, Colors: []string{"#f00"}}, field: "colors"},
		{name: "border mismatch", spec: models.ChartSpec{Kind: models.ChartPie, Labels: []string{"Jan"}, Data: []float64{1}, BorderColors: []string{"#f00", "#0f0"}}, field: "borderColors"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildChartConfig(tt.spec)
			var cfgErr domain.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestChartRendererRender(t *testing.T) {
	spec := models.ChartSpec{
		Labels: []string{"Jan", "Feb"},
		Data:   []float64{10, 20},
		Kind:   models.ChartBar,
		Colors: []string{"#f00", "#0f0"},
	}
	a := &recordingTarget{name: "a"}
	b := &recordingTarget{name: "b"}

	var r ChartRenderer
	ha, err := r.Render(a, spec)
	require.NoError(t, err)
	hb, err := r.Render(b, spec)
	require.NoError(t, err)

	assert.NotEqual(t, ha, hb)
	require.Len(t, a.configs, 1)
	require.Len(t, b.configs, 1)
	if diff := cmp.Diff(a.configs[0], b.configs[0]); diff != "" {
		t.Fatalf("independent charts should share configuration (-a +b):\n%s", diff)
	}

	// A second draw into the same target is a new instance; nothing is disposed.
	again, err := r.Render(a, spec)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), again.Seq)
	assert.Len(t, a.configs, 2)
}

func TestChartRendererRejectsBeforeDrawing(t *testing.T) {
	target := &recordingTarget{name: "a"}
	_, err := ChartRenderer{}.Render(target, models.ChartSpec{Kind: models.ChartBar, Labels: []string{"x"}})
	assert.True(t, domain.IsConfiguration(err))
	assert.Empty(t, target.configs)
}
