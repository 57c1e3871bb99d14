package services

import (
	"fmt"

	"flightbooking/internal/domain"
	"flightbooking/internal/domain/models"
)

// RevenueLabel is the dataset label of every chart drawn by ChartRenderer.
const RevenueLabel = "Revenue"

// ChartTarget is a surface a chart is drawn into, e.g. a canvas on a page.
type ChartTarget interface {
	Draw(cfg models.ChartConfig) (models.ChartHandle, error)
}

// BuildChartConfig turns spec into a single-series chart configuration.
// Labels, data and any non-empty color list must have the same length.
func BuildChartConfig(spec models.ChartSpec) (models.ChartConfig, error) {
	if !spec.Kind.Valid() {
		return models.ChartConfig{}, domain.ConfigurationError{Field: "type", Msg: fmt.Sprintf("unknown chart kind %q", spec.Kind)}
	}
	if len(spec.Labels) != len(spec.Data) {
		return models.ChartConfig{}, domain.ConfigurationError{Field: "labels", Msg: fmt.Sprintf("%d labels for %d values", len(spec.Labels), len(spec.Data))}
	}
	if n := len(spec.Colors); n > 0 && n != len(spec.Data) {
		return models.ChartConfig{}, domain.ConfigurationError{Field: "colors", Msg: fmt.Sprintf("%d colors for %d values", n, len(spec.Data))}
	}
	if n := len(spec.BorderColors); n > 0 && n != len(spec.Data) {
		return models.ChartConfig{}, domain.ConfigurationError{Field: "borderColors", Msg: fmt.Sprintf("%d border colors for %d values", n, len(spec.Data))}
	}

	return models.ChartConfig{
		Type: spec.Kind,
		Data: models.ChartData{
			Labels: append([]string{}, spec.Labels...),
			Datasets: []models.ChartDataset{{
				Label:           RevenueLabel,
				Data:            append([]float64{}, spec.Data...),
				BorderWidth:     1,
				BackgroundColor: cloneStrings(spec.Colors),
				BorderColor:     cloneStrings(spec.BorderColors),
			}},
		},
		Options: models.ChartOptions{
			Scales: models.ChartScales{Y: models.ChartAxis{BeginAtZero: true}},
		},
	}, nil
}

// ChartRenderer draws revenue charts. It keeps no state between calls and never
// updates or disposes a chart previously drawn into the same target.
type ChartRenderer struct{}

// Render builds the configuration for spec and draws it into target synchronously.
func (ChartRenderer) Render(target ChartTarget, spec models.ChartSpec) (models.ChartHandle, error) {
	cfg, err := BuildChartConfig(spec)
	if err != nil {
		return models.ChartHandle{}, err
	}
	return target.Draw(cfg)
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	return append([]string(nil), in...)
}
