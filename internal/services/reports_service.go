package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"flightbooking/internal/domain"
	"flightbooking/internal/domain/models"
	"flightbooking/internal/repositories"
	"flightbooking/internal/utils"

	"github.com/phpdave11/gofpdf"
)

type RevenueFilter struct {
	AirlineName string
	Month       string // YYYY-MM, optional
}

type ReportsService struct {
	RevenueRepo repositories.RevenueRepository
	RequestID   string
	// Loader replaces the repository lookup in tests.
	Loader func(ctx context.Context, f repositories.RevenueFilter) ([]models.RevenueStat, error)
}

// chartPalette cycles for airlines beyond its length.
var chartPalette = [][3]int{
	{54, 162, 235},
	{255, 99, 132},
	{255, 206, 86},
	{75, 192, 192},
	{153, 102, 255},
	{255, 159, 64},
}

// RevenueReport returns ticket revenue per airline plus the overall total.
func (s ReportsService) RevenueReport(ctx context.Context, f RevenueFilter) (models.RevenueReport, error) {
	filter := repositories.RevenueFilter{AirlineName: strings.TrimSpace(f.AirlineName)}
	report := models.RevenueReport{AirlineName: filter.AirlineName}

	if raw := strings.TrimSpace(f.Month); raw != "" {
		month, err := utils.ParseMonth(raw)
		if err != nil {
			return report, domain.ValidationError{Field: "month", Msg: "must be YYYY-MM", Err: err}
		}
		filter.Month = month
		report.Month = utils.FormatMonth(month)
	}

	stats, err := s.load(ctx, filter)
	if err != nil {
		return report, err
	}
	report.Stats = stats
	for _, st := range stats {
		report.Total += st.Revenue
	}

	utils.LogEvent(s.RequestID, "reports", "revenue",
		fmt.Sprintf("airline=%q month=%q airlines=%d", report.AirlineName, report.Month, len(stats)))
	return report, nil
}

// RevenueChartSpec maps report rows to chart input: one bar per airline.
func (s ReportsService) RevenueChartSpec(report models.RevenueReport, kind models.ChartKind) models.ChartSpec {
	spec := models.ChartSpec{
		Kind:         kind,
		Labels:       make([]string, 0, len(report.Stats)),
		Data:         make([]float64, 0, len(report.Stats)),
		Colors:       make([]string, 0, len(report.Stats)),
		BorderColors: make([]string, 0, len(report.Stats)),
	}
	for i, st := range report.Stats {
		c := chartPalette[i%len(chartPalette)]
		spec.Labels = append(spec.Labels, st.AirlineName)
		spec.Data = append(spec.Data, st.Revenue)
		spec.Colors = append(spec.Colors, fmt.Sprintf("rgba(%d, %d, %d, 0.2)", c[0], c[1], c[2]))
		spec.BorderColors = append(spec.BorderColors, fmt.Sprintf("rgba(%d, %d, %d, 1)", c[0], c[1], c[2]))
	}
	return spec
}

// RevenuePDF renders report as a one-table PDF.
func (s ReportsService) RevenuePDF(report models.RevenueReport) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Revenue report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "REVENUE REPORT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Airline filter : %s", safe(report.AirlineName, "all")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Month          : %s", safe(report.Month, "all")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Generated      : %s", utils.FormatDateTime(time.Now())))
	pdf.Ln(10)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	widths := []float64{15, 95, 30, 50}
	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range []string{"#", "Airline", "Flights", "Revenue"} {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	for i, st := range report.Stats {
		pdf.CellFormat(widths[0], 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, tr(st.AirlineName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, fmt.Sprintf("%d", st.FlightCount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, utils.FormatVND(st.Revenue), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(widths[0]+widths[1]+widths[2], 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], 8, utils.FormatVND(report.Total), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	name := "revenue"
	if report.Month != "" {
		name += "-" + report.Month
	}
	return buf.Bytes(), name + ".pdf", nil
}

func (s ReportsService) load(ctx context.Context, f repositories.RevenueFilter) ([]models.RevenueStat, error) {
	if s.Loader != nil {
		return s.Loader(ctx, f)
	}
	return s.RevenueRepo.MonthlyRevenue(ctx, f)
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
