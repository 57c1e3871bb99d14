package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"flightbooking/internal/domain"
	"flightbooking/internal/domain/models"
	"flightbooking/internal/http/middleware"
	"flightbooking/internal/repositories"
	"flightbooking/internal/services"
	"flightbooking/internal/utils"

	"github.com/gin-gonic/gin"
	ds "github.com/starfederation/datastar-go/datastar"
)

const revenueCanvasID = "revenue_chart"

type statsSignals struct {
	AirlineName string `json:"airline_name"`
	Month       string `json:"month"`
	Type        string `json:"type"`
}

// StatsHandler serves the revenue statistics page, its JSON/PDF exports and the chart stream.
type StatsHandler struct {
	Revenue  repositories.RevenueRepository
	Renderer services.ChartRenderer
}

func (h StatsHandler) service(c *gin.Context) services.ReportsService {
	return services.ReportsService{
		RevenueRepo: h.Revenue,
		RequestID:   middleware.GetRequestID(c),
	}
}

func chartKind(raw string) models.ChartKind {
	if raw = strings.TrimSpace(raw); raw == "" {
		return models.ChartBar
	}
	return models.ChartKind(raw)
}

// GetRevenue handles GET /api/stats/revenue?airline_name=&month=&type=.
func (h StatsHandler) GetRevenue(c *gin.Context) {
	svc := h.service(c)
	report, err := svc.RevenueReport(c.Request.Context(), services.RevenueFilter{
		AirlineName: c.Query("airline_name"),
		Month:       c.Query("month"),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	chart, err := services.BuildChartConfig(svc.RevenueChartSpec(report, chartKind(c.Query("type"))))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report, "chart": chart})
}

// GetRevenuePDF handles GET /api/stats/revenue.pdf.
func (h StatsHandler) GetRevenuePDF(c *gin.Context) {
	svc := h.service(c)
	report, err := svc.RevenueReport(c.Request.Context(), services.RevenueFilter{
		AirlineName: c.Query("airline_name"),
		Month:       c.Query("month"),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	pdf, filename, err := svc.RevenuePDF(report)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "failed to build pdf", Err: err})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Page handles GET /stats.
func (h StatsHandler) Page(c *gin.Context) {
	renderPage(c, http.StatusOK, "stats", pageData{Title: "Revenue", WithChart: true})
}

// Chart handles GET /stats/chart as a Datastar SSE stream. It swaps in a fresh
// canvas before drawing so repeated requests never stack charts on one canvas.
func (h StatsHandler) Chart(c *gin.Context) {
	var sig statsSignals
	if err := ds.ReadSignals(c.Request, &sig); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid signals", err.Error())
		return
	}

	reqID := middleware.GetRequestID(c)
	svc := h.service(c)
	sse := ds.NewSSE(c.Writer, c.Request)

	fail := func(err error) {
		_ = c.Error(err)
		_, _, msg := errorStatus(err)
		utils.LogEvent(reqID, "stats", "chart_failed", err.Error())
		if html, ferr := fragment("stats_error", msg); ferr == nil {
			_ = sse.PatchElements(html)
		}
	}

	report, err := svc.RevenueReport(c.Request.Context(), services.RevenueFilter{
		AirlineName: sig.AirlineName,
		Month:       sig.Month,
	})
	if err != nil {
		fail(err)
		return
	}

	spec := svc.RevenueChartSpec(report, chartKind(sig.Type))
	if _, err := services.BuildChartConfig(spec); err != nil {
		fail(err)
		return
	}

	canvas, err := fragment("revenue_chart", nil)
	if err != nil {
		fail(err)
		return
	}
	if err := sse.PatchElements(canvas, ds.WithSelectorID(revenueCanvasID), ds.WithModeReplace()); err != nil {
		fail(err)
		return
	}

	handle, err := h.Renderer.Render(canvasTarget{sse: sse, canvasID: revenueCanvasID}, spec)
	if err != nil {
		fail(err)
		return
	}

	if html, ferr := fragment("revenue_total", utils.FormatVND(report.Total)); ferr == nil {
		_ = sse.PatchElements(html)
	}
	if html, ferr := fragment("stats_error", ""); ferr == nil {
		_ = sse.PatchElements(html)
	}
	utils.LogEvent(reqID, "stats", "chart", fmt.Sprintf("airlines=%d seq=%d", len(report.Stats), handle.Seq))
}
