package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prasert/baanpak-api/internal/application/service"
	"github.com/prasert/baanpak-api/internal/domain/calc"
	"github.com/prasert/baanpak-api/internal/presentation/http/dto/response"
	"github.com/prasert/baanpak-api/pkg/format"
)

// ReportHandler handles report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Daily returns one day's income and expenses
func (h *ReportHandler) Daily(c *gin.Context) {
	date := time.Now()
	if parsed, ok, err := parseDateQuery(c, "date"); err != nil {
		response.BadRequest(c, "date must be in YYYY-MM-DD format")
		return
	} else if ok {
		date = parsed
	}

	summary, err := h.reportService.Daily(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily report computed successfully", dailyReportResponse{
		Date:         format.ISODate(date),
		DateDisplay:  format.ThaiDate(date),
		DailySummary: summary,
	})
}

// dailyReportResponse flattens the day's summary next to its date labels.
type dailyReportResponse struct {
	Date        string `json:"date"`
	DateDisplay string `json:"date_display"`
	*calc.DailySummary
}

func rangeFromQuery(c *gin.Context) (time.Time, time.Time, bool) {
	start, ok, err := parseDateQuery(c, "start_date")
	if err != nil || !ok {
		response.BadRequest(c, "start_date is required in YYYY-MM-DD format")
		return time.Time{}, time.Time{}, false
	}
	end, ok, err := parseDateQuery(c, "end_date")
	if err != nil || !ok {
		response.BadRequest(c, "end_date is required in YYYY-MM-DD format")
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// Range returns recognized income and expenses over a date range
func (h *ReportHandler) Range(c *gin.Context) {
	start, end, ok := rangeFromQuery(c)
	if !ok {
		return
	}

	summary, err := h.reportService.Range(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Range report computed successfully", summary)
}

// Occupancy returns the occupancy KPIs over a date range
func (h *ReportHandler) Occupancy(c *gin.Context) {
	start, end, ok := rangeFromQuery(c)
	if !ok {
		return
	}

	summary, err := h.reportService.Occupancy(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Occupancy report computed successfully", summary)
}

// MonthlyTrend returns a year's net revenue by month and room type
func (h *ReportHandler) MonthlyTrend(c *gin.Context) {
	year := intQuery(c, "year", time.Now().Year())

	trend, err := h.reportService.MonthlyTrend(c.Request.Context(), year)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Monthly trend computed successfully", trend)
}
