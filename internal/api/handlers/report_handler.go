package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inventorypro/insights/internal/report"
)

type ReportHandler struct {
	exporter *report.Exporter
}

func NewReportHandler(exporter *report.Exporter) *ReportHandler {
	return &ReportHandler{exporter: exporter}
}

// Download renders one report and serves it as an attachment under its
// conventional filename. The consolidated type answers 409 while the health
// analysis is still pending.
func (h *ReportHandler) Download(c *gin.Context) {
	reportType, err := report.ParseType(c.Param("type"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	format, err := report.ParseFormat(c.DefaultQuery("format", "pdf"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.exporter.Export(c.Request.Context(), reportType, format)
	if err != nil {
		if errors.Is(err, report.ErrHealthPending) {
			errorResponse(c, http.StatusConflict, err.Error())
			return
		}
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Name))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}
