package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/peopledesk/payroll-backend-go/internal/handler/http/response"
	"github.com/peopledesk/payroll-backend-go/internal/service/report"
)

type ReportHandler interface {
	PaymentRegister(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService *report.Service
}

func NewReportHandler(reportService *report.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// PaymentRegister implements ReportHandler. Streams the register workbook of
// the company's current period as an XLSX attachment.
func (h *ReportHandlerImpl) PaymentRegister(w http.ResponseWriter, r *http.Request) {
	data, err := h.reportService.PaymentRegister(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Failed to generate payment register", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("payment-register-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
