package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/export"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/response"
	"github.com/arslanameen227/Malik-MoneyFlow/pkg/logger"
)

type ReportExporter interface {
	Build(ctx context.Context, from, to string) ([]export.Row, error)
}

type reportHandlers struct {
	ResponseHandler response.ResponseHandler
	Exporter        ReportExporter
}

func NewReportHandlers(deps *Deps) *reportHandlers {
	return &reportHandlers{
		ResponseHandler: deps.ResponseHandler,
		Exporter:        deps.Exporter,
	}
}

func (h *reportHandlers) ReportRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/csv", h.ExportCSV)
	r.Get("/excel", h.ExportExcel)
	return r
}

func (h *reportHandlers) ExportCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Exporter.Build(r.Context(), r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "transactions_"+time.Now().Format("20060102")+".csv"))

	if err := export.WriteCSV(w, rows); err != nil {
		// headers already sent, all we can do is log
		logger.FromContext(r.Context()).Error("csv export failed mid-stream", "error", err)
	}
}

func (h *reportHandlers) ExportExcel(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Exporter.Build(r.Context(), r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "transactions_"+time.Now().Format("20060102")+".xlsx"))

	if err := export.WriteExcel(w, rows); err != nil {
		logger.FromContext(r.Context()).Error("excel export failed mid-stream", "error", err)
	}
}
