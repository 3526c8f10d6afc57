package handlers

import (
	"fmt"
	"net/http"

	"stock-backend/internal/services"
	"stock-backend/internal/timeutil"
	"stock-backend/pkg/utils"
)

type ReportHandler struct {
	Reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{Reports: reports}
}

// ArrivalRegister returns the valued arrivals register as JSON
func (h *ReportHandler) ArrivalRegister(w http.ResponseWriter, r *http.Request) {
	filter, err := parseArrivalFilter(r)
	if err != nil {
		utils.Error(w, err)
		return
	}

	register, err := h.Reports.BuildArrivalRegister(r.Context(), filter)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, register)
}

// ArrivalRegisterCSV streams the register as a CSV download
func (h *ReportHandler) ArrivalRegisterCSV(w http.ResponseWriter, r *http.Request) {
	filter, err := parseArrivalFilter(r)
	if err != nil {
		utils.Error(w, err)
		return
	}

	register, err := h.Reports.BuildArrivalRegister(r.Context(), filter)
	if err != nil {
		utils.Error(w, err)
		return
	}

	data, err := h.Reports.ExportCSV(register)
	if err != nil {
		utils.Error(w, err)
		return
	}

	filename := fmt.Sprintf("arrivals_%s.csv", timeutil.Now().Format(timeutil.DateLayout))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ArrivalRegisterPDF streams the register as a PDF download
func (h *ReportHandler) ArrivalRegisterPDF(w http.ResponseWriter, r *http.Request) {
	filter, err := parseArrivalFilter(r)
	if err != nil {
		utils.Error(w, err)
		return
	}

	register, err := h.Reports.BuildArrivalRegister(r.Context(), filter)
	if err != nil {
		utils.Error(w, err)
		return
	}

	data, err := h.Reports.ExportPDF(register)
	if err != nil {
		utils.Error(w, err)
		return
	}

	filename := fmt.Sprintf("arrivals_%s.pdf", timeutil.Now().Format(timeutil.DateLayout))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
