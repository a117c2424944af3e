// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/Tmaxpro/RandomGift-Backend/middleware"
	"github.com/Tmaxpro/RandomGift-Backend/store"
)

// ExportHandler serves pairing downloads.
type ExportHandler struct {
	store *store.Store
}

func NewExportHandler(st *store.Store) *ExportHandler {
	return &ExportHandler{store: st}
}

// CSV handles GET /export/csv
// Streams the active pairings as a CSV attachment
func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	pairings, err := h.store.ListPairings()
	if err != nil {
		slog.Error("failed to list pairings for export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	filename := fmt.Sprintf("pairings_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	writer := csv.NewWriter(w)
	_ = writer.Write([]string{"Participant", "Gift", "Created At"})
	for _, p := range pairings {
		_ = writer.Write([]string{
			p.Participant,
			p.Gift,
			p.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		slog.Error("failed to write CSV export", "error", err)
	}
}

// PDF handles GET /export/pdf
// Renders the active pairings as a styled PDF table
func (h *ExportHandler) PDF(w http.ResponseWriter, r *http.Request) {
	pairings, err := h.store.ListPairings()
	if err != nil {
		slog.Error("failed to list pairings for export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(0, 12, "Pairing Report", "", 1, "C", false, 0, "")

	// Generation date and total
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, fmt.Sprintf("Generated on %s", time.Now().Format("2006-01-02 15:04:05")), "", 1, "C", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Total pairings: %d", len(pairings)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Table header
	colWidths := [3]float64{63, 54, 63}
	headers := [3]string{"Participant", "Gift", "Created At"}
	pdf.SetFillColor(52, 152, 219)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	for i, title := range headers {
		pdf.CellFormat(colWidths[i], 9, title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// Rows, striped
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	for i, p := range pairings {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 220)
		} else {
			pdf.SetFillColor(211, 211, 211)
		}
		pdf.CellFormat(colWidths[0], 8, p.Participant, "1", 0, "C", true, 0, "")
		pdf.CellFormat(colWidths[1], 8, p.Gift, "1", 0, "C", true, 0, "")
		pdf.CellFormat(colWidths[2], 8, p.CreatedAt.Format("2006-01-02 15:04:05"), "1", 0, "C", true, 0, "")
		pdf.Ln(-1)
	}

	// Footer
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 6, "RandomGift backend export", "", 1, "C", false, 0, "")

	filename := fmt.Sprintf("pairings_%s.pdf", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := pdf.Output(w); err != nil {
		slog.Error("failed to write PDF export", "error", err)
	}
}
