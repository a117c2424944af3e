// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Tmaxpro/RandomGift-Backend/models"
)

// maxUploadSize caps bulk upload files at 10 MiB
const maxUploadSize = 10 << 20

// Error strings here are returned to the client verbatim as 400 messages.

// uploadIdentifiers extracts identifier values from the "file" field of a
// multipart request. Supported formats: .csv and .xlsx (legacy .xls is not).
func uploadIdentifiers(r *http.Request, side string) ([]string, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, errors.New("No file provided. Use the 'file' form-data field or send a JSON body with 'identifiers': [...]")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, errors.New("No file provided. Use the 'file' form-data field or send a JSON body with 'identifiers': [...]")
	}
	defer file.Close()

	if header.Filename == "" {
		return nil, errors.New("Empty filename")
	}

	var rows [][]string
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".csv":
		rows, err = rowsFromCSV(file)
	case ".xlsx":
		rows, err = rowsFromXLSX(file)
	default:
		return nil, errors.New("Unsupported file format. Use: .csv, .xlsx")
	}
	if err != nil {
		return nil, fmt.Errorf("Failed to read the file: %v", err)
	}

	return identifiersFromRows(rows, side)
}

func rowsFromCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader.ReadAll()
}

func rowsFromXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}
	return f.GetRows(sheet)
}

// identifiersFromRows sniffs the header row for an identifier column and
// collects its non-empty values in row order.
func identifiersFromRows(rows [][]string, side string) ([]string, error) {
	if len(rows) == 0 {
		return nil, errors.New("The file is empty")
	}

	header := rows[0]
	col := identifierColumn(header, side)
	if col < 0 {
		return nil, fmt.Errorf("No identifier column found in the file (columns: %s)", strings.Join(header, ", "))
	}

	identifiers := []string{}
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		if v := strings.TrimSpace(row[col]); v != "" {
			identifiers = append(identifiers, v)
		}
	}
	return identifiers, nil
}

// identifierColumn returns the index of the first recognized header, or -1.
// The side's own name is accepted alongside the generic column names.
func identifierColumn(header []string, side string) int {
	names := map[string]bool{
		"identifier":  true,
		"identifiers": true,
		"numero":      true,
		"numeros":     true,
	}
	switch side {
	case models.SideParticipants:
		names["participant"] = true
		names["participants"] = true
	case models.SideGifts:
		names["gift"] = true
		names["gifts"] = true
	}

	for i, col := range header {
		if names[strings.ToLower(strings.TrimSpace(col))] {
			return i
		}
	}
	return -1
}
