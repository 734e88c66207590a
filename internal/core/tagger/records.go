package tagger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// TrackRecord is one input row: the track to look up
type TrackRecord struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Year   string `json:"year"`
}

// Label renders the record for display and output rows
func (r TrackRecord) Label() string {
	return strings.Trim(strings.TrimSpace(r.Title)+" - "+strings.TrimSpace(r.Artist), " -")
}

// ParseCSV reads track records from CSV data. The header row is matched
// case-insensitively for title/artist/year columns; when none of those
// names appear the file is treated as headerless with positional
// columns. Malformed rows are skipped rather than failing the run.
func ParseCSV(r io.Reader) ([]TrackRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	titleIdx, artistIdx, yearIdx := 0, 1, 2
	start := 0
	if hdr := headerIndices(rows[0]); hdr != nil {
		titleIdx, artistIdx, yearIdx = hdr[0], hdr[1], hdr[2]
		start = 1
	}

	var records []TrackRecord
	for _, row := range rows[start:] {
		rec := TrackRecord{
			Title:  field(row, titleIdx),
			Artist: field(row, artistIdx),
			Year:   field(row, yearIdx),
		}
		if rec.Title == "" && rec.Artist == "" {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// ParseLines reads pasted "title,artist,year" lines, one record per line
func ParseLines(text string) []TrackRecord {
	var records []TrackRecord
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, ",", 3)
		rec := TrackRecord{Title: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			rec.Artist = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			rec.Year = strings.TrimSpace(parts[2])
		}
		if rec.Title == "" && rec.Artist == "" {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// headerIndices returns column positions for title/artist/year, or nil
// when the row doesn't look like a header. Missing columns map to -1.
func headerIndices(row []string) []int {
	indices := []int{-1, -1, -1}
	names := []string{"title", "artist", "year"}
	found := false
	for i, cell := range row {
		cell = strings.ToLower(strings.TrimSpace(cell))
		for n, name := range names {
			if cell == name && indices[n] == -1 {
				indices[n] = i
				found = true
			}
		}
	}
	if !found {
		return nil
	}
	return indices
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
