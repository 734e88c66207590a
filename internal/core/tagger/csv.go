package tagger

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes output rows with an input_title,udio_tags header
func WriteCSV(w io.Writer, rows []TagRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"input_title", "udio_tags"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write([]string{row.InputTitle, row.UdioTags}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
