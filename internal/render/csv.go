package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/routelens/routelens/internal/engine"
)

// WriteCSV writes a result table to path as a delimited file with header
// "subject,statistic" and one row per result row in table order. An empty
// table produces a header-only file, which is valid output.
func WriteCSV(path string, table engine.ResultTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}

	if err := EncodeCSV(f, table); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close csv file: %w", err)
	}
	return nil
}

// EncodeCSV writes the delimited form of a result table to w.
// Statistics use shortest-round-trip float formatting, so counts print
// without a decimal point ("2", not "2.000000") while fractional metrics
// stay exact.
func EncodeCSV(w io.Writer, table engine.ResultTable) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"subject", "statistic"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range table {
		record := []string{row.Subject, strconv.FormatFloat(row.Statistic, 'f', -1, 64)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
