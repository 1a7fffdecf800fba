package writer

import (
	"encoding/csv"
	"os"

	"github.com/home-energy-audit/energy-import/table"
)

// encodeCsv writes a header record followed by one record per row - missing values are empty cells
func encodeCsv(f *os.File, t *table.Table) error {
	w := csv.NewWriter(f)
	if err := w.Write(t.ColumnNames()); err != nil {
		return err
	}

	record := make([]string, t.NumColumns())
	for _, row := range t.Rows {
		for i, v := range row {
			record[i] = table.FormatValue(v)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
