package writer

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/home-energy-audit/energy-import/table"
)

// encodeJsonl writes one JSON object per row, keyed by column name - missing values are null
func encodeJsonl(f *os.File, t *table.Table) error {
	encoder := json.NewEncoder(f)
	names := t.ColumnNames()

	for i, row := range t.Rows {
		item := make(map[string]any, len(names))
		for c, v := range row {
			if ts, ok := v.(time.Time); ok {
				v = ts.Format(time.RFC3339)
			}
			item[names[c]] = v
		}
		if err := encoder.Encode(item); err != nil {
			return fmt.Errorf("failed to encode row %d: %w", i, err)
		}
	}
	return nil
}
