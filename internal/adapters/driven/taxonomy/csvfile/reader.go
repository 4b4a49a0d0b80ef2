// Package csvfile reads the category taxonomy table.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/iconsmith-cli/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.RowReader = (*Reader)(nil)

// Reader loads taxonomy rows from a CSV file, preserving input order.
type Reader struct{}

// NewReader creates a taxonomy reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read implements driven.RowReader. The header must carry a Catid
// column; category columns are matched by name and unknown columns are
// ignored. Cell values are kept raw, trimming happens on access.
func (r *Reader) Read(ctx context.Context, path string) ([]domain.CategoryRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open taxonomy: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1 // ragged rows happen in hand-edited exports

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", domain.ErrInvalidInput, err)
	}

	catidIdx := -1
	columns := make(map[int]string, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))
		if name == domain.ColumnCatid {
			catidIdx = i
			continue
		}
		columns[i] = name
	}
	if catidIdx == -1 {
		return nil, fmt.Errorf("%w: no %s column in header", domain.ErrInvalidInput, domain.ColumnCatid)
	}

	var rows []domain.CategoryRow
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", domain.ErrInvalidInput, len(rows)+2, err)
		}
		if catidIdx >= len(record) {
			continue
		}

		row := domain.CategoryRow{
			Catid:  strings.TrimSpace(record[catidIdx]),
			Fields: make(map[string]string, len(columns)),
		}
		for i, name := range columns {
			if i < len(record) {
				row.Fields[name] = record[i]
			}
		}
		rows = append(rows, row)
	}

	logger.Debug("taxonomy: %d rows from %s", len(rows), path)
	return rows, nil
}
