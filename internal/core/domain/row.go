package domain

import "strings"

// Column names of the input taxonomy, as they appear in the CSV header.
const (
	ColumnCatid = "Catid"
	ColumnRoot  = "Root category"
	ColumnSub1  = "Sub category"
	ColumnSub2  = "Sub-sub category"
	ColumnSub3  = "Sub-sub-sub category"
	ColumnSub4  = "Sub-sub-sub-sub category"
	ColumnSub5  = "Sub-sub-sub-sub-sub category"
)

// CategoryDepthOrder lists the category columns deepest first.
// Subject resolution scans this exact list; it must never be derived
// from map iteration or CSV column order, which are not stable.
var CategoryDepthOrder = [...]string{
	ColumnSub5,
	ColumnSub4,
	ColumnSub3,
	ColumnSub2,
	ColumnSub1,
	ColumnRoot,
}

// CategoryRow is one read-only row of the input taxonomy.
// Catid is the stable identifier and the output filename stem.
type CategoryRow struct {
	// Catid uniquely identifies the category. Never normalised.
	Catid string

	// Fields maps column name to raw cell value, untrimmed.
	Fields map[string]string
}

// Field returns the trimmed value of a category column.
func (r CategoryRow) Field(column string) string {
	return strings.TrimSpace(r.Fields[column])
}

// Validate checks the row invariants: non-empty Catid and at least
// one non-empty category field.
func (r CategoryRow) Validate() error {
	if strings.TrimSpace(r.Catid) == "" {
		return ErrInvalidInput
	}
	for _, col := range CategoryDepthOrder {
		if r.Field(col) != "" {
			return nil
		}
	}
	return ErrNoSubject
}
