package layout

import "slices"

// InsertRow returns a new row sequence with newRow placed right after the row
// whose id is selectedRowID. An empty sequence yields just newRow. When no row
// matches, newRow is dropped and the result equals rows.
func InsertRow(rows []Row, newRow Row, selectedRowID string) []Row {
	if len(rows) == 0 {
		return []Row{newRow}
	}
	out := make([]Row, 0, len(rows)+1)
	for _, r := range rows {
		out = append(out, r)
		if r.ID == selectedRowID {
			out = append(out, newRow)
		}
	}
	return out
}

// InsertColumn places newColumn right after selectedColumnID inside the row
// selectedRowID. A row without columns gets newColumn as its only column.
// No matching row or column drops newColumn.
func InsertColumn(rows []Row, newColumn Column, selectedRowID, selectedColumnID string) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.ID != selectedRowID {
			out = append(out, r)
			continue
		}
		cols := []Column{newColumn}
		if len(r.Columns) > 0 {
			cols = make([]Column, 0, len(r.Columns)+1)
			for _, c := range r.Columns {
				cols = append(cols, c)
				if c.ID == selectedColumnID {
					cols = append(cols, newColumn)
				}
			}
		}
		out = append(out, Row{ID: r.ID, Columns: cols})
	}
	return out
}

// ReplaceColumn swaps the column with column.ID inside row selectedRowID for
// column, keeping its position. Anything unmatched passes through.
func ReplaceColumn(rows []Row, column Column, selectedRowID string) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.ID != selectedRowID {
			out = append(out, r)
			continue
		}
		cols := make([]Column, len(r.Columns))
		for i, c := range r.Columns {
			if c.ID == column.ID {
				c = column
			}
			cols[i] = c
		}
		out = append(out, Row{ID: r.ID, Columns: cols})
	}
	return out
}

// FindRow returns the index of the row with id, or -1.
func FindRow(rows []Row, id string) int {
	return slices.IndexFunc(rows, func(r Row) bool { return r.ID == id })
}

// FindColumn returns the index of the column with id inside row, or -1.
func FindColumn(row Row, id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(row.Columns, func(c Column) bool { return c.ID == id })
}

// CountColumns totals the columns across all rows.
func CountColumns(rows []Row) int {
	n := 0
	for _, r := range rows {
		n += len(r.Columns)
	}
	return n
}

// Equal reports whether two documents hold the same rows and columns in the
// same order. A nil column slice equals an empty one.
func Equal(a, b []Row) bool {
	return slices.EqualFunc(a, b, func(x, y Row) bool {
		return x.ID == y.ID && slices.Equal(x.Columns, y.Columns)
	})
}
