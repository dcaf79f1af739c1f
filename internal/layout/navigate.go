package layout

// MoveRow selects the row delta positions away from the current one, clamped
// to the document. With nothing selected it picks the first row.
func (e Editor) MoveRow(delta int) Editor {
	if len(e.Rows) == 0 {
		return e
	}
	i := FindRow(e.Rows, e.Selection.RowID)
	if i < 0 {
		return e.SelectRow(e.Rows[0].ID)
	}
	return e.SelectRow(e.Rows[clamp(i+delta, 0, len(e.Rows)-1)].ID)
}

// MoveColumn walks the columns of the selected row. From a row-only selection
// a forward move enters the first column and a backward move the last.
func (e Editor) MoveColumn(delta int) Editor {
	row, ok := e.SelectedRow()
	if !ok || len(row.Columns) == 0 {
		return e
	}
	j := FindColumn(row, e.Selection.Column.ID)
	switch {
	case j < 0 && delta >= 0:
		j = 0
	case j < 0:
		j = len(row.Columns) - 1
	default:
		j = clamp(j+delta, 0, len(row.Columns)-1)
	}
	return e.SelectColumn(row.ID, row.Columns[j])
}

// SelectParent climbs from a column selection to its row. A row selection
// stays as it is; there is no way back to an empty selection.
func (e Editor) SelectParent() Editor {
	if e.Selection.State() != SelectedColumn {
		return e
	}
	return e.SelectRow(e.Selection.RowID)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
