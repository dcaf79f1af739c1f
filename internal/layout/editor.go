package layout

import "log"

// SelectionState is the position of the selection state machine.
type SelectionState int

const (
	SelectedNone SelectionState = iota
	SelectedRow
	SelectedColumn
)

func (s SelectionState) String() string {
	switch s {
	case SelectedRow:
		return "row"
	case SelectedColumn:
		return "column"
	default:
		return "none"
	}
}

// Selection is the active row and, optionally, a snapshot of the active
// column. Column equals DefaultColumn when no column is selected.
type Selection struct {
	RowID  string
	Column Column
}

func (s Selection) State() SelectionState {
	switch {
	case s.RowID == "":
		return SelectedNone
	case s.Column.ID == "":
		return SelectedRow
	default:
		return SelectedColumn
	}
}

// RowSelected reports whether the row with id is highlighted as a whole.
func (s Selection) RowSelected(id string) bool {
	return s.Column.ID == "" && s.RowID == id
}

func (s Selection) ColumnSelected(id string) bool {
	return s.Column.ID != "" && s.Column.ID == id
}

// Outcome tells the caller whether an intent changed the document.
type Outcome int

const (
	Applied Outcome = iota
	// Dropped means the selection matched nothing and the document is unchanged.
	Dropped
)

// Editor is the document plus its selection. Every method returns a new
// Editor; the receiver and its row slices are never mutated.
type Editor struct {
	Rows      []Row
	Selection Selection
	RowIDs    IDGenerator
	ColumnIDs IDGenerator
}

// NewEditor starts with an empty document and no selection. A nil generator
// falls back to UUIDGenerator.
func NewEditor(rowIDs, columnIDs IDGenerator) Editor {
	if rowIDs == nil {
		rowIDs = UUIDGenerator{}
	}
	if columnIDs == nil {
		columnIDs = UUIDGenerator{}
	}
	return Editor{
		Rows:      []Row{},
		Selection: Selection{Column: DefaultColumn},
		RowIDs:    rowIDs,
		ColumnIDs: columnIDs,
	}
}

// AddRow inserts a new row after the selected one and selects it.
func (e Editor) AddRow() (Editor, Outcome) {
	row := NewRow(e.RowIDs)
	rows := InsertRow(e.Rows, row, e.Selection.RowID)
	outcome := outcomeOf(len(rows) > len(e.Rows))
	if outcome == Dropped {
		log.Printf("add row: selected row %q not found, row %s dropped", e.Selection.RowID, row.ID)
	}
	e.Rows = rows
	e.Selection = Selection{RowID: row.ID, Column: DefaultColumn}
	return e, outcome
}

// AddColumn inserts a new column after the selected column of the selected
// row and selects it.
func (e Editor) AddColumn() (Editor, Outcome) {
	col := NewColumn(e.ColumnIDs)
	rows := InsertColumn(e.Rows, col, e.Selection.RowID, e.Selection.Column.ID)
	outcome := outcomeOf(CountColumns(rows) > CountColumns(e.Rows))
	if outcome == Dropped {
		log.Printf("add column: selection %q/%q not found, column %s dropped",
			e.Selection.RowID, e.Selection.Column.ID, col.ID)
	}
	e.Rows = rows
	e.Selection.Column = col
	return e, outcome
}

// ChangeColumn replaces the edited column in the selected row and refreshes
// the selection snapshot.
func (e Editor) ChangeColumn(col Column) (Editor, Outcome) {
	outcome := Dropped
	if i := FindRow(e.Rows, e.Selection.RowID); i >= 0 && FindColumn(e.Rows[i], col.ID) >= 0 {
		outcome = Applied
	}
	e.Rows = ReplaceColumn(e.Rows, col, e.Selection.RowID)
	e.Selection.Column = col
	return e, outcome
}

// SelectRow selects a row and clears any column selection.
func (e Editor) SelectRow(id string) Editor {
	e.Selection = Selection{RowID: id, Column: DefaultColumn}
	return e
}

// SelectColumn selects col inside row rowID.
func (e Editor) SelectColumn(rowID string, col Column) Editor {
	if col.ID == "" {
		return e.SelectRow(rowID)
	}
	e.Selection = Selection{RowID: rowID, Column: col}
	return e
}

// SelectedRow returns the selected row, if it still exists.
func (e Editor) SelectedRow() (Row, bool) {
	i := FindRow(e.Rows, e.Selection.RowID)
	if i < 0 {
		return Row{}, false
	}
	return e.Rows[i], true
}

func outcomeOf(changed bool) Outcome {
	if changed {
		return Applied
	}
	return Dropped
}
