package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func rowsOf(ids ...string) []Row {
	out := make([]Row, 0, len(ids))
	for _, id := range ids {
		out = append(out, Row{ID: id, Columns: []Column{}})
	}
	return out
}

func rowIDs(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func colIDs(r Row) []string {
	out := make([]string, 0, len(r.Columns))
	for _, c := range r.Columns {
		out = append(out, c.ID)
	}
	return out
}

func col(id string) Column {
	c := DefaultColumn
	c.ID = id
	return c
}

func TestInsertRowAfterSelected(t *testing.T) {
	rows := rowsOf("a", "b", "c")
	cases := []struct {
		selected string
		want     []string
	}{
		{"a", []string{"a", "new", "b", "c"}},
		{"b", []string{"a", "b", "new", "c"}},
		{"c", []string{"a", "b", "c", "new"}},
	}
	for _, tc := range cases {
		t.Run(tc.selected, func(t *testing.T) {
			got := InsertRow(rows, Row{ID: "new"}, tc.selected)
			require.Equal(t, tc.want, rowIDs(got))
		})
	}
	require.Equal(t, []string{"a", "b", "c"}, rowIDs(rows), "input must not change")
}

func TestInsertRowIntoEmptyIgnoresSelection(t *testing.T) {
	for _, sel := range []string{"", "missing", "new"} {
		got := InsertRow(nil, Row{ID: "new"}, sel)
		require.Equal(t, []Row{{ID: "new"}}, got)
	}
}

func TestInsertRowStaleSelectionDrops(t *testing.T) {
	rows := rowsOf("a", "b")
	got := InsertRow(rows, Row{ID: "new"}, "gone")
	require.True(t, Equal(rows, got))

	got = InsertRow(rows, Row{ID: "new"}, "")
	require.Len(t, got, 2)
}

func TestInsertColumn(t *testing.T) {
	rows := []Row{
		{ID: "r1", Columns: []Column{col("a"), col("b")}},
		{ID: "r2", Columns: []Column{col("x")}},
		{ID: "r3", Columns: []Column{}},
	}

	got := InsertColumn(rows, col("new"), "r1", "a")
	require.Equal(t, []string{"a", "new", "b"}, colIDs(got[0]))
	require.Equal(t, rows[1], got[1])
	require.Equal(t, rows[2], got[2])

	got = InsertColumn(rows, col("new"), "r1", "b")
	require.Equal(t, []string{"a", "b", "new"}, colIDs(got[0]))

	got = InsertColumn(rows, col("new"), "r3", "")
	require.Equal(t, []string{"new"}, colIDs(got[2]))

	got = InsertColumn(rows, col("new"), "r3", "stale")
	require.Equal(t, []string{"new"}, colIDs(got[2]), "empty row takes the column regardless of column selection")

	require.Equal(t, []string{"a", "b"}, colIDs(rows[0]), "input must not change")
}

func TestInsertColumnStaleSelectionDrops(t *testing.T) {
	rows := []Row{{ID: "r1", Columns: []Column{col("a")}}}

	require.True(t, Equal(rows, InsertColumn(rows, col("new"), "nope", "a")))
	require.True(t, Equal(rows, InsertColumn(rows, col("new"), "r1", "")))
	require.True(t, Equal(rows, InsertColumn(rows, col("new"), "r1", "nope")))
	require.Empty(t, InsertColumn(nil, col("new"), "r1", "a"))
}

func TestReplaceColumn(t *testing.T) {
	rows := []Row{
		{ID: "r1", Columns: []Column{col("a"), col("b"), col("c")}},
		{ID: "r2", Columns: []Column{col("b")}},
	}
	edited := col("b").WithText("Hello")

	got := ReplaceColumn(rows, edited, "r1")
	require.Equal(t, []string{"a", "b", "c"}, colIDs(got[0]))
	require.Equal(t, "Hello", got[0].Columns[1].Text)
	require.Equal(t, rows[0].Columns[0], got[0].Columns[0])
	require.Equal(t, rows[1], got[1], "same column id in another row is untouched")
	require.Empty(t, rows[0].Columns[1].Text, "input must not change")
}

func TestReplaceColumnIdempotentAndNoop(t *testing.T) {
	rows := []Row{{ID: "r1", Columns: []Column{col("a").WithText("x"), col("b")}}}

	same := ReplaceColumn(rows, rows[0].Columns[0], "r1")
	require.True(t, Equal(rows, same))
	require.True(t, Equal(same, ReplaceColumn(same, same[0].Columns[0], "r1")))

	require.True(t, Equal(rows, ReplaceColumn(rows, col("zzz").WithText("y"), "r1")))
	require.True(t, Equal(rows, ReplaceColumn(rows, col("a").WithText("y"), "r9")))
}

func TestEqualTreatsNilAndEmptyColumnsAlike(t *testing.T) {
	require.True(t, Equal([]Row{{ID: "a"}}, []Row{{ID: "a", Columns: []Column{}}}))
	require.False(t, Equal([]Row{{ID: "a"}}, []Row{{ID: "b"}}))
	require.False(t, Equal(rowsOf("a"), rowsOf("a", "b")))
}

func TestFindHelpers(t *testing.T) {
	rows := []Row{{ID: "r1", Columns: []Column{col("a"), col("b")}}, {ID: "r2"}}
	require.Equal(t, 1, FindRow(rows, "r2"))
	require.Equal(t, -1, FindRow(rows, "r3"))
	require.Equal(t, 1, FindColumn(rows[0], "b"))
	require.Equal(t, -1, FindColumn(rows[0], ""))
	require.Equal(t, 2, CountColumns(rows))
}
