package latex

import "fmt"

// ColumnAlignment is the horizontal alignment of one table column.
type ColumnAlignment uint8

// Column alignments. The zero value is AlignLeft.
const (
	AlignLeft ColumnAlignment = iota
	AlignRight
	AlignCenter
)

// String returns the single-letter column code used in the tabular spec.
func (a ColumnAlignment) String() string {
	switch a {
	case AlignRight:
		return "r"
	case AlignCenter:
		return "c"
	default:
		return "l"
	}
}

// ColumnSettings holds the typed settings of one table column.
type ColumnSettings struct {
	// Alignment is the column's horizontal alignment.
	Alignment ColumnAlignment
}

// WithAlignment returns a copy of the settings with the alignment changed.
func (c ColumnSettings) WithAlignment(alignment ColumnAlignment) ColumnSettings {
	c.Alignment = alignment
	return c
}

// ColumnSpec is the table-spec argument of the tabular environment: either a
// typed per-column settings list, or a raw LaTeX string used verbatim as an
// escape hatch. The zero value is an empty typed spec.
type ColumnSpec struct {
	typed []ColumnSettings
	raw   string
	isRaw bool
}

// TypedColumns creates a typed column spec from per-column settings.
func TypedColumns(settings ...ColumnSettings) ColumnSpec {
	return ColumnSpec{typed: settings}
}

// RawColumns creates a raw column spec. The string is emitted verbatim in
// the begin marker; no validation or escaping is applied.
func RawColumns(raw string) ColumnSpec {
	return ColumnSpec{raw: raw, isRaw: true}
}

// IsRaw reports whether the spec is the raw escape hatch.
func (s ColumnSpec) IsRaw() bool {
	return s.isRaw
}

// IsEmpty reports whether the spec carries no settings at all.
func (s ColumnSpec) IsEmpty() bool {
	if s.isRaw {
		return s.raw == ""
	}
	return len(s.typed) == 0
}

// Typed returns the per-column settings of a typed spec.
func (s ColumnSpec) Typed() []ColumnSettings {
	return s.typed
}

// Raw returns the raw string of a raw spec.
func (s ColumnSpec) Raw() string {
	return s.raw
}

// RowSource is anything convertible into a table row. It is implemented by
// TableRow itself and by HLine.
type RowSource interface {
	tableRow() TableRow
}

// TableRow is one row of a table: an ordered sequence of stringified cells
// plus a flag suppressing the row terminator, used by rule pseudo-rows.
type TableRow struct {
	cells              []string
	columns            int
	suppressTerminator bool
}

// Row builds a table row from any sequence of values. Each cell is
// stringified independently with fmt.Sprint.
func Row(cells ...any) TableRow {
	row := TableRow{}
	for _, cell := range cells {
		row.PushCell(cell)
	}
	return row
}

// PushCell appends one stringified cell to the row.
func (r *TableRow) PushCell(cell any) *TableRow {
	r.cells = append(r.cells, fmt.Sprint(cell))
	r.columns++
	return r
}

// Cells returns the row's cells in insertion order.
func (r TableRow) Cells() []string {
	return r.cells
}

// Columns returns the recorded cell count of the row.
func (r TableRow) Columns() int {
	return r.columns
}

// IsRule reports whether the row suppresses its terminator, as rule
// pseudo-rows do.
func (r TableRow) IsRule() bool {
	return r.suppressTerminator
}

func (r TableRow) tableRow() TableRow {
	return r
}

// HLine is a horizontal rule between table rows. It converts to a one-cell
// row containing the rule command with the terminator suppressed, so no
// trailing row separator follows it.
type HLine struct{}

func (HLine) tableRow() TableRow {
	return TableRow{
		cells:              []string{`\hline`},
		suppressTerminator: true,
	}
}

// Table is row/column structured content rendered as a tabular environment.
//
// The effective column count is the maximum cell count over all rows; rows
// are stored as pushed and only padded out to the widest row at render time.
type Table struct {
	rows []TableRow
	spec ColumnSpec
}

// NewTable creates an empty table with default column settings.
func NewTable() *Table {
	return &Table{}
}

// PushRow appends a row to the end of the table.
func (t *Table) PushRow(row RowSource) *Table {
	t.rows = append(t.rows, row.tableRow())
	return t
}

// InsertRow inserts a row at index, shifting later rows down. It panics if
// index is out of range: an out-of-range index is a caller bug, not a
// recoverable error.
func (t *Table) InsertRow(index int, row RowSource) *Table {
	if index < 0 || index > len(t.rows) {
		panic(fmt.Sprintf("latex: row index %d out of range [0:%d]", index, len(t.rows)))
	}
	t.rows = append(t.rows, TableRow{})
	copy(t.rows[index+1:], t.rows[index:])
	t.rows[index] = row.tableRow()
	return t
}

// ReplaceRow replaces the row at index. It panics if index is out of range.
func (t *Table) ReplaceRow(index int, row RowSource) *Table {
	if index < 0 || index >= len(t.rows) {
		panic(fmt.Sprintf("latex: row index %d out of range [0:%d]", index, len(t.rows)))
	}
	t.rows[index] = row.tableRow()
	return t
}

// Rows returns the table rows in order.
func (t *Table) Rows() []TableRow {
	return t.rows
}

// IsEmpty reports whether the table has no rows.
func (t *Table) IsEmpty() bool {
	return len(t.rows) == 0
}

// NumberColumns returns the maximum cell count over all rows. It scans the
// current row set on every call, so the result always reflects rows pushed
// since the last call.
func (t *Table) NumberColumns() int {
	max := 0
	for _, row := range t.rows {
		if row.columns > max {
			max = row.columns
		}
	}
	return max
}

// SetColumnSpec replaces the whole column spec.
func (t *Table) SetColumnSpec(spec ColumnSpec) *Table {
	t.spec = spec
	return t
}

// ColumnSpec returns the current column spec.
func (t *Table) ColumnSpec() ColumnSpec {
	return t.spec
}

// ReplaceColumnSettings replaces the settings of a single column, leaving
// the others unchanged. A raw spec, or a typed spec shorter than the table,
// is first normalized to a typed list sized to NumberColumns with default
// settings for unseen columns. It panics if column >= NumberColumns.
func (t *Table) ReplaceColumnSettings(column int, settings ColumnSettings) *Table {
	n := t.NumberColumns()
	if column < 0 || column >= n {
		panic(fmt.Sprintf("latex: column %d does not exist (table has %d columns)", column, n))
	}

	var current []ColumnSettings
	if t.spec.isRaw {
		current = make([]ColumnSettings, n)
	} else {
		current = append([]ColumnSettings(nil), t.spec.typed...)
		for len(current) < n {
			current = append(current, ColumnSettings{})
		}
	}

	current[column] = settings
	t.spec = TypedColumns(current...)
	return t
}

// resolvedColumnSpec produces the table-spec string emitted in the begin
// marker: the raw string verbatim, or one alignment code per column. Columns
// past the end of a typed settings list inherit the last specified column's
// settings; with no settings at all every column uses the default alignment.
func (t *Table) resolvedColumnSpec() string {
	if t.spec.isRaw {
		return t.spec.raw
	}

	n := t.NumberColumns()
	typed := t.spec.typed
	spec := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		settings := ColumnSettings{}
		if len(typed) > 0 {
			if i < len(typed) {
				settings = typed[i]
			} else {
				settings = typed[len(typed)-1]
			}
		}
		spec = append(spec, settings.Alignment.String()...)
	}
	return string(spec)
}
