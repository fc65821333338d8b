package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"math/rand"
	"strconv"

	"github.com/YuminosukeSato/tabprep/pkg/errors"
)

// Kind classifies a schema field.
type Kind int

const (
	// Categorical fields load as label columns with a missing mask.
	Categorical Kind = iota
	// Numeric fields load as float64 slices with NaN for missing or
	// unparseable values.
	Numeric
)

// Field names one column to load and how to interpret it.
type Field struct {
	Name string
	Kind Kind
}

// Schema is the explicit list of columns to load from a CSV input. Columns
// absent from the schema are ignored; schema fields absent from the header
// are an error.
type Schema struct {
	Fields []Field
	// MissingMarkers override DefaultMissingMarkers when non-empty.
	MissingMarkers []string
}

// Table holds the loaded columns of a dataset, all of equal length.
type Table struct {
	rows  int
	order []string
	cats  map[string]Column
	nums  map[string][]float64
}

// ReadCSV loads the schema's columns from a comma-delimited input whose first
// record is a header. Numeric values that are missing or fail to parse load
// as NaN; categorical missing markers set the missing mask.
func ReadCSV(r io.Reader, schema Schema) (*Table, error) {
	if len(schema.Fields) == 0 {
		return nil, errors.NewValidationError("schema", "must name at least one column", schema.Fields)
	}

	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "reading CSV header")
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[name] = i
	}
	fieldIdx := make([]int, len(schema.Fields))
	for i, f := range schema.Fields {
		idx, ok := colIdx[f.Name]
		if !ok {
			return nil, errors.Wrapf(errors.ErrColumnNotFound, "column %q not in CSV header", f.Name)
		}
		fieldIdx[i] = idx
	}

	markers := schema.MissingMarkers
	if len(markers) == 0 {
		markers = DefaultMissingMarkers
	}
	markerSet := make(map[string]struct{}, len(markers))
	for _, m := range markers {
		markerSet[m] = struct{}{}
	}

	raw := make([][]string, len(schema.Fields))
	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading CSV row %d", rows+2)
		}
		for i, idx := range fieldIdx {
			raw[i] = append(raw[i], record[idx])
		}
		rows++
	}

	t := &Table{
		rows: rows,
		cats: make(map[string]Column),
		nums: make(map[string][]float64),
	}
	for i, f := range schema.Fields {
		t.order = append(t.order, f.Name)
		switch f.Kind {
		case Numeric:
			vals := make([]float64, rows)
			for j, s := range raw[i] {
				if _, missing := markerSet[s]; missing {
					vals[j] = math.NaN()
					continue
				}
				v, err := strconv.ParseFloat(s, 64)
				if err != nil {
					vals[j] = math.NaN()
					continue
				}
				vals[j] = v
			}
			t.nums[f.Name] = vals
		default:
			t.cats[f.Name] = NewColumn(f.Name, raw[i], markers...)
		}
	}
	return t, nil
}

// NewTable builds a table from pre-built categorical columns, checking that
// all columns share the same length and that names are unique.
func NewTable(cols ...Column) (*Table, error) {
	t := &Table{cats: make(map[string]Column), nums: make(map[string][]float64)}
	for i, c := range cols {
		if _, dup := t.cats[c.Name()]; dup {
			return nil, errors.NewValidationError("columns", "duplicate column name", c.Name())
		}
		if i == 0 {
			t.rows = c.Len()
		} else if c.Len() != t.rows {
			return nil, errors.NewDimensionError("NewTable", t.rows, c.Len())
		}
		t.cats[c.Name()] = c
		t.order = append(t.order, c.Name())
	}
	return t, nil
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return t.rows }

// ColumnNames returns the loaded column names in schema order.
func (t *Table) ColumnNames() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Categorical returns the named categorical column.
func (t *Table) Categorical(name string) (Column, error) {
	c, ok := t.cats[name]
	if !ok {
		return Column{}, errors.Wrapf(errors.ErrColumnNotFound, "categorical column %q", name)
	}
	return c, nil
}

// Numeric returns the named numeric column. The slice is owned by the table
// and must not be modified.
func (t *Table) Numeric(name string) ([]float64, error) {
	v, ok := t.nums[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrColumnNotFound, "numeric column %q", name)
	}
	return v, nil
}

// Split partitions the table's rows into train and test tables by shuffling
// with the given seed. testFraction must be in (0, 1).
func (t *Table) Split(testFraction float64, seed int64) (train, test *Table, err error) {
	if testFraction <= 0 || testFraction >= 1 {
		return nil, nil, errors.NewValidationError("testFraction", "must be in (0, 1)", testFraction)
	}
	perm := rand.New(rand.NewSource(seed)).Perm(t.rows)
	nTest := int(float64(t.rows) * testFraction)
	return t.subset(perm[nTest:]), t.subset(perm[:nTest]), nil
}

func (t *Table) subset(idx []int) *Table {
	out := &Table{
		rows:  len(idx),
		order: t.ColumnNames(),
		cats:  make(map[string]Column, len(t.cats)),
		nums:  make(map[string][]float64, len(t.nums)),
	}
	for name, c := range t.cats {
		out.cats[name] = c.take(idx)
	}
	for name, vals := range t.nums {
		sub := make([]float64, len(idx))
		for j, i := range idx {
			sub[j] = vals[i]
		}
		out.nums[name] = sub
	}
	return out
}

func errDimension(op string, expected, got int) error {
	return errors.NewDimensionError(op, expected, got)
}
