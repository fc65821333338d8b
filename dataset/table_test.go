package dataset

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `id,cabin,fare,survived
1,C85,71.28,1
2,,8.05,0
3,E46,NA,1
4,B78,abc,0
5,C85,10.50,1
`

func TestReadCSV(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "cabin", Kind: Categorical},
		{Name: "fare", Kind: Numeric},
		{Name: "survived", Kind: Numeric},
	}}
	table, err := ReadCSV(strings.NewReader(sampleCSV), schema)
	require.NoError(t, err)

	assert.Equal(t, 5, table.NumRows())
	assert.Equal(t, []string{"cabin", "fare", "survived"}, table.ColumnNames())

	cabin, err := table.Categorical("cabin")
	require.NoError(t, err)
	assert.Equal(t, "C85", cabin.Label(0))
	assert.True(t, cabin.IsMissing(1))

	fare, err := table.Numeric("fare")
	require.NoError(t, err)
	assert.InDelta(t, 71.28, fare[0], 1e-9)
	assert.True(t, math.IsNaN(fare[2]), "missing marker loads as NaN")
	assert.True(t, math.IsNaN(fare[3]), "unparseable value loads as NaN")

	// The id column was not in the schema and is not loaded.
	_, err = table.Categorical("id")
	assert.Error(t, err)
}

func TestReadCSVMissingSchemaColumn(t *testing.T) {
	schema := Schema{Fields: []Field{{Name: "nope", Kind: Categorical}}}
	_, err := ReadCSV(strings.NewReader(sampleCSV), schema)
	assert.Error(t, err)
}

func TestReadCSVEmptySchema(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(sampleCSV), Schema{})
	assert.Error(t, err)
}

func TestReadCSVCustomMarkers(t *testing.T) {
	schema := Schema{
		Fields:         []Field{{Name: "cabin", Kind: Categorical}},
		MissingMarkers: []string{"C85"},
	}
	table, err := ReadCSV(strings.NewReader(sampleCSV), schema)
	require.NoError(t, err)

	cabin, err := table.Categorical("cabin")
	require.NoError(t, err)
	assert.True(t, cabin.IsMissing(0))
	// The empty string is no longer a marker.
	assert.False(t, cabin.IsMissing(1))
}

func TestTableSplit(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "cabin", Kind: Categorical},
		{Name: "survived", Kind: Numeric},
	}}
	table, err := ReadCSV(strings.NewReader(sampleCSV), schema)
	require.NoError(t, err)

	train, test, err := table.Split(0.4, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, test.NumRows())
	assert.Equal(t, 3, train.NumRows())

	// Same seed reproduces the same partition.
	train2, test2, err := table.Split(0.4, 7)
	require.NoError(t, err)
	trainCabin, _ := train.Categorical("cabin")
	trainCabin2, _ := train2.Categorical("cabin")
	for i := 0; i < trainCabin.Len(); i++ {
		assert.Equal(t, trainCabin.Label(i), trainCabin2.Label(i))
		assert.Equal(t, trainCabin.IsMissing(i), trainCabin2.IsMissing(i))
	}
	assert.Equal(t, 2, test2.NumRows())
}

func TestTableSplitValidation(t *testing.T) {
	table, err := NewTable(NewColumn("a", []string{"x", "y"}))
	require.NoError(t, err)

	for _, frac := range []float64{0, 1, -0.5, 2} {
		_, _, err := table.Split(frac, 1)
		assert.Error(t, err, "fraction %v must be rejected", frac)
	}
}

func TestNewTableValidation(t *testing.T) {
	_, err := NewTable(
		NewColumn("a", []string{"x", "y"}),
		NewColumn("b", []string{"x"}),
	)
	assert.Error(t, err, "length mismatch must be rejected")

	_, err = NewTable(
		NewColumn("a", []string{"x"}),
		NewColumn("a", []string{"y"}),
	)
	assert.Error(t, err, "duplicate names must be rejected")
}
