package datasource_test

import (
	"strings"
	"testing"

	"github.com/kkrpk/lock-free-pc-MDF/datasource"
	"github.com/stretchr/testify/require"
)

func TestLoadVariablesBySamples(t *testing.T) {
	csv := "1.0,2.0,3.0\n4.0,5.0,6.0\n"
	m, err := datasource.Load(strings.NewReader(csv), datasource.Options{Orientation: datasource.VariablesBySamples})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	v, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}

func TestLoadSamplesByVariablesTransposes(t *testing.T) {
	// 3 samples (rows) x 2 variables (columns); after transpose, 2
	// variables (rows) x 3 samples (columns).
	csv := "1.0,10.0\n2.0,20.0\n3.0,30.0\n"
	m, err := datasource.Load(strings.NewReader(csv), datasource.Options{Orientation: datasource.SamplesByVariables})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 30.0, v)
}

func TestLoadSkipsHeader(t *testing.T) {
	csv := "a,b,c\n1.0,2.0,3.0\n"
	m, err := datasource.Load(strings.NewReader(csv), datasource.Options{Orientation: datasource.VariablesBySamples, HasHeader: true})
	require.NoError(t, err)
	require.Equal(t, 1, m.Rows())
	require.Equal(t, 3, m.Cols())
}

func TestLoadRejectsRaggedRows(t *testing.T) {
	csv := "1.0,2.0,3.0\n4.0,5.0\n"
	_, err := datasource.Load(strings.NewReader(csv), datasource.Options{Orientation: datasource.VariablesBySamples})
	require.ErrorIs(t, err, datasource.ErrRaggedRow)
}

func TestLoadRejectsNonNumericCells(t *testing.T) {
	csv := "1.0,foo,3.0\n"
	_, err := datasource.Load(strings.NewReader(csv), datasource.Options{Orientation: datasource.VariablesBySamples})
	require.ErrorIs(t, err, datasource.ErrNotNumeric)
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	_, err := datasource.Load(strings.NewReader(""), datasource.Options{Orientation: datasource.VariablesBySamples})
	require.ErrorIs(t, err, datasource.ErrEmptyFile)
}
