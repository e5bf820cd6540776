package pathstore_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reentry/builder"
	"github.com/katalvlaran/reentry/cycle"
	"github.com/katalvlaran/reentry/geometry"
	"github.com/katalvlaran/reentry/pathstore"
	"github.com/katalvlaran/reentry/velocity"
)

func TestParseLiteral(t *testing.T) {
	cases := map[string][]int{
		"[0, 3, 2, 0]": {0, 3, 2, 0},
		"[7]":          {7},
		" [ 1,2 ,3 ] ": {1, 2, 3},
		"[]":           {},
	}
	for in, want := range cases {
		got, err := pathstore.ParseLiteral(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "1, 2", "[1 2]", "[a]", "[1, 2", "[4, 5,]"} {
		_, err := pathstore.ParseLiteral(bad)
		require.ErrorIs(t, err, pathstore.ErrBadLiteral, bad)
	}
}

func TestWriteRead(t *testing.T) {
	paths := [][]int{{0, 1, 2, 0}, {3, 4, 5, 6, 3}, {}}

	var buf bytes.Buffer
	require.NoError(t, pathstore.Write(&buf, paths))
	assert.Equal(t, "0\n\"[0, 1, 2, 0]\"\n\"[3, 4, 5, 6, 3]\"\n[]\n", buf.String())

	got, err := pathstore.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, paths, got)
}

func TestRead_PandasIndexColumn(t *testing.T) {
	got, err := pathstore.Read(strings.NewReader(",0\n0,\"[1, 2, 1]\"\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 1}}, got)
}

func TestRead_Errors(t *testing.T) {
	_, err := pathstore.Read(strings.NewReader(""))
	require.ErrorIs(t, err, pathstore.ErrNoHeader)

	_, err = pathstore.Read(strings.NewReader("0\n\"[1, x]\"\n"))
	require.ErrorIs(t, err, pathstore.ErrBadLiteral)
	assert.Contains(t, err.Error(), "line 2")
}

func TestSaveLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "rotors.csv")
	paths := [][]int{{0, 1, 2, 3, 0}}
	require.NoError(t, pathstore.Save(file, paths))

	got, err := pathstore.Load(file)
	require.NoError(t, err)
	assert.Equal(t, paths, got)

	_, err = pathstore.Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	m, err := builder.BuildMesh(nil, builder.Square())
	require.NoError(t, err)
	field := velocity.Uniform(m.Len(), geometry.NewPoint(1, 0, 0), 500, 2)
	b := cycle.DefaultBounds()

	a, err := pathstore.Fingerprint(m, field, b)
	require.NoError(t, err)
	again, err := pathstore.Fingerprint(m, field, b)
	require.NoError(t, err)
	assert.Equal(t, a, again)
	assert.Len(t, a, 16)

	b2 := b
	b2.MaxTime++
	other, err := pathstore.Fingerprint(m, field, b2)
	require.NoError(t, err)
	assert.NotEqual(t, a, other)

	open, err := pathstore.Fingerprint(m, field, b, "open")
	require.NoError(t, err)
	assert.NotEqual(t, a, open)

	noField, err := pathstore.Fingerprint(m, nil, b)
	require.NoError(t, err)
	assert.NotEqual(t, a, noField)

	_, err = pathstore.Fingerprint(nil, field, b)
	require.Error(t, err)
}

func TestCache(t *testing.T) {
	c, err := pathstore.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer c.Close()

	_, ok, err := c.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	rotors := [][]int{{0, 1, 2, 0}}
	require.NoError(t, c.Put("k", rotors))
	got, ok, err := c.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, rotors, got)

	require.NoError(t, c.Put("k", nil))
	got, ok, err = c.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, got)
}
