package life_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"sparse-life/pkg/sims/life"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeed(t *testing.T) {
	input := strings.Join([]string{
		"1 2",
		"3,4",
		"5, 6",
		"",
		"  7 ,, 8  ",
		"9\t10",
		"11 12 ignored",
	}, "\n")
	seed, err := life.ParseSeed(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []life.Coord{{1, 2}, {3, 4}, {5, 6}, {7, 8}, {9, 10}, {11, 12}}, seed)
}

func TestParseSeedErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  string
	}{
		{"MissingColumn", "1 2\n3\n", "line 2"},
		{"BadRow", "x 2\n", "line 1"},
		{"BadColumn", "1 2\n\n1 y\n", "line 3"},
		{"NegativeRow", "-1 2\n", "line 1"},
		{"NegativeColumn", "0 0\n4 -4\n", "line 2"},
		{"Float", "1.5 2\n", "line 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seed, err := life.ParseSeed(strings.NewReader(tc.input))
			require.ErrorIs(t, err, life.ErrMalformedSeed)
			assert.Contains(t, err.Error(), tc.line)
			assert.Nil(t, seed)
		})
	}
}

func TestParseSeedReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := life.ParseSeed(iotest.ErrReader(boom))
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, life.ErrMalformedSeed)
}

func TestParseSeedEmpty(t *testing.T) {
	seed, err := life.ParseSeed(strings.NewReader("\n\n"))
	require.NoError(t, err)
	assert.Empty(t, seed)
	assert.Equal(t, life.Bounds{}, life.BoundsFor(seed))
}

func TestBoundsFor(t *testing.T) {
	cases := []struct {
		name string
		seed []life.Coord
		want life.Bounds
	}{
		{"RowOfThree", []life.Coord{{1, 0}, {1, 1}, {1, 2}}, life.Bounds{Height: 2, Width: 2}},
		{"MeanDominates", []life.Coord{{10, 1}, {0, 1}}, life.Bounds{Height: 10, Width: 2}},
		{"MaxDominates", []life.Coord{{0, 0}, {0, 0}, {0, 0}, {9, 9}}, life.Bounds{Height: 9, Width: 9}},
		{"IntegerMean", []life.Coord{{1, 3}, {2, 4}}, life.Bounds{Height: 2, Width: 6}},
		{"Single", []life.Coord{{4, 7}}, life.Bounds{Height: 8, Width: 14}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, life.BoundsFor(tc.seed))
		})
	}
}

func TestBoundsContains(t *testing.T) {
	b := life.Bounds{Height: 3, Width: 5}
	assert.True(t, b.Contains(0, 0))
	assert.True(t, b.Contains(3, 5))
	assert.False(t, b.Contains(4, 5))
	assert.False(t, b.Contains(3, 6))
	assert.False(t, b.Contains(-1, 0))
}

func TestParseNeighborhood(t *testing.T) {
	for in, want := range map[string]life.Neighborhood{
		"": life.Orthogonal, "orthogonal": life.Orthogonal, "4": life.Orthogonal,
		"Moore": life.Moore, " 8 ": life.Moore,
	} {
		got, err := life.ParseNeighborhood(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := life.ParseNeighborhood("hex")
	require.ErrorIs(t, err, life.ErrUnknownNeighborhood)
	assert.Len(t, life.Orthogonal.Offsets(), 4)
	assert.Len(t, life.Moore.Offsets(), 8)
}

func TestWriteCells(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, life.WriteCells(&buf, []life.Coord{{1, 1}, {2, 10}}))
	assert.Equal(t, "1, 1\n2, 10\n", buf.String())

	buf.Reset()
	require.NoError(t, life.WriteCells(&buf, nil))
	assert.Empty(t, buf.String())
}
