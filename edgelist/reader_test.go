// Package edgelist_test covers the text codec and in-memory sources.
package edgelist_test

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/katalvlaran/lvrank/edgelist"
	"github.com/stretchr/testify/require"
)

// TestReader_ParsesPairs checks whitespace variants, comments and blank lines.
func TestReader_ParsesPairs(t *testing.T) {
	in := "# header\n1 2\n\n2\t3\n// note\n  3   1  \r\n"
	got, err := edgelist.ReadAll(edgelist.NewReader(strings.NewReader(in)))
	require.NoError(t, err)
	require.Equal(t, []edgelist.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 1}}, got)
}

// TestReader_Malformed asserts every malformed shape fails with ErrMalformedEdge.
func TestReader_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line int
	}{
		{"one token", "1 2\n3\n", 2},
		{"three tokens", "1 2 3\n", 1},
		{"non-integer source", "a 2\n", 1},
		{"non-integer destination", "1 2\n\n1 2.5\n", 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := edgelist.NewReader(strings.NewReader(tc.in))
			_, err := edgelist.ReadAll(r)
			require.ErrorIs(t, err, edgelist.ErrMalformedEdge)
			require.Equal(t, tc.line, r.Line())
		})
	}
}

// TestReader_LineTooLong treats an over-long line as a malformed record
// while plain read failures keep their own identity.
func TestReader_LineTooLong(t *testing.T) {
	in := "1 2\n" + strings.Repeat("9", bufio.MaxScanTokenSize+1) + " 1\n"
	_, err := edgelist.ReadAll(edgelist.NewReader(strings.NewReader(in)))
	require.ErrorIs(t, err, edgelist.ErrMalformedEdge)
	require.ErrorIs(t, err, bufio.ErrTooLong)
	require.ErrorContains(t, err, "line 2")

	boom := errors.New("disk gone")
	_, err = edgelist.ReadAll(edgelist.NewReader(iotest.ErrReader(boom)))
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, edgelist.ErrMalformedEdge)
}

// TestReader_StopsAfterFailure ensures Next stays false after an error.
func TestReader_StopsAfterFailure(t *testing.T) {
	r := edgelist.NewReader(strings.NewReader("x y\n1 2\n"))
	_, ok := r.Next()
	require.False(t, ok)
	_, ok = r.Next()
	require.False(t, ok)
	require.ErrorIs(t, r.Err(), edgelist.ErrMalformedEdge)
}

// TestReader_Nil reports ErrNilReader instead of panicking.
func TestReader_Nil(t *testing.T) {
	_, err := edgelist.ReadAll(edgelist.NewReader(nil))
	require.ErrorIs(t, err, edgelist.ErrNilReader)
}

// TestWrite_RoundTrip writes edges and reads them back.
func TestWrite_RoundTrip(t *testing.T) {
	edges := []edgelist.Edge{{From: 1, To: 2}, {From: 1, To: 3}, {From: 3, To: 1}}
	var buf bytes.Buffer
	require.NoError(t, edgelist.Write(&buf, edges))
	require.Equal(t, "1 2\n1 3\n3 1\n", buf.String())

	back, err := edgelist.ReadAll(edgelist.NewReader(&buf))
	require.NoError(t, err)
	require.Equal(t, edges, back)
}

// TestSlice_SinglePass verifies exhaustion semantics.
func TestSlice_SinglePass(t *testing.T) {
	s := edgelist.FromSlice([]edgelist.Edge{{From: 1, To: 1}})
	e, ok := s.Next()
	require.True(t, ok)
	require.Equal(t, "1 1", e.String())
	_, ok = s.Next()
	require.False(t, ok)
	require.NoError(t, s.Err())
}
