package filecmp

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestCompareBytes(t *testing.T) {
	data := []byte("0123456789")
	changed := []byte("01234X6789")

	tests := []struct {
		name       string
		a, b       []byte
		mismatches int
		offsets    []int
		ok         bool
	}{
		{name: "identical", a: data, b: data, ok: true},
		{name: "both empty", a: nil, b: []byte{}, ok: true},
		{name: "offset five", a: data, b: changed, mismatches: 1, offsets: []int{5}},
		{name: "every byte", a: []byte{1, 2, 3}, b: []byte{4, 5, 6}, mismatches: 3, offsets: []int{0, 1, 2}},
		{name: "truncated", a: data, b: data[:4], ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CompareBytes(tt.a, tt.b, true)
			assert.Equal(t, tt.mismatches, r.Mismatches)
			assert.Equal(t, tt.offsets, r.Offsets)
			assert.Equal(t, tt.ok, r.OK())
			assert.Equal(t, len(tt.a), r.LenA)
			assert.Equal(t, len(tt.b), r.LenB)
		})
	}
}

func TestCompareBytesWithoutOffsets(t *testing.T) {
	r := CompareBytes([]byte("abc"), []byte("abd"), false)
	assert.Equal(t, 1, r.Mismatches)
	assert.Nil(t, r.Offsets)
}

func TestCompareFiles(t *testing.T) {
	a := writeTemp(t, "origin", []byte("0123456789"))
	same := writeTemp(t, "same", []byte("0123456789"))
	diff := writeTemp(t, "diff", []byte("01234_6789"))

	r, err := CompareFiles(a, same, false)
	require.NoError(t, err)
	assert.True(t, r.OK())

	var out bytes.Buffer
	_, err = r.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, "len: 10 (first) VS 10 (second)\nFiles are identical.\n", out.String())

	r, err = CompareFiles(a, diff, true)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Mismatches)
	assert.Equal(t, []int{5}, r.Offsets)

	out.Reset()
	n, err := r.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(out.Len()), n)
	assert.Equal(t,
		"len: 10 (first) VS 10 (second)\nmismatch at offset 5 / 5\nFiles differ.\nTotal mismatches: 1\n",
		out.String())
}

func TestCompareFilesIOFailure(t *testing.T) {
	present := writeTemp(t, "present", []byte("x"))
	missing := filepath.Join(t.TempDir(), "missing")

	_, err := CompareFiles(missing, present, false)
	require.ErrorIs(t, err, ErrIOFailure)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = CompareFiles(present, missing, false)
	require.ErrorIs(t, err, ErrIOFailure)

	// A directory opens but cannot be read.
	_, err = CompareFiles(t.TempDir(), present, false)
	require.ErrorIs(t, err, ErrIOFailure)
}
