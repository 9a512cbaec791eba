package fusevec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fusevec"
)

func TestAt(t *testing.T) {
	v := fusevec.Of(10, 20, 30)

	tests := []struct {
		name    string
		i       int
		want    int
		wantErr bool
	}{
		{name: "First", i: 0, want: 10},
		{name: "Last", i: 2, want: 30},
		{name: "Negative", i: -1, wantErr: true},
		{name: "AtLength", i: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fusevec.At(v, tt.i)
			if tt.wantErr {
				assert.ErrorIs(t, err, fusevec.ErrOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndexApply(t *testing.T) {
	v := fusevec.Of("a", "bb", "ccc")

	n, err := fusevec.IndexApply(v, 2, func(s string) int { return len(s) })
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = fusevec.IndexApply(v, 9, func(s string) int { return len(s) })
	assert.ErrorIs(t, err, fusevec.ErrOutOfRange)
}

func TestHeadLast(t *testing.T) {
	v := fusevec.Of(1, 2, 3)

	h, err := fusevec.Head(v)
	require.NoError(t, err)
	assert.Equal(t, 1, h)

	l, err := fusevec.Last(v)
	require.NoError(t, err)
	assert.Equal(t, 3, l)

	_, err = fusevec.Head(fusevec.Empty[int]())
	assert.ErrorIs(t, err, fusevec.ErrEmpty)

	_, err = fusevec.Last(fusevec.Empty[int]())
	assert.ErrorIs(t, err, fusevec.ErrEmpty)
}
