package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/navijation/njcontainers/util/heap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestReadValues(t *testing.T) {
	t.Parallel()

	t.Run("arguments win", func(t *testing.T) {
		values, err := readValues([]string{"b", "a"}, strings.NewReader("c\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, values)
	})

	t.Run("lines from reader", func(t *testing.T) {
		values, err := readValues(nil, strings.NewReader("  10\n\n2.5 \n-3\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"10", "2.5", "-3"}, values)
	})
}

func TestSortValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		values  []string
		exclude []string
		args    orderArgs
		want    string
	}{
		{
			name:   "numeric",
			values: []string{"38", "23", "36", "32", "10", "45", "57"},
			args:   orderArgs{Numeric: true},
			want:   "10\n23\n32\n36\n38\n45\n57\n",
		},
		{
			name:   "numeric reverse",
			values: []string{"1", "2", "3", "4", "5"},
			args:   orderArgs{Numeric: true, Reverse: true},
			want:   "5\n4\n3\n2\n1\n",
		},
		{
			name:    "numeric exclude",
			values:  []string{"1", "2", "3", "4", "5"},
			exclude: []string{"3", "3.0", "99"},
			args:    orderArgs{Numeric: true},
			want:    "1\n2\n4\n5\n",
		},
		{
			name:   "text",
			values: []string{"zebra", "éclair", "apple", "Eagle"},
			args:   orderArgs{Locale: language.Und},
			want:   "apple\nEagle\néclair\nzebra\n",
		},
		{
			name:    "text exclude",
			values:  []string{"b", "a", "b"},
			exclude: []string{"b"},
			want:    "a\nb\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, sortValues(&out, tt.values, tt.exclude, tt.args))
			assert.Equal(t, tt.want, out.String())
		})
	}

	t.Run("not a number", func(t *testing.T) {
		var out bytes.Buffer
		err := sortValues(&out, []string{"1", "two"}, nil, orderArgs{Numeric: true})
		assert.ErrorContains(t, err, `"two"`)
		assert.Empty(t, out.String())
	})
}

func TestTopValues(t *testing.T) {
	t.Parallel()

	t.Run("numeric", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, topValues(&out, []string{"5", "1", "4", "2", "3"}, 2, orderArgs{Numeric: true}))
		assert.Equal(t, "1\n2\n", out.String())
	})

	t.Run("numeric reverse", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, topValues(&out, []string{"5", "1", "4", "2", "3"}, 3, orderArgs{Numeric: true, Reverse: true}))
		assert.Equal(t, "5\n4\n3\n", out.String())
	})

	t.Run("count exceeds values", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, topValues(&out, []string{"b", "a"}, 10, orderArgs{}))
		assert.Equal(t, "a\nb\n", out.String())
	})

	t.Run("text reverse", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, topValues(&out, []string{"apple", "zebra", "mango"}, 1, orderArgs{Reverse: true}))
		assert.Equal(t, "zebra\n", out.String())
	})
}

func TestPrintTop(t *testing.T) {
	t.Parallel()

	h := heap.NewOrderedHeap(3, 1, 2)
	var out bytes.Buffer
	require.NoError(t, printTop(&out, h, 2, func(v int) string { return string(rune('0' + v)) }))

	assert.Equal(t, "1\n2\n", out.String())
	assert.Equal(t, 1, h.Size())
}
