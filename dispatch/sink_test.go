package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSinkFunc(t *testing.T) {
	var got []int
	sink := SinkFunc(func(text []byte, length, index, total int) {
		got = append(got, length, index, total)
	})
	sink.Emit([]byte("abc"), 3, 1, 2)
	assert.Equal(t, []int{3, 1, 2}, got)
}

func TestCollectorReset(t *testing.T) {
	c := &Collector{}
	c.Emit([]byte("a"), 1, 0, 1)
	assert.Equal(t, []string{"a"}, c.Texts())
	c.Reset()
	assert.Empty(t, c.Emissions)
}

func TestEncodingSink(t *testing.T) {
	tests := []struct {
		charset string
		text    string
		want    string
		length  int
	}{
		{"", "café", "café", 5},
		{"UTF-8", "café", "café", 5},
		{"ISO-8859-1", "café", "caf\xe9", 4},
		{"Shift_JIS", "アイ", "\x83\x41\x83\x43", 4},
		{"ISO-8859-1", "アイ", "アイ", 6},
		{"no-such-charset", "abc", "abc", 3},
	}
	for _, tt := range tests {
		t.Run(tt.charset+"/"+tt.text, func(t *testing.T) {
			c := &Collector{}
			sink := NewEncodingSink(c, tt.charset, nil)
			sink.Emit([]byte(tt.text), len(tt.text), 0, 1)
			assert.Equal(t, []Emission{{Text: tt.want, Length: tt.length, Index: 0, Total: 1}}, c.Emissions)
		})
	}
}
