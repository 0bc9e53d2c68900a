package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeUTF8PassesThrough(t *testing.T) {
	for _, name := range []string{"", "UTF-8", "utf8"} {
		out, err := Encode("héllo", name)
		require.NoError(t, err)
		assert.Equal(t, []byte("héllo"), out)
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []byte
	}{
		{"ISO-8859-1", "é", []byte{0xE9}},
		{"ISO8859_1", "é", []byte{0xE9}},
		{"Shift_JIS", "ア", []byte{0x83, 0x41}},
		{"SJIS", "ア", []byte{0x83, 0x41}},
		{"windows-1252", "€", []byte{0x80}},
		{"Cp1252", "€", []byte{0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Encode(tt.text, tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEncodeUnrepresentable(t *testing.T) {
	_, err := Encode("ア", "ISO-8859-1")
	assert.Error(t, err)
}

func TestLookupUnsupported(t *testing.T) {
	_, err := Lookup("no-such-charset")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestDecode(t *testing.T) {
	s, err := Decode([]byte{0x83, 0x41}, "Shift_JIS")
	require.NoError(t, err)
	assert.Equal(t, "ア", s)

	s, err = Decode([]byte("plain"), "")
	require.NoError(t, err)
	assert.Equal(t, "plain", s)
}
