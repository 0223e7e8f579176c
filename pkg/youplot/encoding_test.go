package youplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		encoding string
		want     string
	}{
		{"utf-8 passthrough", []byte("a\tb\n"), "", "a\tb\n"},
		{"shift_jis", []byte{0x82, 0xa0, '\n'}, "shift_jis", "あ\n"},
		{"latin1", []byte{0xe9}, "iso-8859-1", "é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decode(tt.input, tt.encoding)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeUnknownEncoding(t *testing.T) {
	_, err := decode([]byte("x"), "no-such-encoding")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-encoding")
}
