package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("voxel voxel voxel "), 512)

	for _, c := range []Codec{Zstd{}, LZ4{}, None{}} {
		t.Run(c.Name(), func(t *testing.T) {
			compressed, err := c.Compress(payload)
			require.NoError(t, err)

			out, err := c.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, payload, out)
		})
	}
}

func TestCompressionShrinksRepetitiveData(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB}, 1<<16)

	for _, c := range []Codec{Zstd{}, LZ4{}} {
		t.Run(c.Name(), func(t *testing.T) {
			compressed, err := c.Compress(payload)
			require.NoError(t, err)
			assert.Less(t, len(compressed), len(payload)/4)
		})
	}
}

func TestEmptyPayload(t *testing.T) {
	for _, c := range []Codec{Zstd{}, LZ4{}, None{}} {
		t.Run(c.Name(), func(t *testing.T) {
			compressed, err := c.Compress(nil)
			require.NoError(t, err)

			out, err := c.Decompress(compressed)
			require.NoError(t, err)
			assert.Empty(t, out)
		})
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"zstd", "lz4", "none"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("snappy")
	assert.False(t, ok)
}

func TestDefault(t *testing.T) {
	assert.Equal(t, "zstd", Default.Name())
}
