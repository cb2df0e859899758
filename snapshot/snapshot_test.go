package snapshot

import (
	"bytes"
	"context"
	"encoding/binary"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tracego/blobstore"
	"github.com/hupe1980/tracego/codec"
	"github.com/hupe1980/tracego/engine"
)

func sampleFill() *engine.Fill {
	spacing := engine.Spacing{X: 0.5, Y: 0.5, Z: 2.0, Units: "um"}
	fill := engine.NewFill(16, 16, 8, spacing, 12.5)
	fill.Mark(0, 0, 0, 0)
	fill.Mark(1, 0, 0, 0.5)
	fill.Mark(0, 1, 0, 0.5)
	fill.Mark(5, 7, 3, 9.25)
	fill.Mark(15, 15, 7, 12.5)
	return fill
}

func assertFillsEqual(t *testing.T, want, got *engine.Fill) {
	t.Helper()

	ww, wh, wd := want.Bounds()
	gw, gh, gd := got.Bounds()
	assert.Equal(t, [3]int{ww, wh, wd}, [3]int{gw, gh, gd})
	assert.Equal(t, want.Spacing(), got.Spacing())
	assert.Equal(t, want.Ceiling(), got.Ceiling())

	require.Equal(t, want.Len(), got.Len())
	want.Walk(func(x, y, z int, cost float64) {
		g, ok := got.CostAt(x, y, z)
		require.True(t, ok, "missing voxel (%d,%d,%d)", x, y, z)
		assert.Equal(t, cost, g)
	})
}

func TestRoundTrip(t *testing.T) {
	for _, c := range []codec.Codec{codec.Zstd{}, codec.LZ4{}, codec.None{}} {
		t.Run(c.Name(), func(t *testing.T) {
			fill := sampleFill()

			var buf bytes.Buffer
			require.NoError(t, Write(&buf, fill, c))

			got, err := Read(bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)
			assertFillsEqual(t, fill, got)
		})
	}
}

func TestWriteDefaultsCodec(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleFill(), nil))

	got, err := Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assertFillsEqual(t, sampleFill(), got)
}

func TestReadRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleFill(), codec.None{}))

	data := buf.Bytes()
	binary.LittleEndian.PutUint32(data[0:4], 0xDEADBEEF)

	_, err := Read(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrInvalidMagic)
}

func TestReadRejectsBadVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleFill(), codec.None{}))

	data := buf.Bytes()
	binary.LittleEndian.PutUint32(data[4:8], 0x00990000)

	_, err := Read(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrInvalidVersion)
}

func TestReadRejectsOversizedBody(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleFill(), codec.None{}))

	// The checksum does not cover the header, so a corrupted length
	// must be refused before it reaches an allocation.
	data := buf.Bytes()
	binary.LittleEndian.PutUint64(data[80:88], 1<<40)

	_, err := Read(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrBodyTooLarge)
}

func TestReadRejectsOutOfBoundsVoxel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleFill(), codec.None{}))

	// Move the first voxel's x outside the 16-wide volume, patching the
	// checksum so only the bounds check can reject the blob.
	data := buf.Bytes()
	binary.LittleEndian.PutUint32(data[96:100], 99)
	binary.LittleEndian.PutUint32(data[76:80], crc32.Checksum(data[88:], crcTable))

	_, err := Read(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrVoxelOutOfBounds)
}

func TestReadDetectsCorruptBody(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleFill(), codec.None{}))

	data := buf.Bytes()
	data[len(data)-1] ^= 0xFF

	_, err := Read(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestReadDetectsTruncation(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleFill(), codec.None{}))

	data := buf.Bytes()
	_, err := Read(bytes.NewReader(data[:len(data)-4]))
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	fill := sampleFill()

	require.NoError(t, Save(ctx, store, "fills/run-1", fill, codec.Zstd{}))

	names, err := store.List(ctx, "fills/")
	require.NoError(t, err)
	assert.Equal(t, []string{"fills/run-1"}, names)

	got, err := Load(ctx, store, "fills/run-1")
	require.NoError(t, err)
	assertFillsEqual(t, fill, got)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(context.Background(), blobstore.NewMemoryStore(), "absent")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
