package codec

import "github.com/klauspost/compress/zstd"

// Shared stateless encoder/decoder; EncodeAll/DecodeAll on these are safe
// for concurrent use.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	zstdDecoder, _ = zstd.NewReader(nil)
)

// Zstd is a codec backed by github.com/klauspost/compress/zstd. It is the
// default: 2-3x smaller snapshots at close to lz4 speed.
type Zstd struct{}

// Compress returns the zstd-compressed payload.
func (Zstd) Compress(data []byte) ([]byte, error) {
	return zstdEncoder.EncodeAll(data, nil), nil
}

// Decompress returns the decompressed payload.
func (Zstd) Decompress(data []byte) ([]byte, error) {
	return zstdDecoder.DecodeAll(data, nil)
}

// Name returns the unique name of the codec ("zstd").
func (Zstd) Name() string { return "zstd" }
