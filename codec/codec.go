// Package codec centralizes snapshot payload compression.
//
// Codec selection is a persistence boundary: snapshot headers store the
// codec name, and a reader selects the codec by that name. Renaming or
// removing a codec makes previously persisted bytes undecodable.
package codec

import "errors"

// ErrUnknownCodec is returned when a persisted header names a codec this
// build does not provide.
var ErrUnknownCodec = errors.New("codec: unknown codec")

// Codec compresses and decompresses byte payloads.
// Implementations must be safe for concurrent use.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
	Name() string
}

// Default is the codec used when none is selected explicitly.
var Default Codec = Zstd{}

// ByName returns a built-in codec by its stable name.
//
// This is used by self-describing persistence formats that store the codec
// name in their header.
func ByName(name string) (Codec, bool) {
	switch name {
	case "zstd":
		return Zstd{}, true
	case "lz4":
		return LZ4{}, true
	case "none":
		return None{}, true
	default:
		return nil, false
	}
}
