// Package snapshot persists fill results as self-describing binary blobs.
//
// A snapshot is a fixed header followed by a compressed body. The header
// records the volume geometry and the codec name, so a reader needs no
// out-of-band information to decode the body.
package snapshot

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/hupe1980/tracego/blobstore"
	"github.com/hupe1980/tracego/codec"
	"github.com/hupe1980/tracego/engine"
)

const (
	// MagicNumber identifies fill snapshot blobs (ASCII: "FIL1").
	MagicNumber = 0x46494C31
	// Version is the current snapshot format version (v1.0.0).
	Version = 0x00010000
)

// maxBodyLen bounds the compressed body size accepted from a header. The
// checksum covers only the body, so the declared length is untrusted and
// must not reach make unchecked.
const maxBodyLen = 1 << 30

var (
	ErrInvalidMagic     = errors.New("snapshot: invalid magic number")
	ErrInvalidVersion   = errors.New("snapshot: unsupported version")
	ErrChecksum         = errors.New("snapshot: body checksum mismatch")
	ErrTruncated        = errors.New("snapshot: truncated body")
	ErrBodyTooLarge     = errors.New("snapshot: declared body length exceeds limit")
	ErrVoxelOutOfBounds = errors.New("snapshot: voxel outside recorded bounds")
)

var crcTable = crc32.MakeTable(crc32.Castagnoli)

// fileHeader is the fixed-size, little-endian header at the start of every
// snapshot blob.
type fileHeader struct {
	Magic    uint32
	Version  uint32
	Codec    [8]byte
	Width    uint32
	Height   uint32
	Depth    uint32
	SpacingX float64
	SpacingY float64
	SpacingZ float64
	Ceiling  float64
	Units    [16]byte
	Checksum uint32 // CRC32-C of the compressed body
	BodyLen  uint64
}

func fixedString(dst []byte, s string) {
	copy(dst, s)
}

func trimString(b []byte) string {
	i := bytes.IndexByte(b, 0)
	if i < 0 {
		i = len(b)
	}
	return string(b[:i])
}

// Write encodes the fill and writes a complete snapshot blob.
func Write(w io.Writer, fill *engine.Fill, c codec.Codec) error {
	if c == nil {
		c = codec.Default
	}

	var raw bytes.Buffer
	_ = binary.Write(&raw, binary.LittleEndian, uint64(fill.Len()))
	fill.Walk(func(x, y, z int, cost float64) {
		_ = binary.Write(&raw, binary.LittleEndian, uint32(x))
		_ = binary.Write(&raw, binary.LittleEndian, uint32(y))
		_ = binary.Write(&raw, binary.LittleEndian, uint32(z))
		_ = binary.Write(&raw, binary.LittleEndian, cost)
	})

	body, err := c.Compress(raw.Bytes())
	if err != nil {
		return fmt.Errorf("snapshot: compress body: %w", err)
	}

	width, height, depth := fill.Bounds()
	spacing := fill.Spacing()

	header := fileHeader{
		Magic:    MagicNumber,
		Version:  Version,
		Width:    uint32(width),
		Height:   uint32(height),
		Depth:    uint32(depth),
		SpacingX: spacing.X,
		SpacingY: spacing.Y,
		SpacingZ: spacing.Z,
		Ceiling:  fill.Ceiling(),
		Checksum: crc32.Checksum(body, crcTable),
		BodyLen:  uint64(len(body)),
	}
	fixedString(header.Codec[:], c.Name())
	fixedString(header.Units[:], spacing.Units)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	_, err = w.Write(body)
	return err
}

// Read decodes a snapshot blob back into a fill.
func Read(r io.Reader) (*engine.Fill, error) {
	var header fileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	if header.Magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
	}
	if header.Version != Version {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, header.Version)
	}

	codecName := trimString(header.Codec[:])
	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", codec.ErrUnknownCodec, codecName)
	}

	if header.BodyLen > maxBodyLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrBodyTooLarge, header.BodyLen)
	}

	body := make([]byte, header.BodyLen)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	if crc32.Checksum(body, crcTable) != header.Checksum {
		return nil, ErrChecksum
	}

	raw, err := c.Decompress(body)
	if err != nil {
		return nil, fmt.Errorf("snapshot: decompress body: %w", err)
	}

	spacing := engine.Spacing{
		X:     header.SpacingX,
		Y:     header.SpacingY,
		Z:     header.SpacingZ,
		Units: trimString(header.Units[:]),
	}
	fill := engine.NewFill(int(header.Width), int(header.Height), int(header.Depth), spacing, header.Ceiling)

	br := bytes.NewReader(raw)
	var count uint64
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	for range count {
		var x, y, z uint32
		var cost float64
		if err := binary.Read(br, binary.LittleEndian, &x); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		if err := binary.Read(br, binary.LittleEndian, &y); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		if err := binary.Read(br, binary.LittleEndian, &z); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		if err := binary.Read(br, binary.LittleEndian, &cost); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		if x >= header.Width || y >= header.Height || z >= header.Depth {
			return nil, fmt.Errorf("%w: (%d, %d, %d)", ErrVoxelOutOfBounds, x, y, z)
		}
		fill.Mark(int(x), int(y), int(z), cost)
	}
	return fill, nil
}

// Save writes the fill to a blob store under the given name.
func Save(ctx context.Context, store blobstore.Store, name string, fill *engine.Fill, c codec.Codec) error {
	var buf bytes.Buffer
	if err := Write(&buf, fill, c); err != nil {
		return err
	}
	return store.Put(ctx, name, buf.Bytes())
}

// Load reads a fill snapshot from a blob store.
func Load(ctx context.Context, store blobstore.Store, name string) (*engine.Fill, error) {
	data, err := store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return Read(bytes.NewReader(data))
}
