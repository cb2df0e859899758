package codec

// None is the identity codec. It exists so compression can be disabled
// without changing the snapshot format.
type None struct{}

// Compress returns the payload unchanged.
func (None) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns the payload unchanged.
func (None) Decompress(data []byte) ([]byte, error) { return data, nil }

// Name returns the unique name of the codec ("none").
func (None) Name() string { return "none" }
