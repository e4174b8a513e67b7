package compress

import (
	"errors"
	"fmt"
)

var ErrUnknownCompression = errors.New("unknown compression")

// Compress encodes and decodes payloads stored outside the database.
type Compress interface {
	Encode(data []byte) ([]byte, error)
	Decode(data []byte) ([]byte, error)
}

var (
	_ Compress = Nop{}
	_ Compress = LZ4{}
	_ Compress = Brotli{}
)

// Nop stores payloads as they are.
type Nop struct{}

func NewNop() Nop {
	return Nop{}
}

func (Nop) Encode(data []byte) ([]byte, error) {
	return data, nil
}

func (Nop) Decode(data []byte) ([]byte, error) {
	return data, nil
}

// New returns the codec registered under name: "none", "gzip", "lz4" or "brotli".
func New(name string) (Compress, error) {
	switch name {
	case "", "none":
		return NewNop(), nil
	case "gzip":
		return NewGZip(), nil
	case "lz4":
		return NewLZ4(), nil
	case "brotli":
		return NewBrotli(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
	}
}
