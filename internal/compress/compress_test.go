package compress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecs(t *testing.T) {
	payload := []byte(`{"title":"` + strings.Repeat("яблоко ", 200) + `"}`)

	for _, name := range []string{"none", "gzip", "lz4", "brotli"} {
		t.Run(name, func(t *testing.T) {
			codec, err := New(name)
			require.NoError(t, err)

			encoded, err := codec.Encode(payload)
			require.NoError(t, err)
			if name != "none" {
				assert.Less(t, len(encoded), len(payload))
			}

			decoded, err := codec.Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, payload, decoded)
		})
	}
}

func TestNew_Unknown(t *testing.T) {
	_, err := New("zstd")
	assert.ErrorIs(t, err, ErrUnknownCompression)
}
