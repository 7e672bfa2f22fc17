package sealer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, 32)
}

func TestSealOpen(t *testing.T) {
	s, err := New(testKey(1))
	require.NoError(t, err)

	token, err := s.Seal("5b0c1c1e-6f7a-4d1b-9a38-0e3f3f6f9b2a")
	require.NoError(t, err)
	assert.NotContains(t, token, "5b0c1c1e")

	got, err := s.Open(token)
	require.NoError(t, err)
	assert.Equal(t, "5b0c1c1e-6f7a-4d1b-9a38-0e3f3f6f9b2a", got)
}

func TestSeal_NonceMakesTokensDistinct(t *testing.T) {
	s, err := New(testKey(1))
	require.NoError(t, err)

	a, _ := s.Seal("same")
	b, _ := s.Seal("same")
	assert.NotEqual(t, a, b)
}

func TestOpen_Rejects(t *testing.T) {
	s, err := New(testKey(1))
	require.NoError(t, err)
	other, err := New(testKey(2))
	require.NoError(t, err)

	token, err := s.Seal("value")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		open  *Sealer
	}{
		{"wrong key", token, other},
		{"not base64", "%%%", s},
		{"too short", "AAAA", s},
		{"tampered", token[:len(token)-2] + "AA", s},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.open.Open(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestNew_BadKeyLength(t *testing.T) {
	_, err := New([]byte("short"))
	assert.Error(t, err)
}
