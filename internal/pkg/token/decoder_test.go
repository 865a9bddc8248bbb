package token

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func TestDecode(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"sub":  "jane@example.com",
		"role": "ADMIN",
	})

	identity, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", identity.Email)
	assert.Equal(t, "ADMIN", identity.Role)
}

func TestDecodeMissingRole(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{"sub": "jane@example.com"})

	identity, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", identity.Email)
	assert.Empty(t, identity.Role)
}

func TestDecodeMissingSubject(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{"role": "STUDENT"})

	_, err := Decode(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing subject")
}

func TestDecodeMalformed(t *testing.T) {
	cases := []string{
		"",
		"not-a-token",
		"only.two",
		"bad.!!!not-base64!!!.segments",
	}
	for _, raw := range cases {
		_, err := Decode(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}

func TestDecodeIgnoresSignature(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{"sub": "jane@example.com", "role": "STUDENT"})

	// Corrupt the signature segment; the payload must still decode.
	tampered := raw[:len(raw)-4] + "AAAA"
	identity, err := Decode(tampered)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", identity.Email)
}
