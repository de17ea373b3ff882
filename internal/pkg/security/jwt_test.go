package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	tokenString, err := GenerateToken(42, []string{"USER", "ADMIN"})
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, []string{"USER", "ADMIN"}, claims.Roles)
	assert.Equal(t, "SocialPulse", claims.Issuer)
}

func TestValidateTokenTampered(t *testing.T) {
	tokenString, err := GenerateToken(42, []string{"USER"})
	require.NoError(t, err)

	parts := strings.Split(tokenString, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".invalidsignature"

	_, err = ValidateToken(tampered)
	assert.Error(t, err)
}

func TestExtractSignature(t *testing.T) {
	tokenString, err := GenerateToken(1, nil)
	require.NoError(t, err)

	signature, err := ExtractSignature(tokenString)
	require.NoError(t, err)
	assert.Equal(t, strings.Split(tokenString, ".")[2], signature)

	_, err = ExtractSignature("not-a-jwt")
	assert.Error(t, err)
}
