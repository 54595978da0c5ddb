package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	startTime := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(startTime, "8f0c7a2e-session")
	assert.NotEmpty(t, token)

	decodedTime, decodedID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, startTime.Equal(decodedTime))
	assert.Equal(t, "8f0c7a2e-session", decodedID)
}

func TestEncodeToken_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	local := time.Date(2023, 5, 15, 16, 0, 0, 0, loc)

	decoded, _, err := DecodeToken(EncodeToken(local, "id"))
	require.NoError(t, err)
	assert.True(t, local.Equal(decoded))
	assert.Equal(t, time.UTC, decoded.Location())
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.URLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z"))
	_, _, err = DecodeToken(noSeparator)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badTime := base64.URLEncoding.EncodeToString([]byte("notadate|abc"))
	_, _, err = DecodeToken(badTime)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "time parse")
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-4))
	assert.Equal(t, 15, NormalizeLimit(15))
	assert.Equal(t, MaxLimit, NormalizeLimit(1000))
}
