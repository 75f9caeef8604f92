package services

import (
	"testing"
	"time"

	"Backend-WMS-ROI/src/utils"

	"github.com/stretchr/testify/assert"
)

func TestBlacklistTTLTracksTokenExpiry(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "consultant@example.com", "consultant")
	assert.NoError(t, err)

	ttl := blacklistTTL(token)

	// tokens live 24h, so a fresh one needs close to the full window
	assert.Greater(t, ttl, 23*time.Hour)
	assert.LessOrEqual(t, ttl, 24*time.Hour)
}

func TestBlacklistTTLFallsBackForGarbage(t *testing.T) {
	assert.Equal(t, 24*time.Hour, blacklistTTL("not-a-jwt"))
	assert.Equal(t, 24*time.Hour, blacklistTTL(""))
}
