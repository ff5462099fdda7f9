// Copyright (c) 2026 CyberSage. All rights reserved.

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybersage/api/internal/platform/sec"
)

const testSecret = "test-secret-key-for-unit-tests"

/*
TestNewTokenService verifies constructor input validation.
*/
func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		ttl     time.Duration
		wantErr bool
	}{
		{"valid", testSecret, time.Hour, false},
		{"empty_secret", "", time.Hour, true},
		{"zero_ttl", testSecret, 0, true},
		{"negative_ttl", testSecret, -time.Minute, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := sec.NewTokenService(tt.secret, "cybersage.app", tt.ttl)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, svc)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

/*
TestTokenService_RoundTrip verifies that a minted token carries the expected
claims back through verification.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	svc, err := sec.NewTokenService(testSecret, "cybersage.app", time.Hour)
	require.NoError(t, err)

	token, err := svc.GenerateToken("user-123", "user", "frontend-developer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "frontend-developer", claims.JobRole)
	assert.Equal(t, "cybersage.app", claims.Issuer)
}

/*
TestTokenService_PrivilegedOmitsJobRole verifies that privileged tokens
carry no job-role claim.
*/
func TestTokenService_PrivilegedOmitsJobRole(t *testing.T) {
	svc, err := sec.NewTokenService(testSecret, "cybersage.app", time.Hour)
	require.NoError(t, err)

	token, err := svc.GenerateToken("admin-1", "admin", "")
	require.NoError(t, err)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "admin", claims.Role)
	assert.Empty(t, claims.JobRole)
}

/*
TestTokenService_Expired verifies that a token past its TTL fails verification.
*/
func TestTokenService_Expired(t *testing.T) {
	// Minimum positive TTL so the token is already expired by verification time.
	svc, err := sec.NewTokenService(testSecret, "cybersage.app", time.Nanosecond)
	require.NoError(t, err)

	token, err := svc.GenerateToken("user-123", "user", "qa-engineer")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	claims, err := svc.VerifyToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

/*
TestTokenService_WrongSecret verifies that tokens signed under a different
secret are rejected.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	minter, err := sec.NewTokenService("secret-a", "cybersage.app", time.Hour)
	require.NoError(t, err)
	verifier, err := sec.NewTokenService("secret-b", "cybersage.app", time.Hour)
	require.NoError(t, err)

	token, err := minter.GenerateToken("user-123", "user", "designer")
	require.NoError(t, err)

	claims, err := verifier.VerifyToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

/*
TestTokenService_Malformed verifies that garbage input fails verification.
*/
func TestTokenService_Malformed(t *testing.T) {
	svc, err := sec.NewTokenService(testSecret, "cybersage.app", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not_a_jwt", "logout"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.VerifyToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
