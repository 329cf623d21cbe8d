package service

import (
	"testing"

	"github.com/oakmount/siteadmin/internal/config"
	"github.com/oakmount/siteadmin/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Authenticate_TableTest(t *testing.T) {
	svc, err := NewAuthService(config.Auth{
		UsersJSON: `{"alice":"s3cret","bob":"hunter2"}`,
	}, logger.Nop())
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{name: "known user, correct password", username: "alice", password: "s3cret", want: true},
		{name: "known user, wrong password", username: "alice", password: "wrong", want: false},
		{name: "unknown user", username: "mallory", password: "s3cret", want: false},
		{name: "empty credentials", username: "", password: "", want: false},
		{name: "password of a different user", username: "alice", password: "hunter2", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Authenticate(tt.username, tt.password))
		})
	}
}

func TestAuthService_SinglePair(t *testing.T) {
	svc, err := NewAuthService(config.Auth{Username: "operator", Password: "pw"}, logger.Nop())
	require.NoError(t, err)

	assert.True(t, svc.Authenticate("operator", "pw"))
	assert.False(t, svc.Authenticate("operator", "PW"))
}

func TestAuthService_FallbackPair(t *testing.T) {
	svc, err := NewAuthService(config.Auth{}, logger.Nop())
	require.NoError(t, err)

	assert.True(t, svc.Authenticate("admin", "admin"))
}

func TestAuthService_MalformedUsersJSON(t *testing.T) {
	_, err := NewAuthService(config.Auth{UsersJSON: "nope"}, logger.Nop())
	assert.Error(t, err)
}
