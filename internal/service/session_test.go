package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionZeroValueUnauthenticated(t *testing.T) {
	var s Session
	require.False(t, s.Authenticated)
	require.Empty(t, s.Identity)
	require.Empty(t, s.Role)
}

func TestSessionReset(t *testing.T) {
	s := Session{Authenticated: true, Identity: "alice", Role: RoleAdmin}
	s.Reset()
	require.Equal(t, Session{}, s)
}

func TestRoleFor(t *testing.T) {
	require.Equal(t, RoleAdmin, roleFor(true))
	require.Equal(t, RoleStandard, roleFor(false))
}
