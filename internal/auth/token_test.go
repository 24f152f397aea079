package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	id := uuid.New()

	token, exp, err := issuer.Issue(id)
	require.NoError(t, err)
	require.True(t, exp.After(time.Now()))

	got, gotExp, err := issuer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, id, got)
	require.WithinDuration(t, exp, gotExp, time.Second)
}

func TestVerify_RejectsTamperedToken(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	token, _, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, _, err = issuer.Verify(token + "x")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	token, _, err := NewIssuer("secret-a", time.Hour).Issue(uuid.New())
	require.NoError(t, err)

	_, _, err = NewIssuer("secret-b", time.Hour).Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsExpiredToken(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)
	token, _, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, _, err = issuer.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	require.True(t, CheckPassword(hash, "hunter22"))
	require.False(t, CheckPassword(hash, "hunter23"))
}
