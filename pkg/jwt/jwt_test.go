package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("secret", time.Minute, "defence-booking")

	token, err := m.GenerateAccessToken(42, "STUDENT")
	require.NoError(t, err)

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "STUDENT", claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestManager_Expired(t *testing.T) {
	m := NewManager("secret", -time.Minute, "defence-booking")

	token, err := m.GenerateAccessToken(1, "TEACHER")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestManager_WrongSecret(t *testing.T) {
	token, err := NewManager("one", time.Minute, "defence-booking").GenerateAccessToken(1, "ADMIN")
	require.NoError(t, err)

	_, err = NewManager("two", time.Minute, "defence-booking").ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestManager_WrongIssuer(t *testing.T) {
	token, err := NewManager("secret", time.Minute, "other").GenerateAccessToken(1, "ADMIN")
	require.NoError(t, err)

	_, err = NewManager("secret", time.Minute, "defence-booking").ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestManager_Garbage(t *testing.T) {
	_, err := NewManager("secret", time.Minute, "defence-booking").ParseAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
