package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/common"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testActor = models.Actor{
	Email: "john.detective@police.gov",
	Name:  "Detective John Smith",
	Role:  "Police Officer",
}

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(testActor, secret, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	actor, err := GetActorFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, testActor, actor)
}

func TestGetActorFromToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(testActor, []byte("right"), time.Minute)
	require.NoError(t, err)

	_, err = GetActorFromToken(token, []byte("wrong"))
	assert.True(t, errors.Is(err, common.ErrInvalidToken))
}

func TestGetActorFromToken_Expired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken(testActor, secret, -time.Minute)
	require.NoError(t, err)

	_, err = GetActorFromToken(token, secret)
	assert.True(t, errors.Is(err, common.ErrTokenExpired))
}

func TestGetActorFromToken_Garbage(t *testing.T) {
	_, err := GetActorFromToken("not-a-jwt", []byte("secret"))
	assert.True(t, errors.Is(err, common.ErrInvalidToken))
}
