package services

import (
	"testing"
	"time"

	"github.com/Naveendeworks/emergent/entity"
	"github.com/Naveendeworks/emergent/repository"
	"github.com/Naveendeworks/emergent/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.User{Username: "alice", Password: string(hash), Role: "staff"}).Error)

	svc := NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)

	t.Run("valid credentials", func(t *testing.T) {
		token, user, err := svc.Login("alice", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)

		claims, err := utils.ParseToken("test-secret", token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "staff", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login("alice", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := svc.Login("mallory", "hunter2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
