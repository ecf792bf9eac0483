package user_test

import (
	"testing"
	"time"

	"appraise/internal/core/domain/model/user"
	"appraise/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		u, err := user.NewUser(100, user.Client)
		require.NoError(t, err)

		assert.Equal(t, int64(0), u.ID())
		assert.Equal(t, int64(100), u.TelegramID())
		assert.Equal(t, user.Client, u.Role())
		assert.False(t, u.IsAppraiser())
		require.NoError(t, u.Validate())
	})

	t.Run("requires telegram id", func(t *testing.T) {
		_, err := user.NewUser(0, user.Client)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires valid role", func(t *testing.T) {
		_, err := user.NewUser(100, user.RoleUnknown)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreUser(t *testing.T) {
	now := time.Now()
	u, err := user.RestoreUser(1, 100, user.Appraiser, now, now)
	require.NoError(t, err)

	assert.Equal(t, int64(1), u.ID())
	assert.True(t, u.IsAppraiser())
	assert.Equal(t, now, u.CreatedAt())
}

func TestUserSetID(t *testing.T) {
	u, err := user.NewUser(100, user.Client)
	require.NoError(t, err)

	require.NoError(t, u.SetID(1))
	assert.ErrorIs(t, u.SetID(2), user.ErrUserIDAlreadySet)
	assert.Equal(t, int64(1), u.ID())
}

func TestUserValidate(t *testing.T) {
	var zero user.User
	assert.ErrorIs(t, zero.Validate(), user.ErrUserIsNotConstructed)
}

func TestPromoteToAppraiser(t *testing.T) {
	t.Run("client is promoted", func(t *testing.T) {
		u, err := user.NewUser(100, user.Client)
		require.NoError(t, err)

		assert.True(t, u.PromoteToAppraiser())
		assert.True(t, u.IsAppraiser())
	})

	t.Run("appraiser stays as is", func(t *testing.T) {
		u, err := user.NewUser(100, user.Appraiser)
		require.NoError(t, err)

		assert.False(t, u.PromoteToAppraiser())
		assert.True(t, u.IsAppraiser())
	})
}

func TestRole(t *testing.T) {
	t.Run("string tokens", func(t *testing.T) {
		assert.Equal(t, "CLIENT", user.Client.String())
		assert.Equal(t, "APPRAISER", user.Appraiser.String())
		assert.Equal(t, "UNKNOWN", user.RoleUnknown.String())
	})

	t.Run("from string", func(t *testing.T) {
		role, err := user.RoleFromString("APPRAISER")
		require.NoError(t, err)
		assert.Equal(t, user.Appraiser, role)

		_, err = user.RoleFromString("ADMIN")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("validate", func(t *testing.T) {
		require.NoError(t, user.Client.Validate())
		require.Error(t, user.RoleUnknown.Validate())
		require.Error(t, user.Role(9).Validate())
	})
}

func TestAllowList(t *testing.T) {
	t.Run("contains", func(t *testing.T) {
		list := user.NewAllowList(100, 200)
		assert.True(t, list.Contains(100))
		assert.False(t, list.Contains(300))
	})

	t.Run("parse csv", func(t *testing.T) {
		list, err := user.ParseAllowList("100, 200,,300")
		require.NoError(t, err)
		assert.True(t, list.Contains(100))
		assert.True(t, list.Contains(200))
		assert.True(t, list.Contains(300))
		assert.False(t, list.Contains(400))
	})

	t.Run("parse empty", func(t *testing.T) {
		list, err := user.ParseAllowList("")
		require.NoError(t, err)
		assert.False(t, list.Contains(1))
	})

	t.Run("parse rejects garbage", func(t *testing.T) {
		_, err := user.ParseAllowList("100,abc")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
