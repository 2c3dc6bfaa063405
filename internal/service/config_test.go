package service_test

import (
	"testing"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetConfig(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	_, ok, err := service.GetConfig(sqldb, "theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, service.SetConfig(sqldb, " Theme ", "dark"))
	require.NoError(t, service.SetConfig(sqldb, "theme", " light "))

	value, ok, err := service.GetConfig(sqldb, "THEME")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", value)

	require.ErrorIs(t, service.SetConfig(sqldb, " ", "x"), service.ErrValidation)
}

func TestOpenSessionUsesRememberedProfile(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	first := mustProfile(t, sqldb, "first")
	second := mustProfile(t, sqldb, "second")

	current, err := service.CurrentProfile(sqldb)
	require.NoError(t, err)
	assert.Nil(t, current)

	require.NoError(t, service.UseProfile(sqldb, second.ID))
	s, err := service.OpenSession(sqldb, "", 2000)
	require.NoError(t, err)
	assert.Equal(t, second.ID, s.Profile.ID)

	s, err = service.OpenSession(sqldb, "first", 2000)
	require.NoError(t, err)
	assert.Equal(t, first.ID, s.Profile.ID, "an explicit name wins over the remembered profile")

	require.ErrorIs(t, service.UseProfile(sqldb, 0), service.ErrNoProfile)
}

func TestOpenSessionStaleRememberedProfile(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	first := mustProfile(t, sqldb, "first")

	require.NoError(t, service.SetConfig(sqldb, service.ConfigCurrentProfile, "999"))
	s, err := service.OpenSession(sqldb, "", 2000)
	require.NoError(t, err)
	assert.Equal(t, first.ID, s.Profile.ID)

	require.NoError(t, service.SetConfig(sqldb, service.ConfigCurrentProfile, "not-a-number"))
	s, err = service.OpenSession(sqldb, "", 2000)
	require.NoError(t, err)
	assert.Equal(t, first.ID, s.Profile.ID)
}
