package service_test

import (
	"testing"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSessionEmptyStore(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	s, err := service.OpenSession(sqldb, "", 2000)
	require.NoError(t, err)
	assert.Nil(t, s.Profile)
	assert.Equal(t, 2000.0, s.Target)

	_, err = s.ProfileID()
	require.ErrorIs(t, err, service.ErrNoProfile)
	assert.True(t, service.IsNoProfile(err))
}

func TestOpenSessionSelectsProfile(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	first := mustProfile(t, sqldb, "first")

	in := validProfile("second")
	in.Goal = "gain"
	second, err := service.SaveProfile(sqldb, in)
	require.NoError(t, err)

	s, err := service.OpenSession(sqldb, "", 2000)
	require.NoError(t, err)
	id, err := s.ProfileID()
	require.NoError(t, err)
	assert.Equal(t, first.ID, id, "empty name picks the oldest profile")
	// 70 kg, 170 cm, 25 y male, moderate, maintain
	assert.InDelta(t, 1642.5*1.55, s.Target, 1e-9)

	s, err = service.OpenSession(sqldb, "SECOND", 2000)
	require.NoError(t, err)
	assert.Equal(t, second.ID, s.Profile.ID)
	assert.InDelta(t, 1642.5*1.55+500, s.Target, 1e-9)
	require.NotNil(t, s.Result)
	assert.Len(t, s.Result.Meals, 4)

	_, err = service.OpenSession(sqldb, "nobody", 2000)
	require.ErrorIs(t, err, service.ErrProfileNotFound)
}
