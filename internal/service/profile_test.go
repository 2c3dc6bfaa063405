package service_test

import (
	"testing"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/energy"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveProfileInsertThenUpdate(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	created, err := service.SaveProfile(sqldb, validProfile("Alice"))
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Equal(t, energy.Male, created.Gender)
	assert.Equal(t, energy.Moderate, created.Activity)
	assert.Equal(t, energy.MacroSplit{Protein: 30, Carb: 45, Fat: 25}, created.Macros)

	in := validProfile("ALICE")
	in.Gender = "female"
	in.WeightKG = 62.5
	in.Activity = "very_active"
	in.Goal = "lose"
	in.Macros = energy.MacroSplit{Protein: 40, Carb: 30, Fat: 30}
	updated, err := service.SaveProfile(sqldb, in)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID, "save matches existing name case-insensitively")
	assert.Equal(t, "Alice", updated.Name, "original spelling is kept")
	assert.Equal(t, energy.Female, updated.Gender)
	assert.Equal(t, 62.5, updated.WeightKG)
	assert.Equal(t, energy.VeryActive, updated.Activity)
	assert.Equal(t, energy.Lose, updated.Goal)
	assert.Equal(t, 40, updated.Macros.Protein)

	names, err := service.ListProfileNames(sqldb)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, names)
}

func TestSaveProfileRejectsMacroSumWithoutWriting(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	original := mustProfile(t, sqldb, "Bob")

	in := validProfile("Bob")
	in.Age = 60
	in.Macros = energy.MacroSplit{Protein: 30, Carb: 45, Fat: 26}
	_, err := service.SaveProfile(sqldb, in)
	require.ErrorIs(t, err, service.ErrValidation)
	assert.Contains(t, err.Error(), "101%")

	reloaded, err := service.GetProfile(sqldb, original.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, reloaded.Age, "rejected save must not update")

	in.Name = "Carol"
	_, err = service.SaveProfile(sqldb, in)
	require.ErrorIs(t, err, service.ErrValidation)
	_, err = service.GetProfileByName(sqldb, "Carol")
	require.ErrorIs(t, err, service.ErrProfileNotFound, "rejected save must not insert")
}

func TestSaveProfileCollectsAllProblems(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	_, err := service.SaveProfile(sqldb, service.ProfileInput{
		Name:   "  ",
		Gender: "robot",
		Macros: energy.MacroSplit{Protein: -10, Carb: 60, Fat: 50},
	})
	require.ErrorIs(t, err, service.ErrValidation)
	msg := err.Error()
	for _, want := range []string{"profile name is required", "gender", "age must be > 0", "height must be > 0", "weight must be > 0", "macro percentages must be >= 0"} {
		assert.Contains(t, msg, want)
	}
}

func TestCreateProfileConflict(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	p, err := service.CreateProfile(sqldb, "Dana")
	require.NoError(t, err)
	def := energy.DefaultInput()
	assert.Equal(t, def.AgeYears, p.Age)
	assert.Equal(t, def.HeightCM, p.HeightCM)
	assert.Equal(t, energy.DefaultMacroSplit(), p.Macros)

	_, err = service.CreateProfile(sqldb, "dana")
	require.ErrorIs(t, err, service.ErrProfileExists)

	_, err = service.CreateProfile(sqldb, "")
	require.ErrorIs(t, err, service.ErrValidation)
}

func TestListProfileNamesAndFirstProfile(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	first, err := service.FirstProfile(sqldb)
	require.NoError(t, err)
	assert.Nil(t, first)

	mustProfile(t, sqldb, "zed")
	mustProfile(t, sqldb, "Amy")
	mustProfile(t, sqldb, "bob")

	names, err := service.ListProfileNames(sqldb)
	require.NoError(t, err)
	assert.Equal(t, []string{"Amy", "bob", "zed"}, names)

	first, err = service.FirstProfile(sqldb)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "zed", first.Name)
}

func TestLegacyRowsDecodeWithDefaults(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	_, err := sqldb.Exec(`INSERT INTO users(name, gender, activity, goal, macro_json) VALUES(?, ?, ?, ?, ?)`, "legacy", "nonbinary", "couch", "bulk", "")
	require.NoError(t, err)

	p, err := service.GetProfileByName(sqldb, "LEGACY")
	require.NoError(t, err)
	assert.Equal(t, energy.Female, p.Gender)
	assert.Equal(t, energy.Moderate, p.Activity)
	assert.Equal(t, energy.Maintain, p.Goal)
	assert.Equal(t, energy.DefaultMacroSplit(), p.Macros)
	assert.Equal(t, 25, p.Age)
}
