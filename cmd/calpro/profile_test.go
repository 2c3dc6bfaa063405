package calpro

import (
	"path/filepath"
	"testing"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileSaveKeepsUnchangedFields(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "calpro.db")
	run := func(args ...string) (string, error) {
		return execute(t, append([]string{"--db", dbFile}, args...)...)
	}

	_, err := run("profile", "save",
		"--name", "Alice",
		"--gender", "female",
		"--age", "41",
		"--height", "162",
		"--weight", "58.5",
		"--activity", "active",
		"--goal", "maintain",
		"--protein", "35", "--carb", "40", "--fat", "25",
	)
	require.NoError(t, err)

	_, err = run("profile", "save", "--name", "alice", "--goal", "lose")
	require.NoError(t, err)

	out, err := run("profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Profile:  Alice (id 1)")
	assert.Contains(t, out, "Gender:   Female")
	assert.Contains(t, out, "Age:      41")
	assert.Contains(t, out, "Height:   162.0 cm")
	assert.Contains(t, out, "Weight:   58.5 kg")
	assert.Contains(t, out, "Activity: Active")
	assert.Contains(t, out, "Goal:     Lose")
	assert.Contains(t, out, "Macros:   P 35% | C 40% | F 25%")

	_, err = run("profile", "save", "--name", "alice", "--fat", "30")
	require.ErrorIs(t, err, service.ErrValidation, "stored 35/40 plus 30 no longer sums to 100")
}

func TestCurrentProfileFollowsSaveNewAndUse(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "calpro.db")
	run := func(args ...string) (string, error) {
		return execute(t, append([]string{"--db", dbFile}, args...)...)
	}
	foodsOf := func(name string) string {
		t.Helper()
		out, err := run("--profile", name, "food", "list", "--date", "2024-03-01")
		require.NoError(t, err)
		return out
	}

	_, err := run("profile", "save", "--name", "Alice")
	require.NoError(t, err)
	_, err = run("profile", "save", "--name", "Bob", "--goal", "gain")
	require.NoError(t, err)

	_, err = run("food", "add", "--name", "toast", "--calories", "250", "--date", "2024-03-01")
	require.NoError(t, err)
	assert.Contains(t, foodsOf("Bob"), "toast")
	assert.Contains(t, foodsOf("Alice"), "No foods logged.")

	out, err := run("profile", "list")
	require.NoError(t, err)
	assert.Equal(t, "  Alice\n* Bob\n", out)

	out, err = run("profile", "use", "ALICE")
	require.NoError(t, err)
	assert.Contains(t, out, `Using profile "Alice"`)

	_, err = run("food", "add", "--name", "soup", "--calories", "180", "--date", "2024-03-01")
	require.NoError(t, err)
	assert.Contains(t, foodsOf("Alice"), "soup")
	assert.NotContains(t, foodsOf("Bob"), "soup")

	_, err = run("profile", "new", "Carol")
	require.NoError(t, err)
	out, err = run("profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Profile:  Carol")

	_, err = run("profile", "use", "nobody")
	require.ErrorIs(t, err, service.ErrProfileNotFound)
	out, err = run("profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Profile:  Carol", "a failed switch keeps the current profile")
}
