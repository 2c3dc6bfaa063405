package calpro

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// resetFlags restores every flag to its default so in-process runs do not leak state.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetFlags(rootCmd)
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "calpro")
	for _, sub := range []string{"init", "profile", "calc", "meal-plan", "food", "exercise", "weight", "summary", "export"} {
		assert.Contains(t, out, sub)
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "calpro.db")
	for i := 0; i < 2; i++ {
		out, err := execute(t, "--db", path, "init")
		require.NoError(t, err, "init run %d", i+1)
		assert.Contains(t, out, "schema v3")
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "calpro dev"))
}

func TestRejectsUnknownDriver(t *testing.T) {
	_, err := execute(t, "--driver", "mysql", "init")
	require.Error(t, err)
}
