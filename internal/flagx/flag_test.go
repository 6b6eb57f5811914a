package flagx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-a", "http://localhost:8080", "-x", "junk"}

	got := FilterArgs(args, []string{"-a"})
	require.Equal(t, []string{"-a", "http://localhost:8080"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--config=conf.json", "-a=http://localhost"}

	got := FilterArgs(args, []string{"--config"})
	require.Equal(t, []string{"--config=conf.json"}, got)
}

func TestFilterArgs_BooleanFlagWithoutValue(t *testing.T) {
	args := []string{"-v", "-a", "http://localhost"}

	got := FilterArgs(args, []string{"-v"})
	require.Equal(t, []string{"-v"}, got)
}

func TestFilterArgs_NothingAllowed(t *testing.T) {
	args := []string{"-a", "x", "-b=y"}

	got := FilterArgs(args, nil)
	require.Empty(t, got)
}

func TestFilterArgs_KeepsFlagOrder(t *testing.T) {
	args := []string{"-t", "30", "-a", "http://localhost", "-d", "forum.db"}

	got := FilterArgs(args, []string{"-a", "-t", "-d"})
	require.Equal(t, args, got)
}
