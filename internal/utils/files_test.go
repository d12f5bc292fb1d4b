package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Jaron-S/body-fat-calculator/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeWriteFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "out.json")
	require.NoError(t, utils.SafeWriteFile(p, []byte("one")))
	require.NoError(t, utils.SafeWriteFile(p, []byte("two")))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "two", string(b))
	_, err = os.Stat(p + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := utils.ExpandHome("~/profiles")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "profiles"), got)

	got, err = utils.ExpandHome("/tmp/x/../y")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/y", got)
}

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	require.NoError(t, os.WriteFile(a, nil, 0o644))
	require.NoError(t, os.WriteFile(b, nil, 0o644))

	got := utils.ExpandGlobs([]string{filepath.Join(dir, "*.csv"), a, filepath.Join(dir, "missing.csv")})
	assert.Equal(t, []string{a, b}, got)
}
