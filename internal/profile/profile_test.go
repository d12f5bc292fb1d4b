package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Jaron-S/body-fat-calculator/internal/bodyfat"
	"github.com/Jaron-S/body-fat-calculator/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInput() bodyfat.Input {
	return bodyfat.Input{
		Gender: bodyfat.Male,
		Height: bodyfat.Readings{"70"},
		Waist:  bodyfat.Readings{"34", "34.5"},
		Neck:   bodyfat.Readings{"15"},
		Weight: "180",
	}
}

func TestSaveLoadSnapshots(t *testing.T) {
	base := t.TempDir()
	p := profile.New("alice", "cut", profile.Dir(base, "alice"))
	_, err := p.Last()
	assert.ErrorIs(t, err, profile.ErrNoSnapshots)

	in := sampleInput()
	s := p.AddSnapshot(in, bodyfat.Calculate(in))
	assert.NotEmpty(t, s.ID)
	require.NoError(t, p.Save())

	_, err = os.Stat(filepath.Join(base, "alice", "profile.json.tmp"))
	assert.True(t, os.IsNotExist(err))

	got, err := profile.Load(profile.Dir(base, "alice"))
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Name)
	assert.Equal(t, "cut", got.Description)
	require.Len(t, got.Snapshots, 1)

	last, err := got.Last()
	require.NoError(t, err)
	assert.Equal(t, s.ID, last.ID)
	assert.Equal(t, in, last.Input)
	assert.Equal(t, s.Result.Adjusted, last.Result.Adjusted)
	assert.Equal(t, s.Result.Estimates, last.Result.Estimates)
}

func TestLoadMissing(t *testing.T) {
	_, err := profile.Load(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, profile.ErrNotFound)
}

func TestList(t *testing.T) {
	base := t.TempDir()
	for _, n := range []string{"zed", "amy"} {
		require.NoError(t, profile.New(n, "", profile.Dir(base, n)).Save())
	}
	require.NoError(t, os.MkdirAll(filepath.Join(base, "stray"), 0o755))

	ps, err := profile.List(base)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, "amy", ps[0].Name)
	assert.Equal(t, "zed", ps[1].Name)

	ps, err = profile.List(filepath.Join(base, "missing"))
	require.NoError(t, err)
	assert.Empty(t, ps)
}

func TestValidName(t *testing.T) {
	assert.NoError(t, profile.ValidName("alice"))
	for _, bad := range []string{"", " a", "a/b", `a\b`, "..", "."} {
		assert.Error(t, profile.ValidName(bad), bad)
	}
}
