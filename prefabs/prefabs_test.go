package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/blockjump/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func useDir(t *testing.T, dir string) {
	t.Helper()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
}

func TestEmbeddedAvatarMatchesDefaults(t *testing.T) {
	useDir(t, t.TempDir())

	spec, err := LoadAvatarSpec()
	require.NoError(t, err)
	assert.Equal(t, "avatar", spec.Name)
	assert.Equal(t, "autopilot.tengo", spec.Autopilot)

	tu, err := spec.Tuning(sim.DefaultTuning())
	require.NoError(t, err)
	assert.Equal(t, sim.DefaultTuning(), tu)

	assert.Equal(t, color.Color(colornames.Forestgreen), spec.Palette.JumpPower.Or(color.Black))
	assert.Equal(t, color.Color(color.NRGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff}), spec.Palette.Stone.Or(color.Black))
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)

	data := []byte("name: floaty\nphysics:\n  gravity: 5\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, AvatarFile), data, 0o644))

	spec, err := LoadAvatarSpec()
	require.NoError(t, err)
	assert.Equal(t, "floaty", spec.Name)

	tu, err := spec.Tuning(sim.DefaultTuning())
	require.NoError(t, err)
	assert.Equal(t, 5.0, tu.Gravity)
	assert.Equal(t, 9.0, tu.JumpSpeed, "omitted fields keep the default")

	_, ok := ModTime("prefabs/" + AvatarFile)
	assert.True(t, ok)
}

func TestStampsChanged(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)

	stamps := Stamps{}
	assert.True(t, stamps.Changed(AvatarFile), "embedded-only prefabs always reload")

	path := filepath.Join(dir, AvatarFile)
	require.NoError(t, os.WriteFile(path, []byte("name: a\n"), 0o644))
	assert.True(t, stamps.Changed(AvatarFile))
	assert.False(t, stamps.Changed("prefabs/"+AvatarFile), "same file, same mod time")

	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))
	assert.True(t, stamps.Changed(AvatarFile))
	assert.False(t, stamps.Changed(AvatarFile))
}

func TestTuningRejectsInvalidSpec(t *testing.T) {
	spec := &AvatarSpec{Name: "bad", World: WorldSpec{SpawnX: 100}}
	tu, err := spec.Tuning(sim.DefaultTuning())
	require.Error(t, err)
	assert.ErrorIs(t, err, sim.ErrInvalidTuning)
	assert.Equal(t, sim.DefaultTuning(), tu)
}

func TestLoadSpecErrors(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)

	_, err := LoadSpec[AvatarSpec]("missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prefabs: load missing.yaml")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("physics: [1, 2"), 0o644))
	_, err = LoadSpec[AvatarSpec]("broken.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prefabs: unmarshal broken.yaml")
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.Color
		wantErr bool
	}{
		{"rgb", `"#ff8000"`, color.NRGBA{R: 0xff, G: 0x80, A: 0xff}, false},
		{"rgba", `"#00000080"`, color.NRGBA{A: 0x80}, false},
		{"no_hash", `"102030"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, false},
		{"named", `DarkGray`, colornames.Darkgray, false},
		{"short", `"#fff"`, nil, true},
		{"not_hex", `"#zzzzzz"`, nil, true},
		{"list", `[1, 2]`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tt.in), &c)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Color)
		})
	}

	var missing *YAMLColor
	assert.Equal(t, color.White, missing.Or(color.White))
}

func TestScriptPaths(t *testing.T) {
	useDir(t, t.TempDir())

	for _, name := range []string{"autopilot.tengo", "scripts/autopilot.tengo", "prefabs/scripts/autopilot.tengo"} {
		src, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(src), "jump =")
	}
	assert.True(t, IsScript("prefabs/scripts/autopilot.tengo"))
	assert.False(t, IsScript("prefabs/avatar.yaml"))
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, AvatarFile), []byte("name: a\n"), 0o644))

	select {
	case c := <-w.Changes:
		assert.Equal(t, AvatarFile, filepath.Base(c.Path))
		assert.False(t, c.Script)
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "walk.tengo"), []byte("left = true\n"), 0o644))
	deadline := time.After(2 * time.Second)
	for {
		select {
		case c := <-w.Changes:
			if filepath.Base(c.Path) != "walk.tengo" {
				continue
			}
			assert.True(t, c.Script)
			return
		case <-deadline:
			t.Fatal("script change not reported")
		}
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, ok := <-w.Changes
	assert.False(t, ok)
}
