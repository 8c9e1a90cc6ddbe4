package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withScenesDir(t *testing.T, dir string) {
	t.Helper()
	old := ScenesDir
	ScenesDir = dir
	t.Cleanup(func() { ScenesDir = old })
}

func TestBuiltins(t *testing.T) {
	scenes := Builtins()
	require.Len(t, scenes, 3)

	ids := []string{scenes[0].ID, scenes[1].ID, scenes[2].ID}
	assert.Equal(t, []string{"default", "diffuse", "spheregrid"}, ids)

	for _, info := range scenes {
		assert.Equal(t, TypeBuiltin, info.Type)
		assert.NotEmpty(t, info.Description)
		assert.Greater(t, info.Spheres, 0)
	}
	assert.Equal(t, "Spheregrid", scenes[2].DisplayName)
}

func TestNew_Builtin(t *testing.T) {
	for _, info := range Builtins() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := New(info.ID)
			require.NoError(t, err)
			assert.Equal(t, info.Spheres, s.GetPrimitiveCount())
		})
	}
}

func TestNew_Unknown(t *testing.T) {
	withScenesDir(t, t.TempDir())

	_, err := New("no-such-scene")
	assert.ErrorIs(t, err, ErrUnknownScene)

	_, err = New("")
	assert.ErrorIs(t, err, ErrUnknownScene)
}

func TestResolve_FileScenes(t *testing.T) {
	dir := t.TempDir()
	withScenesDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "two-spheres.yaml"), []byte(testSceneYAML), 0644))

	// By ID inside the scenes directory
	d, err := Resolve("two-spheres")
	require.NoError(t, err)
	assert.Equal(t, "two-spheres", d.Name)

	// By explicit path
	d, err = Resolve(filepath.Join(dir, "two-spheres.yaml"))
	require.NoError(t, err)
	assert.Len(t, d.Spheres, 2)
}

func TestListFileScenes(t *testing.T) {
	dir := t.TempDir()
	withScenesDir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b_scene.yml"), []byte(testSceneYAML), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a-broken.yaml"), []byte("spheres: [unclosed"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.yaml"), 0755))

	scenes, err := ListFileScenes()
	require.NoError(t, err)
	require.Len(t, scenes, 2)

	assert.Equal(t, "a-broken", scenes[0].ID)
	assert.Equal(t, "A Broken", scenes[0].DisplayName)
	assert.Contains(t, scenes[0].Description, "unreadable")

	assert.Equal(t, "b_scene", scenes[1].ID)
	assert.Equal(t, "two-spheres", scenes[1].DisplayName)
	assert.Equal(t, TypeFile, scenes[1].Type)
	assert.Equal(t, 2, scenes[1].Spheres)
}

func TestListFileScenes_MissingDir(t *testing.T) {
	withScenesDir(t, filepath.Join(t.TempDir(), "missing"))

	scenes, err := ListFileScenes()
	require.NoError(t, err)
	assert.Empty(t, scenes)

	all, err := ListAllScenes()
	require.NoError(t, err)
	assert.Len(t, all, len(Builtins()))
}

func TestTitleCase(t *testing.T) {
	tests := map[string]string{
		"cornell-box": "Cornell Box",
		"sphere_grid": "Sphere Grid",
		"default":     "Default",
		"MIXED-cASE":  "Mixed Case",
	}
	for in, want := range tests {
		assert.Equal(t, want, titleCase(in), in)
	}
}
