package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnknownScene is returned when a name matches neither a built-in nor a scene file
var ErrUnknownScene = errors.New("scene: unknown scene")

// Scene sources
const (
	TypeBuiltin = "builtin"
	TypeFile    = "file"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string // Name accepted by Resolve
	DisplayName string
	Description string
	Type        string // TypeBuiltin or TypeFile
	FilePath    string // YAML file (file type only)
	Spheres     int
}

type builtin struct {
	description string
	build       func() Description
}

var builtins = map[string]builtin{
	"default":    {"Diffuse center sphere between gold and silver metal spheres", DefaultDescription},
	"diffuse":    {"Single reddish diffuse sphere on a diffuse ground", DiffuseDescription},
	"spheregrid": {"10x10 grid of rainbow-colored metal and diffuse spheres", func() Description { return SphereGridDescription(10) }},
}

// ScenesDir is searched for YAML scene files
var ScenesDir = "scenes"

// BuiltinDescription returns the description of a built-in scene
func BuiltinDescription(name string) (Description, bool) {
	b, ok := builtins[name]
	if !ok {
		return Description{}, false
	}
	return b.build(), true
}

// Builtins returns the built-in scenes sorted by ID
func Builtins() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for id, b := range builtins {
		scenes = append(scenes, SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: b.description,
			Type:        TypeBuiltin,
			Spheres:     len(b.build().Spheres),
		})
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

func isSceneFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// ListFileScenes scans ScenesDir and returns discovered YAML scenes
func ListFileScenes() ([]SceneInfo, error) {
	entries, err := os.ReadDir(ScenesDir)
	if errors.Is(err, os.ErrNotExist) {
		return []SceneInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	var scenes []SceneInfo
	for _, entry := range entries {
		if entry.IsDir() || !isSceneFile(entry.Name()) {
			continue
		}

		filePath := filepath.Join(ScenesDir, entry.Name())
		id := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		info := SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Type:        TypeFile,
			FilePath:    filePath,
		}

		d, err := LoadDescription(filePath)
		if err != nil {
			// Keep listing the rest; the broken file surfaces when rendered
			info.Description = fmt.Sprintf("unreadable: %v", err)
		} else {
			if d.Name != "" {
				info.DisplayName = d.Name
			}
			info.Spheres = len(d.Spheres)
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes, nil
}

// ListAllScenes returns built-in scenes followed by scene files
func ListAllScenes() ([]SceneInfo, error) {
	files, err := ListFileScenes()
	if err != nil {
		return nil, err
	}
	return append(Builtins(), files...), nil
}

// Resolve returns the description for a built-in name, a path to a YAML file,
// or the ID of a file in ScenesDir
func Resolve(name string) (Description, error) {
	if name == "" {
		return Description{}, fmt.Errorf("%w: empty name", ErrUnknownScene)
	}
	if d, ok := BuiltinDescription(name); ok {
		return d, nil
	}
	if isSceneFile(name) {
		return LoadDescription(name)
	}
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(ScenesDir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return LoadDescription(path)
		}
	}
	return Description{}, fmt.Errorf("%w %q", ErrUnknownScene, name)
}

// New resolves and builds a scene by name
func New(name string) (*Scene, error) {
	d, err := Resolve(name)
	if err != nil {
		return nil, err
	}
	return d.Build()
}

// titleCase converts kebab-case or snake_case to Title Case
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
