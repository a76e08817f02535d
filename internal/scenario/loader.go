package scenario

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.yaml
var defaultFS embed.FS

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: cannot parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load resolves a scenario by name or path.
// Search order: explicit path -> ~/.gridlab/scenarios/<name>.yaml ->
// ./scenarios/<name>.yaml -> embedded default.
func Load(name string) (*Scenario, error) {
	// An explicit path wins and must exist.
	if strings.ContainsRune(name, os.PathSeparator) || strings.HasSuffix(name, ".yaml") {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("scenario: cannot read %s: %w", name, err)
		}
		return Parse(data)
	}

	filename := name + ".yaml"

	// Try user scenario directory
	if userPath := userScenarioPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if s, err := Parse(data); err == nil {
				return s, nil
			}
		}
	}

	// Try local scenarios directory
	if data, err := os.ReadFile(filepath.Join("scenarios", filename)); err == nil {
		if s, err := Parse(data); err == nil {
			return s, nil
		}
	}

	// Use embedded default
	data, err := defaultFS.ReadFile("defaults/" + filename)
	if err != nil {
		return nil, fmt.Errorf("scenario: unknown scenario %q: %w", name, err)
	}
	return Parse(data)
}

// ResolvePath returns the filesystem path backing a scenario name, for
// callers that watch the file for edits. Embedded defaults have no
// backing file and report ok=false.
func ResolvePath(name string) (string, bool) {
	if strings.ContainsRune(name, os.PathSeparator) || strings.HasSuffix(name, ".yaml") {
		return name, true
	}
	filename := name + ".yaml"
	if userPath := userScenarioPath(filename); userPath != "" {
		if _, err := os.Stat(userPath); err == nil {
			return userPath, true
		}
	}
	local := filepath.Join("scenarios", filename)
	if _, err := os.Stat(local); err == nil {
		return local, true
	}
	return "", false
}

// userScenarioPath returns the path to a user scenario file, or empty if
// home is unavailable.
func userScenarioPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridlab", "scenarios", filename)
}

// Info describes one available scenario for listings.
type Info struct {
	Name     string
	Topology string
	Width    int
	Height   int
	Bundled  bool
}

// List returns every bundled scenario plus any user scenarios, sorted by
// name. Unparseable user files are skipped.
func List() []Info {
	byName := make(map[string]Info)

	entries, _ := fs.ReadDir(defaultFS, "defaults")
	for _, e := range entries {
		data, err := defaultFS.ReadFile("defaults/" + e.Name())
		if err != nil {
			continue
		}
		if s, err := Parse(data); err == nil {
			byName[s.Name] = Info{
				Name: s.Name, Topology: s.Topology,
				Width: s.Width, Height: s.Height, Bundled: true,
			}
		}
	}

	for _, dir := range userDirs() {
		files, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".yaml") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, f.Name()))
			if err != nil {
				continue
			}
			if s, err := Parse(data); err == nil {
				byName[s.Name] = Info{
					Name: s.Name, Topology: s.Topology,
					Width: s.Width, Height: s.Height,
				}
			}
		}
	}

	result := make([]Info, 0, len(byName))
	for _, info := range byName {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

func userDirs() []string {
	dirs := []string{"scenarios"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".gridlab", "scenarios"))
	}
	return dirs
}
