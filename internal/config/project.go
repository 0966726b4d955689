package config

import (
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Project is the turin.yml configuration: settings that belong to the
// project rather than to one invocation.
type Project struct {
	// Classpath lists archive entries, glob patterns allowed
	// (lib/*.jar). Order is shadowing order.
	Classpath []string `yaml:"classpath"`

	// Destination is the directory class files are written to.
	Destination string `yaml:"destination"`

	NoColor bool `yaml:"no_color"`
	Verbose bool `yaml:"verbose"`
}

// LoadProject reads a project file. A missing file is not an error: the
// zero project applies.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Project{}, nil
		}
		return nil, errors.Wrapf(err, "reading project file %s", path)
	}
	project := &Project{}
	if err := yaml.Unmarshal(data, project); err != nil {
		return nil, errors.Wrapf(err, "parsing project file %s", path)
	}
	return project, nil
}

// ExpandClasspath resolves the classpath entries to archive paths,
// expanding glob patterns against the filesystem. Plain entries pass
// through untouched; a pattern matching nothing contributes nothing.
// Matches of one pattern are sorted so the shadowing order is stable.
func ExpandClasspath(entries []string) ([]string, error) {
	var expanded []string
	for _, entry := range entries {
		if !isGlobPattern(entry) {
			expanded = append(expanded, entry)
			continue
		}
		matcher, err := glob.Compile(entry, filepath.Separator)
		if err != nil {
			return nil, errors.Wrapf(err, "bad classpath pattern %s", entry)
		}
		matches, err := globDir(entry, matcher)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, matches...)
	}
	return expanded, nil
}

func isGlobPattern(entry string) bool {
	for _, r := range entry {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// globDir walks from the pattern's static prefix directory and keeps the
// paths the matcher accepts, sorted by the walk order.
func globDir(pattern string, matcher glob.Glob) ([]string, error) {
	root := staticPrefix(pattern)
	var matches []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if !info.IsDir() && matcher.Match(path) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "expanding classpath pattern %s", pattern)
	}
	return matches, nil
}

// staticPrefix returns the directory part of a pattern before its first
// metacharacter.
func staticPrefix(pattern string) string {
	dir := pattern
	for isGlobPattern(dir) {
		parent := filepath.Dir(dir)
		if parent == dir {
			return "."
		}
		dir = parent
	}
	if dir == "" {
		return "."
	}
	return dir
}
