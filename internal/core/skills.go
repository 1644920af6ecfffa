package core

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// skillFrontmatter is the YAML frontmatter at the top of a SKILL.md file.
type skillFrontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ScanSkills discovers skills available to the skill-context wizard: the
// project's .claude/skills plus the user-global ~/.claude/skills. Unreadable
// or malformed entries are skipped; a missing directory is not an error.
func ScanSkills(projectDir string) []SkillInfo {
	dirs := []string{filepath.Join(projectDir, ".claude", "skills")}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".claude", "skills"))
	}

	seen := make(map[string]bool)
	var result []SkillInfo

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			skillPath := filepath.Join(dir, entry.Name())
			fm, err := parseSkillFrontmatter(filepath.Join(skillPath, "SKILL.md"))
			if err != nil || fm.Name == "" {
				continue
			}
			if seen[fm.Name] {
				continue // Project skill shadows the global one.
			}
			seen[fm.Name] = true
			result = append(result, SkillInfo{
				Name:        fm.Name,
				Description: fm.Description,
				Path:        skillPath,
			})
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

var frontmatterDelim = []byte("---")

// parseSkillFrontmatter extracts the YAML frontmatter between the leading
// "---" fence pair of a SKILL.md file.
func parseSkillFrontmatter(path string) (*skillFrontmatter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	data = bytes.TrimLeft(data, "\xef\xbb\xbf") // Tolerate a BOM.
	if !bytes.HasPrefix(data, frontmatterDelim) {
		return nil, os.ErrInvalid
	}
	rest := data[len(frontmatterDelim):]
	end := bytes.Index(rest, append([]byte("\n"), frontmatterDelim...))
	if end < 0 {
		return nil, os.ErrInvalid
	}

	var fm skillFrontmatter
	if err := yaml.Unmarshal(rest[:end], &fm); err != nil {
		return nil, err
	}
	return &fm, nil
}
