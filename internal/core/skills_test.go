package core

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSkill(t *testing.T, base, dirName, frontmatter string) {
	t.Helper()
	dir := filepath.Join(base, dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "---\n" + frontmatter + "\n---\n\n# Skill\n"
	if err := os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanSkills(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // isolate from the real global skills dir

	project := t.TempDir()
	skillsDir := filepath.Join(project, ".claude", "skills")
	writeSkill(t, skillsDir, "review", "name: code-review\ndescription: Reviews diffs")
	writeSkill(t, skillsDir, "docs", "name: doc-writer\ndescription: Writes docs")

	skills := ScanSkills(project)
	if len(skills) != 2 {
		t.Fatalf("expected 2 skills, got %d", len(skills))
	}
	// Sorted by name.
	if skills[0].Name != "code-review" || skills[1].Name != "doc-writer" {
		t.Errorf("unexpected order: %v, %v", skills[0].Name, skills[1].Name)
	}
	if skills[0].Description != "Reviews diffs" {
		t.Errorf("Description = %q, want 'Reviews diffs'", skills[0].Description)
	}
}

func TestScanSkills_ProjectShadowsGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeSkill(t, filepath.Join(home, ".claude", "skills"), "review",
		"name: code-review\ndescription: global copy")

	project := t.TempDir()
	writeSkill(t, filepath.Join(project, ".claude", "skills"), "review",
		"name: code-review\ndescription: project copy")

	skills := ScanSkills(project)
	if len(skills) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(skills))
	}
	if skills[0].Description != "project copy" {
		t.Errorf("project skill should shadow global, got %q", skills[0].Description)
	}
}

func TestScanSkills_SkipsMalformed(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	project := t.TempDir()
	skillsDir := filepath.Join(project, ".claude", "skills")
	writeSkill(t, skillsDir, "good", "name: good\ndescription: fine")

	// Missing frontmatter fence.
	bad := filepath.Join(skillsDir, "bad")
	if err := os.MkdirAll(bad, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bad, "SKILL.md"), []byte("# no frontmatter"), 0o644); err != nil {
		t.Fatal(err)
	}
	// No SKILL.md at all.
	if err := os.MkdirAll(filepath.Join(skillsDir, "empty"), 0o755); err != nil {
		t.Fatal(err)
	}

	skills := ScanSkills(project)
	if len(skills) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(skills))
	}
	if skills[0].Name != "good" {
		t.Errorf("Name = %q, want good", skills[0].Name)
	}
}

func TestScanSkills_MissingDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if skills := ScanSkills(t.TempDir()); len(skills) != 0 {
		t.Errorf("expected no skills, got %d", len(skills))
	}
}
