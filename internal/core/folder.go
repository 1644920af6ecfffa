package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FolderManager handles tracked folder operations.
type FolderManager struct {
	config *ConfigManager
}

// NewFolderManager creates a FolderManager.
func NewFolderManager(config *ConfigManager) *FolderManager {
	return &FolderManager{config: config}
}

// Add adds a folder to the tracked list. The path is resolved to an absolute path.
// Returns an error if the path doesn't exist or is already tracked.
func (fm *FolderManager) Add(path string) error {
	absPath, err := resolveFolderPath(path)
	if err != nil {
		return err
	}

	cfg, err := fm.config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	for _, f := range cfg.Folders {
		if f.Path == absPath {
			return fmt.Errorf("folder already tracked: %s", absPath)
		}
	}

	cfg.Folders = append(cfg.Folders, TrackedFolder{
		Path:    absPath,
		AddedAt: time.Now().UTC(),
	})

	if err := fm.config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

// Remove removes a folder from the tracked list. Settings files on disk are
// left untouched; tracking is bookkeeping only.
func (fm *FolderManager) Remove(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := fm.config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	found := false
	kept := cfg.Folders[:0]
	for _, f := range cfg.Folders {
		if f.Path == absPath {
			found = true
			continue
		}
		kept = append(kept, f)
	}
	if !found {
		return fmt.Errorf("folder not tracked: %s", absPath)
	}
	cfg.Folders = kept

	if err := fm.config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

// List returns all tracked folders.
func (fm *FolderManager) List() ([]TrackedFolder, error) {
	cfg, err := fm.config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg.Folders, nil
}

// IsTracked reports whether a path is in the tracked list.
func (fm *FolderManager) IsTracked(path string) (bool, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("resolving path: %w", err)
	}
	cfg, err := fm.config.Load()
	if err != nil {
		return false, fmt.Errorf("loading config: %w", err)
	}
	for _, f := range cfg.Folders {
		if f.Path == absPath {
			return true, nil
		}
	}
	return false, nil
}

// resolveFolderPath resolves a possibly-empty path to an absolute directory,
// defaulting to the current working directory.
func resolveFolderPath(path string) (string, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		path = cwd
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("folder does not exist: %s", absPath)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", absPath)
	}
	return absPath, nil
}
