package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
)

type GitService struct{}

func NewGitService() *GitService {
	return &GitService{}
}

// Open finds the repository containing path, walking up parent directories.
func (g *GitService) Open(path string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
}

// ChangedFiles lists modified or untracked files below any of dirs. The
// result is relative to the repository root. A path outside any repository
// yields no files and no error.
func (g *GitService) ChangedFiles(dirs ...string) ([]string, error) {
	if len(dirs) == 0 {
		return nil, nil
	}
	repo, err := g.Open(dirs[0])
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("get worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("get status: %w", err)
	}

	root := resolveLinks(wt.Filesystem.Root())
	prefixes := make([]string, 0, len(dirs))
	for _, d := range dirs {
		abs, err := filepath.Abs(d)
		if err != nil {
			return nil, err
		}
		rel, err := filepath.Rel(root, resolveLinks(abs))
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			prefixes = append(prefixes, "")
			continue
		}
		prefixes = append(prefixes, rel+"/")
	}

	var changed []string
	for file, s := range status {
		if s.Worktree == git.Unmodified && s.Staging == git.Unmodified {
			continue
		}
		for _, p := range prefixes {
			if strings.HasPrefix(file, p) {
				changed = append(changed, file)
				break
			}
		}
	}
	sort.Strings(changed)
	return changed, nil
}

func resolveLinks(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return path
}
