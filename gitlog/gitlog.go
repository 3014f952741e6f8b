package gitlog

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/tooldex/tooldex/catalog/models"
)

// logFormat produces one pipe-delimited line per commit: hash, ISO-8601
// author date, subject.
const logFormat = "--format=%H|%aI|%s"

// urlPattern matches http(s) URLs embedded in commit messages.
var urlPattern = regexp.MustCompile(`https?://[^\s<>"]+`)

// GitHistory queries per-file change history from a local git repository.
type GitHistory struct {
	workingDir string
}

// NewGitHistory creates a new GitHistory rooted at workingDir.
func NewGitHistory(workingDir string) *GitHistory {
	return &GitHistory{workingDir: workingDir}
}

// CheckGitRepo checks if the working directory is inside a git repository.
func (g *GitHistory) CheckGitRepo() error {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = g.workingDir
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("not a git repository")
	}
	return nil
}

// FileHistory returns the rename-following commit log for path, newest
// first. A failed query or untracked path yields an empty history; empty is
// the "no data" signal downstream, so this never returns an error.
func (g *GitHistory) FileHistory(path string) []models.Commit {
	cmd := exec.Command("git", "log", "--follow", logFormat, "--", path)
	cmd.Dir = g.workingDir
	output, err := cmd.Output()
	if err != nil {
		return nil
	}
	return ParseLog(string(output))
}

// ParseLog parses pipe-delimited git log output into commits, preserving the
// newest-first order of the input. Lines that do not split into three fields
// are skipped.
func ParseLog(raw string) []models.Commit {
	var commits []models.Commit
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 3)
		if len(parts) != 3 {
			continue
		}
		commits = append(commits, models.Commit{
			Hash:    parts[0],
			Date:    parts[1],
			Message: parts[2],
			URLs:    ExtractURLs(parts[2]),
		})
	}
	return commits
}

// ExtractURLs returns every http(s) URL found in message, in order of
// appearance. A message without URLs yields an empty, non-nil slice.
func ExtractURLs(message string) []string {
	urls := urlPattern.FindAllString(message, -1)
	if urls == nil {
		return []string{}
	}
	return urls
}
