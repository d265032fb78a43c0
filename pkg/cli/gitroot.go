package cli

import (
	"fmt"
	"os/exec"
	"strings"
)

// findGitRoot returns the top-level directory of the enclosing git
// repository. Snippet includes and default paths resolve against it.
func findGitRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("not in a git repository or git command failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// treeRoot resolves the root used for snippet includes and default path
// resolution: the git root when available, the working directory otherwise.
func treeRoot(cwd string) string {
	if root, err := findGitRoot(); err == nil {
		return root
	}
	return cwd
}
