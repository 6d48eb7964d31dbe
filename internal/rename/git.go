package rename

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// GitAvailable reports whether a git binary is on PATH. Git mode and its
// tests are gated on this.
func GitAvailable() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// listFiles asks git for the candidate set: cached (tracked) entries plus
// untracked files that are not ignored. Output is NUL-delimited so paths
// with unusual characters survive.
func listFiles(root string) ([]string, error) {
	cmd := exec.Command("git", "ls-files", "-z", "--cached", "--others", "--exclude-standard")
	cmd.Dir = root

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if i := strings.IndexByte(msg, '\n'); i >= 0 {
			msg = msg[:i]
		}
		if msg != "" {
			return nil, fmt.Errorf("git ls-files: %s", msg)
		}
		return nil, fmt.Errorf("git ls-files: %w", err)
	}

	var files []string
	for _, p := range bytes.Split(out, []byte{0}) {
		if len(p) == 0 {
			continue
		}
		files = append(files, string(p))
	}
	return files, nil
}
