package rename

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Compiled and binary artifact extensions never eligible for substitution
// (lowercase, with leading dot).
var artifactExtensions = map[string]bool{
	".pyc":   true,
	".pyo":   true,
	".so":    true,
	".o":     true,
	".a":     true,
	".class": true,
	".exe":   true,
}

// Documentation extensions excluded from substitution in git mode unless
// --docs is given, to avoid corrupting prose that happens to contain the
// token.
var docExtensions = map[string]bool{
	".md":  true,
	".rst": true,
	".txt": true,
}

func isArtifact(path string) bool {
	return artifactExtensions[strings.ToLower(filepath.Ext(path))]
}

func isDocFile(path string) bool {
	return docExtensions[strings.ToLower(filepath.Ext(path))]
}

// fixedCandidates returns the scaffold's fixed candidate set: every plain
// file under docs/source, the token-named package directory, and tests,
// plus top-level dotfiles and the Makefile. Missing directories are simply
// skipped. Paths are absolute-ized against root and sorted for
// deterministic processing order.
func fixedCandidates(root, token string) ([]string, error) {
	var files []string

	for _, dir := range []string{filepath.Join("docs", "source"), token, "tests"} {
		full := filepath.Join(root, dir)
		if fi, err := os.Stat(full); err != nil || !fi.IsDir() {
			continue
		}
		err := filepath.WalkDir(full, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if !d.Type().IsRegular() || isArtifact(path) {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	// Top-level dotfiles and the Makefile.
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, ".") || name == "Makefile" {
			files = append(files, filepath.Join(root, name))
		}
	}

	sort.Strings(files)
	return files, nil
}

// gitCandidates returns files known to version control: tracked files plus
// untracked-but-not-ignored ones. Documentation files are excluded unless
// includeDocs is set. Entries that no longer exist on disk (staged
// deletions) are dropped.
func gitCandidates(root string, includeDocs bool) ([]string, error) {
	listed, err := listFiles(root)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, rel := range listed {
		if isArtifact(rel) {
			continue
		}
		if !includeDocs && isDocFile(rel) {
			continue
		}
		full := filepath.Join(root, rel)
		fi, err := os.Lstat(full)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		files = append(files, full)
	}

	sort.Strings(files)
	return files, nil
}
