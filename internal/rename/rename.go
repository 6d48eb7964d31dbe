package rename

import (
	"errors"
	"path/filepath"

	"github.com/backmassage/labbench/internal/config"
	"github.com/backmassage/labbench/internal/display"
	"github.com/backmassage/labbench/internal/logging"
)

// ErrEmptyToken is returned when no new token was supplied.
var ErrEmptyToken = errors.New("new token must not be empty")

// Renamer retargets the scaffold placeholder token across a project tree.
type Renamer struct {
	cfg  *config.Config
	log  *logging.Logger
	root string
}

// New creates a Renamer operating on the tree rooted at root.
func New(cfg *config.Config, log *logging.Logger, root string) *Renamer {
	return &Renamer{cfg: cfg, log: log, root: root}
}

// Run performs the rename: substitute the token in every candidate file,
// then relocate the package directory and its docs page. Per-file failures
// are collected in the report rather than aborting the run; callers should
// treat Report.Failed() as a non-zero exit.
//
// Renaming a token to itself is a deliberate no-op, which also makes a
// second run with the same target safe.
func (r *Renamer) Run() (*Report, error) {
	oldTok, newTok := r.cfg.OldToken, r.cfg.NewToken
	if newTok == "" {
		return nil, ErrEmptyToken
	}
	if newTok == oldTok {
		r.log.Info("nothing to do")
		return &Report{NoOp: true}, nil
	}

	var files []string
	var err error
	if r.cfg.UseGit {
		files, err = gitCandidates(r.root, r.cfg.IncludeDocs)
	} else {
		files, err = fixedCandidates(r.root, oldTok)
	}
	if err != nil {
		return nil, err
	}

	apply := !r.cfg.DryRun
	rep := &Report{}

	for _, path := range files {
		rep.Scanned++
		n, size, err := substituteFile(path, oldTok, newTok, r.cfg.WordMatch, apply)
		if err != nil {
			rep.addError(r.rel(path), err)
			r.log.Error("%s: %v", r.rel(path), err)
			continue
		}
		if n == 0 {
			continue
		}
		rep.Changed++
		rep.Replacements += n
		rep.BytesRewritten += size
		r.log.Debug("%s: %s", r.rel(path), display.FormatCount(n, "replacement"))
	}

	r.relocate(rep, apply)
	r.logSummary(rep)
	return rep, nil
}

// relocate moves the token-named package directory and the token-named docs
// page to the new token. The package directory is required; the docs page
// is moved only when present, since not every scaffold keeps Sphinx docs.
func (r *Renamer) relocate(rep *Report, apply bool) {
	oldTok, newTok := r.cfg.OldToken, r.cfg.NewToken

	r.moveOne(rep, oldTok, newTok, apply, true)

	oldRst := filepath.Join("docs", "source", oldTok+".rst")
	newRst := filepath.Join("docs", "source", newTok+".rst")
	r.moveOne(rep, oldRst, newRst, apply, false)
}

func (r *Renamer) moveOne(rep *Report, oldRel, newRel string, apply, required bool) {
	moved, err := moveEntry(filepath.Join(r.root, oldRel), filepath.Join(r.root, newRel), apply)
	switch {
	case err != nil:
		if errors.Is(err, ErrMoveSourceMissing) && !required {
			r.log.Debug("%s: not present, skipping", oldRel)
			return
		}
		rep.addError(oldRel, err)
		r.log.Error("%s -> %s: %v", oldRel, newRel, err)
	case moved:
		rep.Moved++
		if apply {
			r.log.Debug("moved %s -> %s", oldRel, newRel)
		} else {
			r.log.Debug("would move %s -> %s", oldRel, newRel)
		}
	default:
		r.log.Debug("%s already moved to %s", oldRel, newRel)
	}
}

func (r *Renamer) logSummary(rep *Report) {
	prefix := ""
	if r.cfg.DryRun {
		prefix = "[DRY] "
	}
	r.log.Info("%sScanned %s: %s changed, %s, %s moved, %s rewritten",
		prefix,
		display.FormatCount(rep.Scanned, "file"),
		display.FormatCount(rep.Changed, "file"),
		display.FormatCount(rep.Replacements, "replacement"),
		display.FormatCount(rep.Moved, "path"),
		display.FormatBytes(rep.BytesRewritten))

	if rep.Failed() {
		r.log.Error("%s failed:", display.FormatCount(len(rep.Errors), "path"))
		for _, fe := range rep.Errors {
			r.log.Error("  %s: %v", fe.Path, fe.Err)
		}
		return
	}
	r.log.Success("%sRenamed %q to %q", prefix, r.cfg.OldToken, r.cfg.NewToken)
}

// rel shortens path for display, falling back to the full path when it is
// outside the root.
func (r *Renamer) rel(path string) string {
	rel, err := filepath.Rel(r.root, path)
	if err != nil || rel == "." || len(rel) > len(path) {
		return path
	}
	return rel
}
