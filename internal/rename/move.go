package rename

import (
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for relocation outcomes.
var (
	ErrMoveSourceMissing = errors.New("source path does not exist")
	ErrMoveTargetExists  = errors.New("target path already exists")
)

// moveEntry relocates oldPath to newPath. The operation is re-runnable:
// when the source is gone and the destination already exists the move is
// treated as already done (moved=false, no error). An existing destination
// next to a still-present source is an error; nothing is ever overwritten.
func moveEntry(oldPath, newPath string, apply bool) (bool, error) {
	_, srcErr := os.Lstat(oldPath)
	_, dstErr := os.Lstat(newPath)
	srcExists := srcErr == nil
	dstExists := dstErr == nil

	switch {
	case !srcExists && dstExists:
		return false, nil // previous run already moved it
	case !srcExists:
		return false, ErrMoveSourceMissing
	case dstExists:
		return false, ErrMoveTargetExists
	}

	if !apply {
		return true, nil
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return false, fmt.Errorf("rename: %w", err)
	}
	return true, nil
}
