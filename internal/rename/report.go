package rename

// FileError records a single failed file or relocation.
type FileError struct {
	Path string
	Err  error
}

// Report tracks aggregate counters across a rename run.
type Report struct {
	NoOp bool // New token equals old token; nothing was touched.

	Scanned        int // Candidate files examined.
	Changed        int // Files rewritten with at least one replacement.
	Replacements   int // Total token occurrences replaced.
	Moved          int // Path relocations performed.
	BytesRewritten int64

	Errors []FileError
}

// Failed reports whether any file or relocation failed.
func (r *Report) Failed() bool {
	return len(r.Errors) > 0
}

func (r *Report) addError(path string, err error) {
	r.Errors = append(r.Errors, FileError{Path: path, Err: err})
}
