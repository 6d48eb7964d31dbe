// Package rename retargets a scaffold's package placeholder token: it
// rewrites every occurrence of the old token in the candidate file set and
// relocates the token-named package directory and its docs page.
//
// Candidate files come either from the fixed scaffold path list (default)
// or from version control (git mode). Substitution failures are collected
// per file and reported at the end rather than aborting or being silently
// swallowed; the run as a whole fails when any file failed.
//
// The operation is safe to re-run after a partial failure: files already
// substituted have no remaining matches, and a relocation whose source is
// gone while its destination exists is treated as already done.
package rename
