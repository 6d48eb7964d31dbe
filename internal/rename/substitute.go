package rename

import (
	"bytes"
	"os"
	"regexp"
	"strings"
)

// looksBinary reports whether data appears to be a binary file (contains a
// NUL byte in the first 8000 bytes, the same heuristic git uses).
func looksBinary(data []byte) bool {
	n := len(data)
	if n > 8000 {
		n = 8000
	}
	return bytes.IndexByte(data[:n], 0) >= 0
}

// substituteFile rewrites path in place, replacing occurrences of old with
// new. In word mode only whole-identifier matches are replaced; otherwise
// raw substrings are, matching the scaffold's historical behavior.
//
// Returns the replacement count and the rewritten size. A count of zero
// means no match was found and the file was left untouched; that is not an
// error. Binary files are skipped the same way.
func substituteFile(path, oldTok, newTok string, word, apply bool) (int, int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, err
	}
	if looksBinary(data) {
		return 0, 0, nil
	}

	var count int
	var out string
	if word {
		re := wordPattern(oldTok)
		count = len(re.FindAllStringIndex(string(data), -1))
		if count == 0 {
			return 0, 0, nil
		}
		out = re.ReplaceAllString(string(data), newTok)
	} else {
		count = strings.Count(string(data), oldTok)
		if count == 0 {
			return 0, 0, nil
		}
		out = strings.ReplaceAll(string(data), oldTok, newTok)
	}

	if !apply {
		return count, int64(len(out)), nil
	}

	fi, err := os.Stat(path)
	if err != nil {
		return 0, 0, err
	}
	if err := os.WriteFile(path, []byte(out), fi.Mode().Perm()); err != nil {
		return 0, 0, err
	}
	return count, int64(len(out)), nil
}

// wordPattern matches token only where it stands as a whole identifier.
func wordPattern(token string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(token) + `\b`)
}
