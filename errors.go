package duet

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType = "invalid_type" // value present but of the wrong kind
	CodeRequired    = "required"     // required object key absent
	CodeInvalidNull = "invalid_null" // null where a value was expected, or vice versa
	CodeParseError  = "parse_error"  // input text is not valid JSON/YAML
)

// Issue represents a single decode failure entry.
type Issue struct {
	Path    string // JSON Pointer locating the failure (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: expected shape, remediation hints.
	Cause   error  // Optional: underlying error.
}

// Issues is a collection of decode failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path: found Bool
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// PrefixIssues re-roots every issue path in err under base ("/key" or
// "/index"), preserving code, message, and cause. Combinators use it to
// chain the failure path from root to the offending element without
// swallowing the inner error. A non-Issues err is wrapped as a single issue
// at base.
func PrefixIssues(base string, err error) Issues {
	if iss, ok := AsIssues(err); ok {
		out := make(Issues, 0, len(iss))
		for _, it := range iss {
			p := it.Path
			switch {
			case p == "" || p == "/":
				p = base
			case p[0] == '/':
				p = base + p
			default:
				p = base + "/" + p
			}
			out = append(out, Issue{Path: p, Code: it.Code, Message: it.Message, Hint: it.Hint, Cause: it.Cause})
		}
		return out
	}
	return Issues{Issue{Path: base, Code: CodeParseError, Message: err.Error(), Cause: err}}
}
