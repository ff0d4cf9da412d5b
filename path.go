package godto

import (
	"fmt"
	"strconv"
	"strings"
)

// Path locates a value inside the input: string elements are mapping keys and
// int elements are sequence indices, outermost first. An empty Path refers to
// the input root.
type Path []any

// String renders the path as a bracketed chain rooted at "data", for example
// data["items"][2]["price"]. The root path renders as "data".
func (p Path) String() string {
	if len(p) == 0 {
		return "data"
	}
	b := &strings.Builder{}
	b.WriteString("data")
	for _, seg := range p {
		switch s := seg.(type) {
		case string:
			fmt.Fprintf(b, "[%q]", s)
		case int:
			fmt.Fprintf(b, "[%d]", s)
		default:
			fmt.Fprintf(b, "[%v]", s)
		}
	}
	return b.String()
}

// JSONPointer renders the path as an RFC 6901 JSON Pointer, for example
// /items/2/price. The root path renders as "".
func (p Path) JSONPointer() string {
	if len(p) == 0 {
		return ""
	}
	b := &strings.Builder{}
	for _, seg := range p {
		b.WriteByte('/')
		switch s := seg.(type) {
		case string:
			b.WriteString(escapePointerToken(s))
		case int:
			b.WriteString(strconv.Itoa(s))
		default:
			b.WriteString(escapePointerToken(fmt.Sprint(s)))
		}
	}
	return b.String()
}

func escapePointerToken(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}

// PrefixPath returns a copy of p with seg prepended. Child issues are rebased
// under their enclosing key or index with this helper.
func PrefixPath(p Path, seg any) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, seg)
	out = append(out, p...)
	return out
}

// PrefixIssues returns a copy of iss with every issue rebased under seg.
// Converters may hand back shared sentinel Issues values, so rebasing never
// writes through the slice it was given.
func PrefixIssues(iss Issues, seg any) Issues {
	out := make(Issues, len(iss))
	for i, it := range iss {
		it.Path = PrefixPath(it.Path, seg)
		out[i] = it
	}
	return out
}
