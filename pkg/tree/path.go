package tree

import (
	"strconv"
	"strings"

	"github.com/sanjibnarzary/svgling/pkg/errors"
)

// Path identifies a node by the sequence of child indices descending from
// the root. The empty path is the root itself.
type Path []int

// String formats the path in dotted notation, e.g. "0.1.2".
// The root path formats as the empty string.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, n := range p {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// ParsePath parses dotted path notation ("0.1.2"). The empty string is
// the root path.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}
	parts := strings.Split(s, ".")
	p := make(Path, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, errors.New(errors.ErrCodeInvalidPath, "bad path component %q in %q", part, s)
		}
		p[i] = n
	}
	return p, nil
}

// CommonAncestor returns the path of the deepest node containing both p1
// and p2: the longest common prefix, or the shorter path when one is a
// prefix of the other.
func CommonAncestor(p1, p2 Path) Path {
	n := min(len(p1), len(p2))
	for i := 0; i < n; i++ {
		if p1[i] != p2[i] {
			return append(Path{}, p1[:i]...)
		}
	}
	if len(p1) < len(p2) {
		return append(Path{}, p1...)
	}
	return append(Path{}, p2...)
}
