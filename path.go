package ftpkit

import (
	"strings"
)

// Separator is the remote path separator. FTP servers in scope present a
// Unix-style filesystem regardless of the client platform.
const Separator = "/"

// Resolve turns a user-supplied path into an absolute remote path.
//
// An input with a leading separator is already absolute and is accepted at
// face value, even when it points outside root. Anything else is treated as
// relative to root and joined with exactly one separator. The result is
// normalized: duplicate separators collapse, a trailing separator is
// stripped unless the result is the server root itself. Dot segments are
// kept as literal characters, never interpreted.
//
// Resolve is idempotent: feeding its own result back in yields the same
// path. It fails only when both root and input are empty, which names no
// path at all.
func Resolve(root, input string) (string, error) {
	if root == "" && input == "" {
		return "", &PathError{Op: "resolve", Path: input, Err: ErrEmptyPath}
	}
	if strings.HasPrefix(input, Separator) {
		return normalize(input), nil
	}
	if input == "" {
		return normalize(root), nil
	}
	return normalize(root + Separator + input), nil
}

// normalize collapses repeated separators and strips a trailing separator.
// The empty path and bare separators normalize to the server root.
func normalize(p string) string {
	segments := strings.Split(p, Separator)
	kept := segments[:0]
	for _, s := range segments {
		if s != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return Separator
	}
	return Separator + strings.Join(kept, Separator)
}

// SplitHostPath splits an ftp address such as "ftp://example.com/some/path"
// into its host and root path parts. The scheme prefix is optional, and an
// address without a path component gets the server root. The returned root
// is always absolute and normalized.
func SplitHostPath(addr string) (host, root string, err error) {
	if addr == "" {
		return "", "", &PathError{Op: "split", Path: addr, Err: ErrEmptyPath}
	}
	rest := strings.TrimPrefix(addr, "ftp://")
	if rest == "" {
		return "", "", &PathError{Op: "split", Path: addr, Err: ErrEmptyPath}
	}
	host, root, _ = strings.Cut(rest, Separator)
	if host == "" {
		return "", "", &PathError{Op: "split", Path: addr, Err: ErrEmptyPath}
	}
	return host, normalize(Separator + root), nil
}
