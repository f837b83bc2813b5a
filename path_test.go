package ftpkit

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		root  string
		input string
		want  string
	}{
		{
			name:  "relative joins root",
			root:  "/ftp/root/path",
			input: "with/fish/file",
			want:  "/ftp/root/path/with/fish/file",
		},
		{
			name:  "absolute taken at face value",
			root:  "/ftp/root/path",
			input: "/somewhere/else",
			want:  "/somewhere/else",
		},
		{
			name:  "absolute outside root is not sandboxed",
			root:  "/ftp/root/path",
			input: "/etc/motd",
			want:  "/etc/motd",
		},
		{
			name:  "empty input resolves to root",
			root:  "/ftp/root/path",
			input: "",
			want:  "/ftp/root/path",
		},
		{
			name:  "single separator resolves to server root",
			root:  "/ftp/root/path",
			input: "/",
			want:  "/",
		},
		{
			name:  "duplicate separators collapse",
			root:  "/ftp//root",
			input: "a//b",
			want:  "/ftp/root/a/b",
		},
		{
			name:  "trailing separator stripped",
			root:  "/ftp/root/path",
			input: "with/fish/file/",
			want:  "/ftp/root/path/with/fish/file",
		},
		{
			name:  "dot segments stay literal",
			root:  "/ftp/root",
			input: "a/./b/..",
			want:  "/ftp/root/a/./b/..",
		},
		{
			name:  "empty root with absolute input",
			root:  "",
			input: "/a/b",
			want:  "/a/b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.root, tt.input)
			if err != nil {
				t.Fatalf("Resolve(%q, %q) error: %v", tt.root, tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.root, tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveEmpty(t *testing.T) {
	_, err := Resolve("", "")
	if err == nil {
		t.Fatal("Resolve(\"\", \"\") should fail")
	}
	if !errors.Is(err, ErrEmptyPath) {
		t.Errorf("error = %v, want ErrEmptyPath", err)
	}
	var pathErr *PathError
	if !errors.As(err, &pathErr) {
		t.Errorf("error %v is not a *PathError", err)
	}
}

func TestResolveIdempotent(t *testing.T) {
	root := "/ftp/root/path"
	inputs := []string{"", "/", "a/b/", "/x//y/", "with/fish/file"}

	for _, input := range inputs {
		once, err := Resolve(root, input)
		if err != nil {
			t.Fatalf("Resolve(%q, %q) error: %v", root, input, err)
		}
		twice, err := Resolve(root, once)
		if err != nil {
			t.Fatalf("Resolve(%q, %q) error: %v", root, once, err)
		}
		if once != twice {
			t.Errorf("Resolve not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestResolveRelativeAbsoluteEquivalence(t *testing.T) {
	root := "/ftp/root/path"

	rel, err := Resolve(root, "with/fish/file/")
	if err != nil {
		t.Fatal(err)
	}
	abs, err := Resolve(root, "/ftp/root/path/with/fish/file/")
	if err != nil {
		t.Fatal(err)
	}
	if rel != abs {
		t.Errorf("relative resolved to %q, absolute to %q", rel, abs)
	}
}

func TestSplitHostPath(t *testing.T) {
	tests := []struct {
		name     string
		addr     string
		wantHost string
		wantRoot string
	}{
		{
			name:     "scheme and path",
			addr:     "ftp://example.com/ftp/root/path",
			wantHost: "example.com",
			wantRoot: "/ftp/root/path",
		},
		{
			name:     "no scheme",
			addr:     "example.com/data",
			wantHost: "example.com",
			wantRoot: "/data",
		},
		{
			name:     "host only",
			addr:     "ftp://example.com",
			wantHost: "example.com",
			wantRoot: "/",
		},
		{
			name:     "host with trailing separator",
			addr:     "ftp://example.com/",
			wantHost: "example.com",
			wantRoot: "/",
		},
		{
			name:     "host with port",
			addr:     "ftp://example.com:2121/pub",
			wantHost: "example.com:2121",
			wantRoot: "/pub",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, root, err := SplitHostPath(tt.addr)
			if err != nil {
				t.Fatalf("SplitHostPath(%q) error: %v", tt.addr, err)
			}
			if host != tt.wantHost || root != tt.wantRoot {
				t.Errorf("SplitHostPath(%q) = (%q, %q), want (%q, %q)",
					tt.addr, host, root, tt.wantHost, tt.wantRoot)
			}
		})
	}
}

func TestSplitHostPathEmpty(t *testing.T) {
	for _, addr := range []string{"", "ftp://"} {
		if _, _, err := SplitHostPath(addr); !errors.Is(err, ErrEmptyPath) {
			t.Errorf("SplitHostPath(%q) error = %v, want ErrEmptyPath", addr, err)
		}
	}
}
