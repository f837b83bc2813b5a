package ftpkit

import (
	"fmt"
	"io"
	"strings"

	"github.com/dutchcoders/goftp"
)

// defaultTransport is the name the goftp-backed transport registers under.
const defaultTransport = "goftp"

func init() {
	RegisterTransport(defaultTransport, func(o *Options) Transport {
		return &goftpTransport{}
	})
}

// anonymousUser is used when no credentials are configured. FTP servers
// conventionally accept any password for it.
const anonymousUser = "anonymous"

// goftpTransport drives a dutchcoders/goftp control session. goftp hands
// back LIST output as raw lines, which is exactly what the listing parser
// wants to see.
type goftpTransport struct {
	ftp *goftp.FTP
}

func (t *goftpTransport) Connect(host string) error {
	if !strings.Contains(host, ":") {
		host += ":21"
	}
	ftp, err := goftp.Connect(host)
	if err != nil {
		return err
	}
	t.ftp = ftp
	return nil
}

func (t *goftpTransport) Login(username, password string) error {
	if username == "" {
		username = anonymousUser
		password = anonymousUser
	}
	return mapStatusError(t.ftp.Login(username, password))
}

func (t *goftpTransport) Quit() error {
	return t.ftp.Quit()
}

func (t *goftpTransport) Cwd(path string) error {
	return mapStatusError(t.ftp.Cwd(path))
}

func (t *goftpTransport) Pwd() (string, error) {
	return t.ftp.Pwd()
}

func (t *goftpTransport) List(dir string) ([]string, error) {
	lines, err := t.ftp.List(dir)
	if err != nil {
		return nil, mapStatusError(err)
	}
	// goftp keeps the CRLF line endings of the data channel.
	trimmed := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed = append(trimmed, strings.TrimRight(line, "\r\n"))
	}
	return trimmed, nil
}

func (t *goftpTransport) Retr(path string, w io.Writer) error {
	_, err := t.ftp.Retr(path, func(r io.Reader) error {
		_, copyErr := io.Copy(w, r)
		return copyErr
	})
	return mapStatusError(err)
}

// mapStatusError attaches a sentinel to errors whose text starts with a
// recognizable FTP status code, so callers can branch with errors.Is.
func mapStatusError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "550"):
		return fmt.Errorf("%w: %s", ErrNotExist, msg)
	case strings.HasPrefix(msg, "530"), strings.HasPrefix(msg, "532"):
		return fmt.Errorf("%w: %s", ErrPermission, msg)
	}
	return err
}
