package ftpkit

import (
	"fmt"
	"io"
	"strings"

	"github.com/jlaffaye/ftp"
)

// fallbackRetrieve downloads a single file over a fresh, short-lived
// session, independent of the connection's own control channel. It is the
// second chance DownloadFile takes when the primary transport fails to
// retrieve a file, typically because the long-lived session went stale.
func fallbackRetrieve(o *Options, host, remotePath string, w io.Writer) error {
	if !strings.Contains(host, ":") {
		host += ":21"
	}

	conn, err := ftp.Dial(host, ftp.DialWithTimeout(o.Timeout))
	if err != nil {
		return fmt.Errorf("fallback dial %s: %w", host, err)
	}
	defer conn.Quit()

	username, password := o.Username, o.Password
	if username == "" {
		username = anonymousUser
		password = anonymousUser
	}
	if err := conn.Login(username, password); err != nil {
		return fmt.Errorf("fallback login %s: %w", host, err)
	}

	resp, err := conn.Retr(remotePath)
	if err != nil {
		return fmt.Errorf("fallback retr %s: %w", remotePath, err)
	}
	defer resp.Close()

	if _, err := io.Copy(w, resp); err != nil {
		return fmt.Errorf("fallback copy %s: %w", remotePath, err)
	}
	return nil
}
