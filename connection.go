package ftpkit

import (
	"errors"
	"log/slog"
	"os"
)

// Connection is a live, logged-in session scoped to the root directory of
// the address it was dialed with. Relative paths in every operation resolve
// against that root; absolute paths are taken as-is.
//
// A Connection is a single stateful protocol channel and is not safe for
// concurrent use. Callers needing parallel transfers should dial independent
// connections.
type Connection struct {
	host      string
	root      string
	transport Transport
	opts      *Options
	log       *slog.Logger

	closed       bool
	lastChecksum string
}

// Dial opens a connection to an ftp address such as
// "ftp://example.com/some/path". The host part is dialed and logged in, and
// the path part becomes the connection root. Dial never returns a half-open
// connection: any failure after the socket opens quits the session before
// returning.
func Dial(addr string, opts ...Option) (*Connection, error) {
	o := newOptions(opts...)

	host, root, err := SplitHostPath(addr)
	if err != nil {
		return nil, err
	}

	name := o.Transport
	if name == "" {
		name = defaultTransport
	}
	transport, err := newTransport(name, o)
	if err != nil {
		return nil, err
	}

	c := &Connection{
		host:      host,
		root:      root,
		transport: transport,
		opts:      o,
		log:       o.Logger,
	}
	if err := c.open(); err != nil {
		return nil, err
	}
	return c, nil
}

// With dials addr, hands the open connection to fn and closes it again on
// every exit path, normal return or not.
func With(addr string, fn func(*Connection) error, opts ...Option) error {
	c, err := Dial(addr, opts...)
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(c)
}

// open connects, logs in and enters the root directory. Used by Dial and
// again when a stale session needs a relogin.
func (c *Connection) open() error {
	c.log.Debug("connecting", "host", c.host)
	if err := c.transport.Connect(c.host); err != nil {
		return &PathError{Op: "dial", Path: c.host, Err: err}
	}
	if err := c.transport.Login(c.opts.Username, c.opts.Password); err != nil {
		c.transport.Quit()
		return &PathError{Op: "dial", Path: c.host, Err: err}
	}
	if err := c.transport.Cwd(c.root); err != nil {
		c.transport.Quit()
		return &PathError{Op: "dial", Path: c.root, Err: err}
	}
	if wd, err := c.transport.Pwd(); err == nil {
		c.log.Debug("connected", "host", c.host, "workdir", wd)
	}
	return nil
}

// relogin tears the session down and opens it again. FTP servers drop idle
// control channels, and a fresh login is the documented fix.
func (c *Connection) relogin() error {
	c.log.Warn("session error, logging in again", "host", c.host)
	c.transport.Quit()
	return c.open()
}

// Close quits the session. Closing an already closed connection is a no-op.
// Every operation after Close fails with ErrClosed.
func (c *Connection) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	err := c.transport.Quit()
	if err != nil {
		c.log.Warn("quit failed", "host", c.host, "error", err)
		return err
	}
	c.log.Debug("connection closed", "host", c.host)
	return nil
}

// Root returns the root directory the connection was dialed with.
func (c *Connection) Root() string {
	return c.root
}

// LastChecksum returns the digest of the most recently downloaded file, or
// the empty string when no checksum option is set or nothing was downloaded
// yet.
func (c *Connection) LastChecksum() string {
	return c.lastChecksum
}

// GetFilenames lists the regular files in path. An empty path means the
// connection root; a relative path resolves against it.
func (c *Connection) GetFilenames(path string) ([]string, error) {
	listing, err := c.List(path)
	if err != nil {
		return nil, err
	}
	return listing.Files, nil
}

// GetDirectories lists the directories in path. An empty path means the
// connection root; a relative path resolves against it.
func (c *Connection) GetDirectories(path string) ([]string, error) {
	listing, err := c.List(path)
	if err != nil {
		return nil, err
	}
	return listing.Directories, nil
}

// GetLinks lists the symbolic links in path. An empty path means the
// connection root; a relative path resolves against it.
func (c *Connection) GetLinks(path string) ([]string, error) {
	listing, err := c.List(path)
	if err != nil {
		return nil, err
	}
	return listing.Links, nil
}

// List fetches and classifies the full directory listing for path. The
// listing is rebuilt on every call; nothing is cached between calls, since
// the remote directory may change at any time.
func (c *Connection) List(path string) (*Listing, error) {
	if c.closed {
		return nil, &PathError{Op: "list", Path: path, Err: ErrClosed}
	}
	dir, err := Resolve(c.root, path)
	if err != nil {
		return nil, err
	}

	lines, err := c.transport.List(dir)
	if err != nil {
		// A 550 or 530 answer is the server's verdict on this path, not a
		// broken session; only other failures earn a relogin and retry.
		if errors.Is(err, ErrNotExist) || errors.Is(err, ErrPermission) {
			return nil, &PathError{Op: "list", Path: dir, Err: err}
		}
		c.log.Warn("listing failed, retrying", "dir", dir, "error", err)
		if rerr := c.relogin(); rerr != nil {
			return nil, &PathError{Op: "list", Path: dir, Err: err}
		}
		lines, err = c.transport.List(dir)
		if err != nil {
			return nil, &PathError{Op: "list", Path: dir, Err: err}
		}
	}

	c.log.Debug("listed directory", "dir", dir, "lines", len(lines))
	return partitionLines(lines), nil
}

// DownloadFile transfers a single remote file to localPath and reports
// success as a bare boolean, so callers can branch without unwrapping an
// error. remotePath may be absolute or relative to the connection root.
//
// The transfer lands in a temporary file first and is renamed into place
// only when it holds at least one byte; a zero-size or failed download is
// removed again so it can be retried later. When the primary session fails
// and the fallback is enabled, the transfer is retried once over a fresh
// single-use session.
func (c *Connection) DownloadFile(remotePath, localPath string) bool {
	if c.closed {
		c.log.Warn("download on closed connection", "remote", remotePath)
		return false
	}
	remote, err := Resolve(c.root, remotePath)
	if err != nil {
		c.log.Warn("download failed", "remote", remotePath, "error", err)
		return false
	}

	tmp := localPath + ".tmp"
	err = c.retrieve(remote, tmp)
	if err != nil && !c.opts.DisableFallback {
		c.log.Warn("download failed, trying fallback session", "remote", remote, "error", err)
		err = c.retrieveFallback(remote, tmp)
	}
	if err != nil {
		c.log.Warn("download failed", "remote", remote, "error", err)
		os.Remove(tmp)
		return false
	}

	info, err := os.Stat(tmp)
	if err != nil {
		return false
	}
	if info.Size() == 0 {
		c.log.Warn("downloaded file has size zero, removing it", "remote", remote, "local", localPath)
		os.Remove(tmp)
		return false
	}
	if err := os.Rename(tmp, localPath); err != nil {
		c.log.Warn("download failed", "local", localPath, "error", err)
		os.Remove(tmp)
		return false
	}

	if c.opts.Checksum != "" {
		// Reset first so a failed digest never leaves an earlier file's
		// checksum behind.
		c.lastChecksum = ""
		sum, err := ChecksumFile(localPath, c.opts.Checksum)
		if err == nil {
			c.lastChecksum = sum
			c.log.Debug("downloaded file", "remote", remote, "local", localPath,
				"checksum", sum, "algorithm", c.opts.Checksum)
			return true
		}
		c.log.Warn("checksum failed", "local", localPath, "error", err)
	}

	c.log.Debug("downloaded file", "remote", remote, "local", localPath, "size", info.Size())
	return true
}

// retrieve streams remote into a freshly created local file over the
// primary transport.
func (c *Connection) retrieve(remote, local string) error {
	f, err := os.Create(local)
	if err != nil {
		return err
	}
	if err := c.transport.Retr(remote, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// retrieveFallback repeats the transfer over a single-use secondary
// session.
func (c *Connection) retrieveFallback(remote, local string) error {
	f, err := os.Create(local)
	if err != nil {
		return err
	}
	if err := fallbackRetrieve(c.opts, c.host, remote, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
