// Package ftpkit provides a small client-side abstraction over FTP that
// lists and fetches remote resources using absolute paths or paths relative
// to the root directory a connection was dialed with.
//
// ftpkit never speaks the wire protocol itself. Protocol framing belongs to
// a [Transport]; the package ships a transport backed by dutchcoders/goftp
// and a secondary single-use download session backed by jlaffaye/ftp. What
// ftpkit owns is the part with actual decisions in it: resolving user paths
// against the connection root, parsing raw LIST lines, and classifying
// every entry as a file, a directory or a symbolic link.
//
// # Basic Usage
//
//	err := ftpkit.With("ftp://example.com/some/path", func(c *ftpkit.Connection) error {
//	    dirs, err := c.GetDirectories("")
//	    if err != nil {
//	        return err
//	    }
//	    files, err := c.GetFilenames("incoming")
//	    if err != nil {
//	        return err
//	    }
//
//	    if c.DownloadFile("incoming/report.csv", "/tmp/report.csv") {
//	        // file landed on disk
//	    }
//	    _ = dirs
//	    _ = files
//	    return nil
//	})
//
// The callback form guarantees the session is quit on every exit path. The
// explicit [Dial] / [Connection.Close] pair is available when a callback
// does not fit; pair it with defer.
//
// # Paths
//
// Every operation takes a path that may be relative to the connection root
// or absolute on the server:
//
//	c, _ := ftpkit.Dial("ftp://example.com/ftp/root/path")
//	defer c.Close()
//
//	// These list the same directory.
//	c.GetFilenames("with/fish/file/")
//	c.GetFilenames("/ftp/root/path/with/fish/file/")
//
// Absolute paths outside the root are accepted as-is; the root scopes
// relative resolution, it is not a sandbox.
//
// # Selectors
//
// Listing results can be filtered with composable selectors:
//
//	entries, err := c.GetEntries("logs", ftpkit.And(
//	    ftpkit.OfKind(ftpkit.EntryFile),
//	    ftpkit.Glob("*.gz"),
//	))
//
// # Configuration
//
// Connections can also be dialed from environment configuration the usual
// beaver-kit way:
//
//	cfg, err := ftpkit.GetConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c, err := ftpkit.New(cfg)
package ftpkit
