package ftpkit

import (
	"fmt"
	"io"
	"sync"
)

// Transport is the protocol collaborator a Connection drives. One Transport
// value owns at most one live session: Connect binds it, Quit releases it.
// ftpkit never speaks the wire protocol itself; everything below the
// command level belongs to the Transport implementation.
type Transport interface {
	// Connect opens the control session to host. A host without an
	// explicit port gets the protocol default.
	Connect(host string) error

	// Login authenticates the session. Empty credentials request an
	// anonymous login.
	Login(username, password string) error

	// Quit politely ends the session.
	Quit() error

	// Cwd changes the session's working directory.
	Cwd(path string) error

	// Pwd reports the session's working directory.
	Pwd() (string, error)

	// List returns the raw LIST lines for a directory, unparsed and in
	// server order.
	List(dir string) ([]string, error)

	// Retr streams the remote file's bytes into w.
	Retr(path string, w io.Writer) error
}

// TransportFactory is a function that creates an unconnected Transport
type TransportFactory func(o *Options) Transport

var (
	transportFactories = make(map[string]TransportFactory)
	factoryMutex       sync.RWMutex
)

// RegisterTransport registers a transport factory function
func RegisterTransport(name string, factory TransportFactory) {
	factoryMutex.Lock()
	defer factoryMutex.Unlock()
	transportFactories[name] = factory
}

// newTransport creates a transport instance by registered name
func newTransport(name string, o *Options) (Transport, error) {
	factoryMutex.RLock()
	factory, exists := transportFactories[name]
	factoryMutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: transport %s not registered", ErrNotSupported, name)
	}

	return factory(o), nil
}
