package model

import (
	"context"
	"net"
)

// SecurityLayer produces the listener the server accepts connections
// on, plain or TLS depending on configuration.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is the lifecycle surface of the HTTP server.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
