// Package connectivity probes whether the remote country catalog is
// reachable before the application commits to serving traffic.
package connectivity

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"
)

const (
	defaultProbeTimeout = 5 * time.Second
	httpsPort           = "443"
	httpPort            = "80"
)

// Checker verifies network reachability of a single upstream endpoint.
type Checker struct {
	address string
	dialer  *net.Dialer
}

// NewChecker builds a Checker for the host behind baseURL. The port is
// derived from the URL scheme when the host does not carry one.
func NewChecker(baseURL string, timeout time.Duration) (*Checker, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("base URL '%s' has no host", baseURL)
	}

	host := parsed.Hostname()
	port := parsed.Port()
	if port == "" {
		switch parsed.Scheme {
		case "http":
			port = httpPort
		default:
			port = httpsPort
		}
	}

	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}

	return &Checker{
		address: net.JoinHostPort(host, port),
		dialer:  &net.Dialer{Timeout: timeout},
	}, nil
}

// Check opens and immediately closes a TCP connection to the upstream.
// A nil return means the network path is usable.
func (c *Checker) Check(ctx context.Context) error {
	conn, err := c.dialer.DialContext(ctx, "tcp", c.address)
	if err != nil {
		return fmt.Errorf("upstream %s unreachable: %w", c.address, err)
	}
	_ = conn.Close()
	return nil
}

// Address returns the host:port pair the checker probes.
func (c *Checker) Address() string {
	return c.address
}
