package health

import (
	"context"
	"net"
)

// TCPChecker reports whether a TCP connection to addr can be opened. It is used
// for the PayPal API host, where an authenticated probe would cost a token grant.
type TCPChecker struct {
	name string
	addr string
}

func NewTCPChecker(name, addr string) *TCPChecker {
	return &TCPChecker{name: name, addr: addr}
}

func (c *TCPChecker) Name() string {
	return c.name
}

func (c *TCPChecker) Check(ctx context.Context) Result {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return Result{Status: StatusDown, Message: err.Error()}
	}
	_ = conn.Close()
	return Result{Status: StatusUp}
}
