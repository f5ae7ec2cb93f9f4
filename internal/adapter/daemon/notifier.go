// Package daemon implements the fire-and-forget wake-up call to the
// provisioning daemon.
package daemon

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/neomorfeo/hostiq/internal/domain"
)

// The daemon speaks a minimal line protocol: it greets with a 250 line,
// then answers "helo <version>", "execute query" and "bye" with one 250
// line each. The wake-up carries no payload; the daemon re-scans every
// status column on its own.
const answerOK = "250"

// Notifier wakes the provisioning daemon over TCP. Failures are logged
// and reported only through the WakeHint: by the time Notify runs the
// mutation has committed, and the reconciliation sweep is the recovery
// path for a missed wake-up.
type Notifier struct {
	addr    string
	version string
	timeout time.Duration
	log     *slog.Logger
}

var _ domain.DaemonNotifier = (*Notifier)(nil)

// New creates a notifier for the daemon at addr. The version string is
// announced in the helo exchange.
func New(addr, version string, timeout time.Duration, log *slog.Logger) *Notifier {
	return &Notifier{addr: addr, version: version, timeout: timeout, log: log}
}

// Notify performs the wake-up handshake. It never returns an error: the
// hint records whether the daemon acknowledged the request.
func (n *Notifier) Notify(ctx context.Context) domain.WakeHint {
	if err := n.wake(ctx); err != nil {
		n.log.Warn("daemon wake-up failed", "addr", n.addr, "error", err)
		return domain.WakeHint{Delivered: false}
	}
	return domain.WakeHint{Delivered: true}
}

func (n *Notifier) wake(ctx context.Context) error {
	// The timeout must bound the dial too: callers hold an HTTP request
	// open, and a blackholed address would otherwise block for the OS
	// TCP timeout.
	d := net.Dialer{Timeout: n.timeout}
	conn, err := d.DialContext(ctx, "tcp", n.addr)
	if err != nil {
		return fmt.Errorf("dialing daemon: %w", err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(n.timeout)); err != nil {
		return fmt.Errorf("setting deadline: %w", err)
	}

	r := bufio.NewReader(conn)
	if err := readAnswer(r); err != nil {
		return fmt.Errorf("reading greeting: %w", err)
	}
	for _, cmd := range []string{"helo " + n.version, "execute query", "bye"} {
		if _, err := fmt.Fprintf(conn, "%s\n", cmd); err != nil {
			return fmt.Errorf("sending %q: %w", cmd, err)
		}
		if err := readAnswer(r); err != nil {
			return fmt.Errorf("answer to %q: %w", cmd, err)
		}
	}
	return nil
}

func readAnswer(r *bufio.Reader) error {
	line, err := r.ReadString('\n')
	if err != nil {
		return err
	}
	if !strings.HasPrefix(line, answerOK) {
		return fmt.Errorf("daemon answered %q", strings.TrimSpace(line))
	}
	return nil
}
