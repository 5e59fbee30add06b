package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
	"golang.org/x/sys/unix"
)

const smtpDialTimeout = 5 * time.Second

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckSummaryPath verifies that the step summary file can be appended to:
// the file itself when it exists, otherwise its directory.
func CheckSummaryPath(name, path string) Result {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}
	case err == nil:
		if err := unix.Access(path, unix.W_OK); err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: not writable: %v)", path, err)}
		}
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (writable)", path)}
	case errors.Is(err, os.ErrNotExist):
		dir := CheckDirectoryAccess(name, filepath.Dir(path))
		if dir.Passed {
			dir.Detail = fmt.Sprintf("%s (will be created)", path)
		}
		return dir
	default:
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
}

// CheckWebhookURL verifies that raw is an absolute http(s) URL. An empty
// value is reported as skipped.
func CheckWebhookURL(name, raw string) Result {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Result{Name: name, Skipped: true, Detail: "not configured"}
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("invalid url (%v)", err)}
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return Result{Name: name, Detail: fmt.Sprintf("unsupported scheme %q", u.Scheme)}
	}
	if u.Host == "" {
		return Result{Name: name, Detail: "missing host"}
	}
	detail := u.Host
	if u.Scheme == "http" {
		detail += " (warning: not using https)"
	}
	return Result{Name: name, Passed: true, Detail: detail}
}

// CheckAddresses verifies a comma-separated address list the same way the
// email sender will parse it.
func CheckAddresses(name, list string) Result {
	var addrs []string
	for _, part := range strings.Split(list, ",") {
		if part = strings.TrimSpace(part); part != "" {
			addrs = append(addrs, part)
		}
	}
	if len(addrs) == 0 {
		return Result{Name: name, Detail: "no address"}
	}
	msg := mail.NewMsg()
	if err := msg.To(addrs...); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("invalid address (%v)", err)}
	}
	return Result{Name: name, Passed: true, Detail: strings.Join(addrs, ", ")}
}

// CheckSMTP verifies that the SMTP server accepts TCP connections. It does
// not speak SMTP.
func CheckSMTP(ctx context.Context, host string, port int) Result {
	const name = "SMTP server"

	host = strings.TrimSpace(host)
	if host == "" {
		return Result{Name: name, Detail: "missing host"}
	}
	if port <= 0 {
		port = 587
	}
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	checkCtx, cancel := context.WithTimeout(ctx, smtpDialTimeout)
	defer cancel()

	var dialer net.Dialer
	conn, err := dialer.DialContext(checkCtx, "tcp", addr)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s unreachable (%s)", addr, summarizeDialError(err))}
	}
	_ = conn.Close()

	mode := "STARTTLS when offered"
	if port == 465 {
		mode = "implicit TLS"
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s reachable, %s", addr, mode)}
}

func summarizeDialError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "timed out"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timed out"
	}
	return err.Error()
}
