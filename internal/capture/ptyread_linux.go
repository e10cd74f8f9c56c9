//go:build linux

package capture

import (
	"context"
	"errors"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// readPTY waits for the PTY to become readable in short polls so ctx is
// observed while the program is idle.
func readPTY(ctx context.Context, file *os.File, buf []byte) (int, error) {
	if file == nil {
		return 0, io.EOF
	}
	pollfds := []unix.PollFd{{Fd: int32(file.Fd()), Events: unix.POLLIN}}
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if _, err := unix.Poll(pollfds, 50); err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return 0, err
		}
		revents := pollfds[0].Revents
		if revents&(unix.POLLIN|unix.POLLERR|unix.POLLHUP) == 0 {
			continue
		}
		return file.Read(buf)
	}
}
