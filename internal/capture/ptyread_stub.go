//go:build !linux

package capture

import (
	"context"
	"os"
)

func readPTY(ctx context.Context, file *os.File, buf []byte) (int, error) {
	if file == nil {
		return 0, os.ErrInvalid
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return file.Read(buf)
}
