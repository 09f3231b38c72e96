package pipeline

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// copyFile copies src to a new file dst and returns the bytes written.
// dst is created with O_EXCL, so an existing file is never overwritten and
// the check and the creation happen in one step. A partial dst is removed
// when the copy fails.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return 0, fmt.Errorf("%w: %s", ErrCollision, dst)
		}
		return 0, err
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		os.Remove(dst)
		return 0, err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return 0, err
	}
	return n, nil
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
