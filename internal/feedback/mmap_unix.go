//go:build unix

package feedback

import (
	"os"

	"golang.org/x/sys/unix"
)

func mapReadOnly(file *os.File, size int) ([]byte, error) {
	return unix.Mmap(int(file.Fd()), 0, size, unix.PROT_READ, unix.MAP_PRIVATE)
}

func unmapReadOnly(data []byte) error {
	return unix.Munmap(data)
}
