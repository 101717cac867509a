//go:build !unix

package feedback

import (
	"errors"
	"os"
)

var errMappingUnsupported = errors.New("memory mapping not supported on this platform")

func mapReadOnly(_ *os.File, _ int) ([]byte, error) {
	return nil, errMappingUnsupported
}

func unmapReadOnly(_ []byte) error {
	return nil
}
