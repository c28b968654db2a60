// internal/writers/brokenpipe.go
package writers

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// IsBrokenPipe reports whether an error is a broken or closed pipe, so
// `faidx ... | head` exits quietly instead of reporting a write failure.
func IsBrokenPipe(err error) bool {
	return err != nil &&
		(errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe) || errors.Is(err, os.ErrClosed))
}
