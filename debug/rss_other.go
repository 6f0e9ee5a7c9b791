//go:build !windows && !linux && !darwin && !freebsd && !netbsd && !openbsd

package debug

import "errors"

func residentSetSize() (uint64, error) {
	return 0, errors.New("not supported on this platform")
}
