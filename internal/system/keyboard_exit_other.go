//go:build !linux

package system

import "context"

const (
	KeyEsc = 1
	KeyQ   = 16
	KeyF4  = 62
)

// StartExitOnKey is a no-op where evdev is unavailable.
func StartExitOnKey(ctx context.Context, l logger, onExit func(), keys ...uint16) {
	if l != nil {
		l.Infof("input", "exit keys unsupported on this platform")
	}
}
