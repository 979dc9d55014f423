//go:build !linux

package system

import "errors"

var errNoConsole = errors.New("console mode switching is only supported on linux")

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

func SetGraphicsMode() error { return errNoConsole }
func RestoreTextMode() error { return errNoConsole }
func HideCursor() error      { return errNoConsole }
func ShowCursor() error      { return errNoConsole }

func SetGraphicsModeWithLog(l logger) error { return SetGraphicsMode() }
func RestoreTextModeWithLog(l logger) error { return RestoreTextMode() }
func HideCursorWithLog(l logger) error      { return HideCursor() }
func ShowCursorWithLog(l logger) error      { return ShowCursor() }
