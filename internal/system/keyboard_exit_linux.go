//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

const (
	evKey = 0x01

	// Linux input-event-codes.h
	KeyEsc = 1
	KeyQ   = 16
	KeyF4  = 62
)

const eventGlob = "/dev/input/event*"

// StartExitOnKey watches Linux evdev devices under /dev/input/event* and
// invokes onExit once when any of keys is pressed.
//
// It is best-effort: if no input devices are available, it logs and returns.
func StartExitOnKey(ctx context.Context, l logger, onExit func(), keys ...uint16) {
	if onExit == nil || len(keys) == 0 {
		return
	}

	paths, err := filepath.Glob(eventGlob)
	if err != nil || len(paths) == 0 {
		if l != nil {
			l.Infof("input", "no evdev devices found for exit keys")
		}
		return
	}

	var once sync.Once
	triggerExit := func(code uint16) {
		once.Do(func() {
			if l != nil {
				l.Infof("input", "key %d pressed: exiting", code)
			}
			onExit()
		})
	}

	for _, path := range paths {
		go watchDevice(ctx, path, keys, triggerExit)
	}
}

// input_event = timeval + u16 type + u16 code + s32 value.
func eventLayout() (tvSize, eventSize int) {
	tvSize = binary.Size(unix.Timeval{})
	return tvSize, tvSize + 2 + 2 + 4
}

func watchDevice(ctx context.Context, path string, keys []uint16, trigger func(uint16)) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer func() { _ = f.Close() }()

	_, eventSize := eventLayout()
	buf := make([]byte, eventSize*64)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			// Device might have gone away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		if code, ok := pressedKey(buf[:n], keys); ok {
			trigger(code)
			return
		}
	}
}

// pressedKey scans a read of input_event records for a key-down of any of keys.
func pressedKey(data []byte, keys []uint16) (uint16, bool) {
	tvSize, eventSize := eventLayout()
	for off := 0; off+eventSize <= len(data); off += eventSize {
		rec := data[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ != evKey || value != 1 {
			continue
		}
		for _, k := range keys {
			if code == k {
				return code, true
			}
		}
	}
	return 0, false
}
