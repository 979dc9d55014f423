package clock

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/rook-computer/triface/internal/sampler"
)

const (
	DefaultHourHandLength = 30
	// MinuteHandFactor fixes the minute hand at twice the hour hand.
	MinuteHandFactor = 2

	MinScale = 0.5
	MaxScale = 2.0

	// Background hands sit 4..22 minutes either side of the hour marker.
	minOffsetMinutes  = 4
	offsetMinuteRange = 19
)

// MaxHourHandLength bounds the hour hand for a given base length.
func MaxHourHandLength(base int) int { return int(MaxScale * float64(base)) }

var (
	ErrHourOutOfRange   = errors.New("hour out of range")
	ErrMinuteOutOfRange = errors.New("minute out of range")
	ErrScale            = errors.New("invalid hand scale")
)

// Triangle is one shape on the face: the clock center plus the tips of the
// hour and minute hands.
type Triangle struct {
	Center     image.Point
	HourHand   image.Point
	MinuteHand image.Point
	Color      color.RGBA
}

// Points returns the vertices in draw order.
func (t Triangle) Points() [3]image.Point {
	return [3]image.Point{t.Center, t.HourHand, t.MinuteHand}
}

// MakeTriangle builds the triangle for hour (0-11) and minute (0-59).
// Angles start at 12 o'clock and grow clockwise; the hour hand advances with
// the minutes. The hour hand is scale*baseHourLength long and the minute hand
// is MinuteHandFactor times that.
func MakeTriangle(hour, minute int, scale float64, c color.RGBA, center image.Point, baseHourLength int) (Triangle, error) {
	if hour < 0 || hour > 11 {
		return Triangle{}, fmt.Errorf("make triangle: hour %d: %w", hour, ErrHourOutOfRange)
	}
	if minute < 0 || minute > 59 {
		return Triangle{}, fmt.Errorf("make triangle: minute %d: %w", minute, ErrMinuteOutOfRange)
	}
	if !(scale > 0) || baseHourLength <= 0 {
		return Triangle{}, fmt.Errorf("make triangle: scale %v base %d: %w", scale, baseHourLength, ErrScale)
	}

	minuteAngle := 2 * math.Pi * float64(minute) / 60
	hourAngle := 2*math.Pi*float64(hour)/12 + minuteAngle/12

	hourLength := int(scale * float64(baseHourLength))
	minuteLength := MinuteHandFactor * hourLength

	return Triangle{
		Center:     center,
		HourHand:   handTip(center, hourAngle, hourLength),
		MinuteHand: handTip(center, minuteAngle, minuteLength),
		Color:      c,
	}, nil
}

// handTip uses screen coordinates, so "up" is -y.
func handTip(center image.Point, angle float64, length int) image.Point {
	l := float64(length)
	return image.Point{
		X: center.X + int(math.Round(math.Sin(angle)*l)),
		Y: center.Y - int(math.Round(math.Cos(angle)*l)),
	}
}

// Hour12 folds the wall clock hour into 0-11.
func Hour12(t time.Time) int { return t.Hour() % 12 }

// OffsetMinute moves baseMinute by offset in either direction and wraps the
// result into 0-59.
func OffsetMinute(baseMinute, offset int, subtract bool) int {
	m := baseMinute + offset
	if subtract {
		m = baseMinute - offset
	}
	m %= 60
	if m < 0 {
		m += 60
	}
	return m
}

// RandomHands picks a random hour and a minute hand that points near, but not
// at, that hour's marker.
func RandomHands(s *sampler.Sampler) (hour, minute int) {
	hour = s.Intn(12)
	offset := minOffsetMinutes + s.Intn(offsetMinuteRange)
	subtract := s.Intn(2) == 1
	return hour, OffsetMinute(hour*5, offset, subtract)
}
