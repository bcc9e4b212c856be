// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"fmt"
	"math"
	"time"
)

// TimeLayout is how message timestamps are shown.
const TimeLayout = "15:04:05"

// NameColor picks a stable dark color for a name. The hash is the usual
// 31-multiplier string hash truncated to 32 bits.
func NameColor(name string) string {
	var hash int32
	for _, r := range name {
		hash = int32(r) + ((hash << 5) - hash)
	}
	hue := int(hash % 360)
	if hue < 0 {
		hue = -hue
	}
	return hslToHex(float64(hue), 0.6, 0.3)
}

func hslToHex(h, s, l float64) string {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	to := func(v float64) int { return int(math.Round((v + m) * 255)) }
	return fmt.Sprintf("#%02x%02x%02x", to(r), to(g), to(b))
}

// FormatTime renders a unix timestamp in local time.
func FormatTime(unix int64) string {
	return time.Unix(unix, 0).Format(TimeLayout)
}
