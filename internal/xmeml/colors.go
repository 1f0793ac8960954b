package xmeml

import "strings"

// colorCodes maps marker color names to the editor's 32-bit ARGB codes.
var colorCodes = map[string]uint32{
	"blue":    4294741314,
	"cyan":    4294940928,
	"green":   4278255360,
	"yellow":  4278255615,
	"red":     4294901760,
	"magenta": 4294902015,
	"purple":  4286578816,
	"orange":  4294924800,
}

// ColorNames lists the supported marker color names in a stable order.
func ColorNames() []string {
	return []string{"blue", "cyan", "green", "yellow", "red", "magenta", "purple", "orange"}
}

// ColorCode returns the ARGB code for a color name, falling back to blue for
// unknown or empty names.
func ColorCode(name string) uint32 {
	if code, ok := colorCodes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return code
	}
	return colorCodes["blue"]
}
