package xmeml

import "math"

// ntscRates are the drop-frame-adjacent rates (the 1000/1001 family).
var ntscRates = []float64{23.976, 29.97, 59.94}

// rateEpsilon absorbs the difference between a literal rate like 29.97 and
// the exact rational 30000/1001.
const rateEpsilon = 0.005

// IsNTSC reports whether fps belongs to the 1000/1001 drop-frame family.
func IsNTSC(fps float64) bool {
	for _, rate := range ntscRates {
		if math.Abs(fps-rate) < rateEpsilon {
			return true
		}
	}
	return false
}

// NewRate derives the serialized integer time base from a frame rate. NTSC
// rates scale by 1001/1000 before truncation so 30000/1001 serializes as 30.
func NewRate(fps float64) Rate {
	ntsc := IsNTSC(fps)
	timebase := int(math.Floor(fps))
	if ntsc {
		timebase = int(math.Floor(fps*1.001 + 1e-9))
	}
	return Rate{Timebase: timebase, NTSC: TrueFalse(ntsc)}
}

// Frames converts a millisecond offset to a frame index, truncating.
func Frames(ms int64, fps float64) int64 {
	return int64(math.Floor(float64(ms) / 1000.0 * fps))
}
