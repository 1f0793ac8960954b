// Package timestamps parses the recorder's JSON Lines marker log.
package timestamps

// Marker is a single annotated point in the recording, offset in
// milliseconds from the start of the capture.
type Marker struct {
	OffsetMS int64
	Comment  string
	Name     string
	Color    string
}

// Metadata is the optional leading record the recorder writes once per
// session. FPSNum/FPSDen carry the true frame rate as a rational.
type Metadata struct {
	RecordingPath string `json:"recording_path"`
	Timestamp     string `json:"timestamp"`
	FPSNum        int    `json:"fps_num"`
	FPSDen        int    `json:"fps_den"`
}

// FrameRate returns the metadata frame rate, or false when the record does
// not carry a usable fps_num/fps_den pair.
func (m *Metadata) FrameRate() (float64, bool) {
	if m == nil || m.FPSNum <= 0 || m.FPSDen <= 0 {
		return 0, false
	}
	return float64(m.FPSNum) / float64(m.FPSDen), true
}

// TimestampLayout is the wall-clock format the recorder stamps sessions with.
const TimestampLayout = "2006-01-02 15:04:05"
