package xmeml

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"obsmark/internal/timestamps"
)

// trailingPaddingMS keeps one minute of sequence after the last marker so
// importers never place a marker at the very end of the timeline.
const trailingPaddingMS = 60000

// Settings carries the formatting parameters for a build.
type Settings struct {
	FPS          float64
	SequenceName string
	Width        int
	Height       int
	// UUID identifies the sequence; generated when empty.
	UUID string
}

// Build assembles the full document for the given markers: a sequence with
// one transparent color-matte generator clip holding every marker, the same
// markers duplicated at sequence level, and a two-track audio skeleton.
func Build(markers []timestamps.Marker, settings Settings) (*XMEML, error) {
	if len(markers) == 0 {
		return nil, errors.New("no markers to convert")
	}
	if settings.FPS <= 0 {
		return nil, fmt.Errorf("frame rate must be positive, got %v", settings.FPS)
	}

	rate := NewRate(settings.FPS)

	name := settings.SequenceName
	if name == "" {
		name = fmt.Sprintf("OBS Markers (%s)", time.Now().Format("2006-01-02 15:04"))
	}
	sequenceUUID := settings.UUID
	if sequenceUUID == "" {
		sequenceUUID = uuid.NewString()
	}

	var maxOffset int64
	for _, m := range markers {
		if m.OffsetMS > maxOffset {
			maxOffset = m.OffsetMS
		}
	}
	duration := Frames(maxOffset+trailingPaddingMS, settings.FPS)

	sequenceMarkers := make([]Marker, 0, len(markers))
	for _, m := range markers {
		sequenceMarkers = append(sequenceMarkers, Marker{
			Comment:   m.Comment,
			Name:      m.Name,
			In:        Frames(m.OffsetMS, settings.FPS),
			Out:       -1,
			PProColor: strconv.FormatUint(uint64(ColorCode(m.Color)), 10),
		})
	}
	clipMarkers := make([]Marker, len(sequenceMarkers))
	copy(clipMarkers, sequenceMarkers)

	doc := &XMEML{
		Version: "4",
		Sequence: Sequence{
			ID:             "sequence",
			ExplodedTracks: "true",
			UUID:           sequenceUUID,
			Duration:       duration,
			Rate:           rate,
			Name:           name,
			Media: Media{
				Video: Video{
					Format: VideoFormat{
						SampleCharacteristics: VideoSampleCharacteristics{
							Rate:             rate,
							Codec:            Codec{Name: "Apple ProRes 422"},
							Width:            settings.Width,
							Height:           settings.Height,
							Anamorphic:       false,
							PixelAspectRatio: "square",
							FieldDominance:   "none",
							ColorDepth:       24,
						},
					},
					Track: []VideoTrack{
						{
							Enabled:       true,
							Locked:        false,
							GeneratorItem: newMarkerCarrier(duration, rate, clipMarkers),
						},
					},
				},
				Audio: Audio{
					NumOutputChannels: 2,
					Format: AudioFormat{
						SampleCharacteristics: AudioSampleCharacteristics{
							Depth:      16,
							SampleRate: 48000,
						},
					},
					Track: []AudioTrack{
						{Enabled: true, Locked: false, OutputChannelIndex: 1},
						{Enabled: true, Locked: false, OutputChannelIndex: 2},
					},
				},
			},
			Timecode: Timecode{
				Rate:          rate,
				String:        "00:00:00:00",
				Frame:         0,
				DisplayFormat: "NDF",
			},
			Marker: sequenceMarkers,
		},
	}
	return doc, nil
}

// newMarkerCarrier builds the invisible color matte that hosts the per-clip
// markers. Fill color and opacity are both zero so the clip never renders.
func newMarkerCarrier(duration int64, rate Rate, markers []Marker) GeneratorItem {
	zero := 0
	return GeneratorItem{
		ID:        "clipitem-1",
		Name:      "OBS Marker Holder",
		Enabled:   true,
		Duration:  duration,
		Rate:      rate,
		Start:     0,
		End:       duration,
		In:        0,
		Out:       duration,
		AlphaType: "none",
		Effect: Effect{
			Name:           "Color",
			EffectID:       "Color",
			EffectCategory: "Matte",
			EffectType:     "generator",
			MediaType:      "video",
			Parameter: Parameter{
				AuthoringApp: "PremierePro",
				ParameterID:  "fillcolor",
				Name:         "Color",
				Value: ParameterValue{
					Alpha: &zero,
					Red:   &zero,
					Green: &zero,
					Blue:  &zero,
				},
			},
		},
		Filter: Filter{
			Effect: Effect{
				Name:           "Opacity",
				EffectID:       "opacity",
				EffectCategory: "motion",
				EffectType:     "motion",
				MediaType:      "video",
				Parameter: Parameter{
					AuthoringApp: "PremierePro",
					ParameterID:  "opacity",
					Name:         "opacity",
					Value:        ParameterValue{Scalar: "0"},
				},
			},
		},
		Marker: markers,
	}
}
