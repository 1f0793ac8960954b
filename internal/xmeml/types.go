package xmeml

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// TrueFalse marshals as the upper-case TRUE/FALSE literals the xmeml schema
// uses for booleans.
type TrueFalse bool

func (b TrueFalse) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	value := "FALSE"
	if b {
		value = "TRUE"
	}
	return e.EncodeElement(value, start)
}

func (b *TrueFalse) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var value string
	if err := d.DecodeElement(&value, &start); err != nil {
		return err
	}
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "TRUE":
		*b = true
	case "FALSE", "":
		*b = false
	default:
		return fmt.Errorf("invalid boolean value %q", value)
	}
	return nil
}

// XMEML is the root element of the project-interchange document.
type XMEML struct {
	XMLName  xml.Name `xml:"xmeml"`
	Version  string   `xml:"version,attr"`
	Sequence Sequence `xml:"sequence"`
}

// Sequence is the timeline that carries the markers.
type Sequence struct {
	ID             string   `xml:"id,attr"`
	ExplodedTracks string   `xml:"explodedTracks,attr"`
	UUID           string   `xml:"uuid"`
	Duration       int64    `xml:"duration"`
	Rate           Rate     `xml:"rate"`
	Name           string   `xml:"name"`
	Media          Media    `xml:"media"`
	Timecode       Timecode `xml:"timecode"`
	Marker         []Marker `xml:"marker"`
}

// Rate is a frame rate expressed as an integer time base plus the NTSC
// drop-frame-convention flag.
type Rate struct {
	Timebase int       `xml:"timebase"`
	NTSC     TrueFalse `xml:"ntsc"`
}

// Media holds the sequence's video and audio sections.
type Media struct {
	Video Video `xml:"video"`
	Audio Audio `xml:"audio"`
}

// Video holds the format description and the single marker-carrier track.
type Video struct {
	Format VideoFormat  `xml:"format"`
	Track  []VideoTrack `xml:"track"`
}

// VideoFormat wraps the sample characteristics of the sequence video.
type VideoFormat struct {
	SampleCharacteristics VideoSampleCharacteristics `xml:"samplecharacteristics"`
}

// VideoSampleCharacteristics describes the sequence's video properties.
type VideoSampleCharacteristics struct {
	Rate             Rate      `xml:"rate"`
	Codec            Codec     `xml:"codec"`
	Width            int       `xml:"width"`
	Height           int       `xml:"height"`
	Anamorphic       TrueFalse `xml:"anamorphic"`
	PixelAspectRatio string    `xml:"pixelaspectratio"`
	FieldDominance   string    `xml:"fielddominance"`
	ColorDepth       int       `xml:"colordepth"`
}

// Codec names the nominal sequence codec.
type Codec struct {
	Name string `xml:"name"`
}

// VideoTrack holds the generator item that carries the per-clip markers.
type VideoTrack struct {
	Enabled       TrueFalse     `xml:"enabled"`
	Locked        TrueFalse     `xml:"locked"`
	GeneratorItem GeneratorItem `xml:"generatoritem"`
}

// GeneratorItem is a synthetic color-matte clip spanning the whole sequence.
// It is fully transparent; it exists only to host markers.
type GeneratorItem struct {
	ID        string    `xml:"id,attr"`
	Name      string    `xml:"name"`
	Enabled   TrueFalse `xml:"enabled"`
	Duration  int64     `xml:"duration"`
	Rate      Rate      `xml:"rate"`
	Start     int64     `xml:"start"`
	End       int64     `xml:"end"`
	In        int64     `xml:"in"`
	Out       int64     `xml:"out"`
	AlphaType string    `xml:"alphatype"`
	Effect    Effect    `xml:"effect"`
	Filter    Filter    `xml:"filter"`
	Marker    []Marker  `xml:"marker"`
}

// Effect describes a generator or motion effect.
type Effect struct {
	Name           string    `xml:"name"`
	EffectID       string    `xml:"effectid"`
	EffectCategory string    `xml:"effectcategory"`
	EffectType     string    `xml:"effecttype"`
	MediaType      string    `xml:"mediatype"`
	Parameter      Parameter `xml:"parameter"`
}

// Filter wraps an effect applied to a clip.
type Filter struct {
	Effect Effect `xml:"effect"`
}

// Parameter is a single effect parameter.
type Parameter struct {
	AuthoringApp string         `xml:"authoringApp,attr,omitempty"`
	ParameterID  string         `xml:"parameterid"`
	Name         string         `xml:"name"`
	Value        ParameterValue `xml:"value"`
}

// ParameterValue is either a scalar (chardata) or an ARGB component block.
type ParameterValue struct {
	Scalar string `xml:",chardata"`
	Alpha  *int   `xml:"alpha,omitempty"`
	Red    *int   `xml:"red,omitempty"`
	Green  *int   `xml:"green,omitempty"`
	Blue   *int   `xml:"blue,omitempty"`
}

// Audio holds the sequence audio skeleton.
type Audio struct {
	NumOutputChannels int          `xml:"numOutputChannels"`
	Format            AudioFormat  `xml:"format"`
	Track             []AudioTrack `xml:"track"`
}

// AudioFormat wraps the audio sample characteristics.
type AudioFormat struct {
	SampleCharacteristics AudioSampleCharacteristics `xml:"samplecharacteristics"`
}

// AudioSampleCharacteristics describes bit depth and sample rate.
type AudioSampleCharacteristics struct {
	Depth      int `xml:"depth"`
	SampleRate int `xml:"samplerate"`
}

// AudioTrack is an empty audio track in the skeleton.
type AudioTrack struct {
	Enabled            TrueFalse `xml:"enabled"`
	Locked             TrueFalse `xml:"locked"`
	OutputChannelIndex int       `xml:"outputchannelindex"`
}

// Timecode anchors the sequence at zero.
type Timecode struct {
	Rate          Rate   `xml:"rate"`
	String        string `xml:"string"`
	Frame         int64  `xml:"frame"`
	DisplayFormat string `xml:"displayformat"`
}

// Marker is a timeline annotation. Out is -1 for point markers.
type Marker struct {
	Comment   string `xml:"comment"`
	Name      string `xml:"name"`
	In        int64  `xml:"in"`
	Out       int64  `xml:"out"`
	PProColor string `xml:"pproColor"`
}
