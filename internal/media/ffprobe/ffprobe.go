package ffprobe

import (
	"context"
	"encoding/json"
	"os/exec"
	"strconv"
	"strings"

	"bestcut/internal/services"
)

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// Stream describes a single stream in the media container.
type Stream struct {
	Index          int    `json:"index"`
	CodecName      string `json:"codec_name"`
	CodecType      string `json:"codec_type"`
	Duration       string `json:"duration"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	SampleRate     string `json:"sample_rate"`
	Channels       int    `json:"channels"`
	PixFmt         string `json:"pix_fmt"`
	ColorSpace     string `json:"color_space"`
	ColorTransfer  string `json:"color_transfer"`
	ColorPrimaries string `json:"color_primaries"`
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	Filename   string `json:"filename"`
	NBStreams  int    `json:"nb_streams"`
	Duration   string `json:"duration"`
	FormatName string `json:"format_name"`
}

// Inspect executes ffprobe against the provided path and decodes the JSON
// response.
func Inspect(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, services.Wrap(services.ErrValidation, "ffprobe", "inspect", "empty path", nil)
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Result{}, services.Wrap(services.ErrExternalTool, "ffprobe", "inspect",
			strings.TrimSpace(string(output)), err)
	}
	return parse(output)
}

func parse(output []byte) (Result, error) {
	var result Result
	if err := json.Unmarshal(output, &result); err != nil {
		return Result{}, services.Wrap(services.ErrExternalTool, "ffprobe", "parse", "malformed json", err)
	}
	return result, nil
}

// DurationSeconds returns the container duration in seconds, or 0 when
// unavailable.
func (r Result) DurationSeconds() float64 {
	cleaned := strings.TrimSpace(r.Format.Duration)
	if cleaned == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}

// VideoStream returns the first video stream, or false when the container
// carries none.
func (r Result) VideoStream() (Stream, bool) {
	for _, stream := range r.Streams {
		if strings.EqualFold(stream.CodecType, "video") {
			return stream, true
		}
	}
	return Stream{}, false
}

// AudioStreamIndex returns the container index of the first audio stream,
// or -1 when the container carries none.
func (r Result) AudioStreamIndex() int {
	for _, stream := range r.Streams {
		if strings.EqualFold(stream.CodecType, "audio") {
			return stream.Index
		}
	}
	return -1
}

// HDRLike reports whether the video stream looks high dynamic range:
// 10-bit pixel formats, BT.2020 color, or an HLG/PQ transfer function. The
// renderer tone-maps such sources down to SDR before concatenation.
func (r Result) HDRLike() bool {
	v, ok := r.VideoStream()
	if !ok {
		return false
	}
	if strings.Contains(strings.ToLower(v.PixFmt), "10") {
		return true
	}
	cs := strings.ToLower(v.ColorSpace)
	pr := strings.ToLower(v.ColorPrimaries)
	if strings.Contains(cs, "bt2020") || strings.Contains(pr, "bt2020") {
		return true
	}
	tr := strings.ToLower(v.ColorTransfer)
	return strings.Contains(tr, "arib-std-b67") || strings.Contains(tr, "smpte2084")
}
