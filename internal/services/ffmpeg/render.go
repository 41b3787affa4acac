package ffmpeg

import (
	"context"
	"fmt"
	"strings"

	"bestcut/internal/logging"
	"bestcut/internal/services"
	"bestcut/internal/timeline"
)

// RenderOptions control the final encode.
type RenderOptions struct {
	// Target output geometry.
	Width  int
	Height int
	// PreferNVENC uses the hardware encoder when the probe succeeds.
	PreferNVENC bool
	// ToneMapSDR inserts an HDR-to-SDR tone-mapping chain before scaling.
	ToneMapSDR bool
}

// DefaultRenderOptions targets vertical 1080x1920 delivery.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Width:       1080,
		Height:      1920,
		PreferNVENC: true,
	}
}

// sdrFilter converts BT.2020 PQ/HLG material to BT.709 SDR.
const sdrFilter = "zscale=transfer=linear:primaries=bt2020:matrix=bt2020nc," +
	"tonemap=tonemap=hable:desat=0," +
	"zscale=transfer=bt709:primaries=bt709:matrix=bt709"

// Render trims the kept intervals out of the source and concatenates them in
// one pass. Every keep becomes a trim/atrim pair feeding a single concat
// node; timestamps are rebased per segment so the output is gapless.
func (s *Service) Render(ctx context.Context, source string, keeps timeline.List, opts RenderOptions, dest string) error {
	if len(keeps) == 0 {
		return services.Wrap(services.ErrValidation, "ffmpeg", "render", "no intervals to keep", nil)
	}

	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", source,
		"-filter_complex", buildFilterComplex(keeps, opts),
		"-map", "[vout]",
		"-map", "[acat]",
		"-movflags", "+faststart",
	}

	if opts.PreferNVENC && s.NVENCAvailable(ctx) {
		args = append(args,
			"-c:v", "h264_nvenc",
			"-preset", "p6",
			"-cq", "21",
			"-b:v", "0",
		)
	} else {
		args = append(args,
			"-c:v", "libx264",
			"-preset", "veryfast",
			"-crf", "20",
		)
	}

	args = append(args,
		"-c:a", "aac",
		"-b:a", "160k",
		dest,
	)

	s.logger.Info("rendering edit",
		logging.String("dest", dest),
		logging.Int("segments", len(keeps)),
		logging.Float64("kept_seconds", keeps.TotalDuration()))
	return s.run(ctx, s.binary, args...)
}

func buildFilterComplex(keeps timeline.List, opts RenderOptions) string {
	var chains []string
	var labels []string

	for i, iv := range keeps {
		chains = append(chains,
			fmt.Sprintf("[0:v]trim=start=%.3f:end=%.3f,setpts=PTS-STARTPTS[v%d]", iv.Start, iv.End, i),
			fmt.Sprintf("[0:a]atrim=start=%.3f:end=%.3f,asetpts=PTS-STARTPTS[a%d]", iv.Start, iv.End, i),
		)
		labels = append(labels, fmt.Sprintf("[v%d][a%d]", i, i))
	}

	chains = append(chains,
		fmt.Sprintf("%sconcat=n=%d:v=1:a=1[vcat][acat]", strings.Join(labels, ""), len(keeps)))

	post := fmt.Sprintf("scale=%d:%d,format=yuv420p", opts.Width, opts.Height)
	if opts.ToneMapSDR {
		post = sdrFilter + "," + post
	}
	chains = append(chains, fmt.Sprintf("[vcat]%s[vout]", post))

	return strings.Join(chains, ";")
}
