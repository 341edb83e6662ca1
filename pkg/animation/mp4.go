package animation

import (
	"fmt"
	"image"
	"image/png"
	"os/exec"
	"strconv"
)

// WriteMP4 streams PNG frames into an external ffmpeg process. Held frames
// are emitted repeatedly so the pause survives the constant-rate encode.
// Fails up front if ffmpeg is not on PATH.
func WriteMP4(path string, plan *Plan, frames []*image.RGBA, fps int) error {
	if len(frames) != len(plan.Frames) {
		return fmt.Errorf("animation: %d frames for %d plan entries", len(frames), len(plan.Frames))
	}
	ffmpeg, err := exec.LookPath("ffmpeg")
	if err != nil {
		return fmt.Errorf("mp4 output needs ffmpeg on PATH: %w", err)
	}

	cmd := exec.Command(ffmpeg,
		"-y",
		"-f", "image2pipe",
		"-vcodec", "png",
		"-framerate", strconv.Itoa(fps),
		"-i", "-",
		"-pix_fmt", "yuv420p",
		path,
	)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("ffmpeg stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting ffmpeg: %w", err)
	}

	encodeErr := func() error {
		defer stdin.Close()
		for i, img := range frames {
			for n := 0; n <= plan.Frames[i].Hold; n++ {
				if err := png.Encode(stdin, img); err != nil {
					return fmt.Errorf("streaming frame %d: %w", i, err)
				}
			}
		}
		return nil
	}()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg: %w", err)
	}
	return encodeErr
}
