package dimension

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
)

// FFProbe probes video metadata by executing the ffprobe binary.
type FFProbe struct {
	command string
}

// NewFFProbe creates an FFProbe. An empty command defaults to "ffprobe"
// resolved on PATH.
func NewFFProbe(command string) *FFProbe {
	if command == "" {
		command = "ffprobe"
	}
	return &FFProbe{command: command}
}

// probeOutput is the subset of ffprobe's JSON output we read.
type probeOutput struct {
	Streams []struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"streams"`
}

// Probe runs ffprobe against the first video stream of the file at path.
func (fp *FFProbe) Probe(ctx context.Context, path string) (*Dimensions, error) {
	cmd := exec.CommandContext(ctx, fp.command,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height",
		"-of", "json",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %s: %w", path, err)
	}
	return parseProbeOutput(out)
}

// parseProbeOutput extracts the pixel size from ffprobe JSON output.
func parseProbeOutput(out []byte) (*Dimensions, error) {
	var probed probeOutput
	if err := json.Unmarshal(out, &probed); err != nil {
		return nil, fmt.Errorf("parse ffprobe output: %w", err)
	}
	if len(probed.Streams) == 0 {
		return nil, fmt.Errorf("no video stream found")
	}
	s := probed.Streams[0]
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("video stream reports no pixel size")
	}
	return &Dimensions{Width: float64(s.Width), Height: float64(s.Height)}, nil
}
