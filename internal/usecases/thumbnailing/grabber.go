package thumbnailing

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

// FrameGrabber extrai um quadro de um vídeo remoto.
type FrameGrabber interface {
	// Duration devolve a duração em segundos; 0 quando desconhecida.
	Duration(ctx context.Context, mediaURL string) (float64, error)
	// Frame captura o quadro em at segundos, codificado como JPEG.
	Frame(ctx context.Context, mediaURL string, at float64) ([]byte, error)
}

// FFmpegGrabber usa ffprobe e ffmpeg instalados no host.
type FFmpegGrabber struct {
	FFmpegPath  string
	FFprobePath string
	// Quality segue a escala -q:v do mjpeg (2 melhor, 31 pior)
	Quality int
}

func NewFFmpegGrabber(ffmpegPath, ffprobePath string) *FFmpegGrabber {
	return &FFmpegGrabber{
		FFmpegPath:  ffmpegPath,
		FFprobePath: ffprobePath,
		Quality:     4,
	}
}

// protocolWhitelist impede que a URL abra arquivos locais ou outros protocolos do ffmpeg.
const protocolWhitelist = "http,https,tcp,tls"

func probeArgs(mediaURL string) []string {
	return []string{
		"-v", "error",
		"-protocol_whitelist", protocolWhitelist,
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		"-i", mediaURL,
	}
}

func frameArgs(mediaURL string, at float64, quality int) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-protocol_whitelist", protocolWhitelist,
		"-ss", strconv.FormatFloat(at, 'f', 3, 64),
		"-i", mediaURL,
		"-frames:v", "1",
		"-an",
		"-q:v", strconv.Itoa(quality),
		"-f", "image2",
		"-vcodec", "mjpeg",
		"pipe:1",
	}
}

func (g *FFmpegGrabber) Duration(ctx context.Context, mediaURL string) (float64, error) {
	cmd := exec.CommandContext(ctx, g.FFprobePath, probeArgs(mediaURL)...)

	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}

	return parseDuration(string(out)), nil
}

func (g *FFmpegGrabber) Frame(ctx context.Context, mediaURL string, at float64) ([]byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, g.FFmpegPath, frameArgs(mediaURL, at, g.Quality)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return stdout.Bytes(), nil
}

// parseDuration trata "N/A", vazio e valores não finitos como desconhecidos
func parseDuration(raw string) float64 {
	d, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return 0
	}
	return d
}
