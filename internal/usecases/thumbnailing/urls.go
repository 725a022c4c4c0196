package thumbnailing

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"
)

var errUnsafeURL = errors.New("url de mídia não permitida")

// lookupFunc resolve o host antes de entregá-lo ao ffmpeg.
type lookupFunc func(ctx context.Context, host string) ([]net.IP, error)

func lookupIP(ctx context.Context, host string) ([]net.IP, error) {
	return net.DefaultResolver.LookupIP(ctx, "ip", host)
}

// cgnat é o 100.64.0.0/10, usado por redes internas de provedores.
var cgnat = &net.IPNet{IP: net.IPv4(100, 64, 0, 0), Mask: net.CIDRMask(10, 32)}

var (
	driveFilePattern = regexp.MustCompile(`/file/d/([^/]+)`)
	driveIDPattern   = regexp.MustCompile(`id=([^&]+)`)
	docsPattern      = regexp.MustCompile(`docs\.google\.com/(document|spreadsheets|presentation)`)
)

// DriveThumbnailURL reescreve links do Google Drive para o endpoint de miniatura.
func DriveThumbnailURL(mediaURL string) (string, bool) {
	if !strings.Contains(mediaURL, "drive.google.com") {
		return "", false
	}

	if m := driveFilePattern.FindStringSubmatch(mediaURL); len(m) == 2 {
		return driveThumbnail(m[1]), true
	}
	if m := driveIDPattern.FindStringSubmatch(mediaURL); len(m) == 2 {
		return driveThumbnail(m[1]), true
	}

	return "", false
}

func driveThumbnail(id string) string {
	return fmt.Sprintf("https://drive.google.com/thumbnail?id=%s&sz=w640", id)
}

// IsGoogleDocsURL indica documentos, planilhas e apresentações, que não têm quadro de vídeo.
func IsGoogleDocsURL(mediaURL string) bool {
	return docsPattern.MatchString(mediaURL)
}

// IsPlaceholder indica URLs vazias ou que já apontam para a imagem padrão.
func IsPlaceholder(u string) bool {
	u = strings.TrimSpace(u)
	return u == "" || strings.Contains(u, "placeholder")
}

// CheckMediaURL aceita apenas http(s) com host que resolve para endereços públicos.
func CheckMediaURL(ctx context.Context, raw string, lookup lookupFunc) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return errUnsafeURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errUnsafeURL
	}
	host := u.Hostname()
	if host == "" || u.User != nil {
		return errUnsafeURL
	}

	if ip := net.ParseIP(host); ip != nil {
		if !isPublicIP(ip) {
			return errUnsafeURL
		}
		return nil
	}

	ips, err := lookup(ctx, host)
	if err != nil {
		return fmt.Errorf("resolver %s: %w", host, err)
	}
	if len(ips) == 0 {
		return errUnsafeURL
	}
	for _, ip := range ips {
		if !isPublicIP(ip) {
			return errUnsafeURL
		}
	}

	return nil
}

func isPublicIP(ip net.IP) bool {
	switch {
	case ip.IsLoopback(), ip.IsPrivate(), ip.IsUnspecified(),
		ip.IsLinkLocalUnicast(), ip.IsLinkLocalMulticast(),
		ip.IsInterfaceLocalMulticast(), ip.IsMulticast():
		return false
	}
	return !cgnat.Contains(ip)
}
