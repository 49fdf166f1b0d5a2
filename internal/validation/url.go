// Package validation checks user-entered video URLs before they reach yt-dlp.
package validation

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrEmptyURL is returned for blank input.
var ErrEmptyURL = errors.New("URL is empty")

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("video_url", validateVideoURL)
}

// DefaultScheme is assumed for input typed without one, e.g. youtu.be/abc.
const DefaultScheme = "https"

// ErrOptionLike is returned for input yt-dlp would parse as a flag.
var ErrOptionLike = errors.New("URL must not start with '-'")

// NormalizeVideoURL trims raw, adds https:// when no scheme was typed and
// checks the result. It returns the URL to hand to yt-dlp. Whether the site
// is supported is left to yt-dlp.
func NormalizeVideoURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyURL
	}
	if strings.HasPrefix(raw, "-") {
		return "", ErrOptionLike
	}
	if !strings.Contains(raw, "://") {
		raw = DefaultScheme + "://" + raw
	}
	if err := validate.Var(raw, "required,video_url"); err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	return raw, nil
}

// ValidateVideoURL reports whether raw would be accepted by NormalizeVideoURL.
func ValidateVideoURL(raw string) error {
	_, err := NormalizeVideoURL(raw)
	return err
}

func validateVideoURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	host := u.Hostname()
	if host == "" {
		return false
	}

	if strings.EqualFold(host, "localhost") {
		return false
	}

	if ip := net.ParseIP(host); ip != nil {
		if ip.IsPrivate() || ip.IsLoopback() || ip.IsUnspecified() || ip.IsLinkLocalUnicast() {
			return false
		}
	}

	return true
}
