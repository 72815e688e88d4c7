// Package branding loads the optional stylesheet and logo that decorate the
// HTML form and the PDF report.
package branding

import (
	"encoding/base64"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Assets holds whatever branding files were found. Both fields may be empty.
type Assets struct {
	Stylesheet string
	Logo       []byte
}

// Load reads the stylesheet and logo at the given paths. A blank path or a
// file that cannot be read leaves the matching field empty; it is never an
// error.
func Load(stylesheetPath, logoPath string, logger *zap.Logger) Assets {
	if logger == nil {
		logger = zap.NewNop()
	}

	var a Assets
	if data, ok := readOptional(stylesheetPath, logger); ok {
		a.Stylesheet = string(data)
	}
	if data, ok := readOptional(logoPath, logger); ok {
		a.Logo = data
	}
	return a
}

func readOptional(path string, logger *zap.Logger) ([]byte, bool) {
	if strings.TrimSpace(path) == "" {
		return nil, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("Branding asset skipped", zap.String("path", path), zap.Error(err))
		return nil, false
	}
	return data, true
}

// HasLogo reports whether a logo was loaded.
func (a Assets) HasLogo() bool {
	return len(a.Logo) > 0
}

// LogoMIME sniffs the logo's content type.
func (a Assets) LogoMIME() string {
	if !a.HasLogo() {
		return ""
	}
	return http.DetectContentType(a.Logo)
}

// LogoImageType returns the image type name the PDF writer expects ("PNG",
// "JPG" or "GIF"), or "" when the logo is missing or in another format.
func (a Assets) LogoImageType() string {
	switch a.LogoMIME() {
	case "image/png":
		return "PNG"
	case "image/jpeg":
		return "JPG"
	case "image/gif":
		return "GIF"
	default:
		return ""
	}
}

// LogoDataURI encodes the logo for inline use in an <img> tag.
func (a Assets) LogoDataURI() string {
	if !a.HasLogo() {
		return ""
	}
	return "data:" + a.LogoMIME() + ";base64," + base64.StdEncoding.EncodeToString(a.Logo)
}
