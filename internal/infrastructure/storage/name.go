// Package storage keeps uploaded profile photos on local disk or in an
// S3-compatible bucket.
package storage

import (
	"path"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// URLPrefix is where stored attachments are served from.
const URLPrefix = "/uploads"

// GenerateName builds a collision-resistant object name from an uploaded
// filename: <unix-millis>-<sanitised base>. Directory components and any
// character outside [A-Za-z0-9._-] are dropped and whitespace becomes "_",
// so the result never escapes the upload directory.
func GenerateName(original string, now time.Time) string {
	base := path.Base(strings.ReplaceAll(original, "\\", "/"))

	var b strings.Builder
	lastUnderscore := false
	for _, r := range base {
		switch {
		case unicode.IsSpace(r):
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
			continue
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '_'):
			b.WriteRune(r)
		default:
			continue
		}
		lastUnderscore = r == '_'
	}

	clean := strings.TrimLeft(b.String(), ".")
	if clean == "" {
		clean = "upload"
	}
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + clean
}
