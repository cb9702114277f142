package media

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxNameLen = 64

// objectPath builds reports/YYYY/MM/DD/<unixmillis>-<random>-<name>.<ext>.
func objectPath(now time.Time, filename, ext string) string {
	now = now.UTC()
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("reports/%s/%d-%s-%s.%s",
		now.Format("2006/01/02"), now.UnixMilli(), random, normalizeName(filename), ext)
}

// normalizeName keeps [a-z0-9_-] from the base name without its extension.
// Other runs of characters collapse into a single dash.
func normalizeName(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = strings.TrimSuffix(base, path.Ext(base))
	base = strings.ToLower(base)

	var b strings.Builder
	dash := false
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
			dash = r == '-'
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
		if b.Len() >= maxNameLen {
			break
		}
	}

	name := strings.Trim(b.String(), "-")
	if name == "" {
		return "image"
	}
	return name
}
