package photo

import (
	"regexp"
	"strings"
)

// dateTimeOriginalTag is the EXIF field holding the capture timestamp.
const dateTimeOriginalTag = "DateTimeOriginal"

// captureTimestampRegex matches the strict EXIF timestamp form
// "YYYY:MM:DD HH:MM:SS". Anything looser is treated as no timestamp.
var captureTimestampRegex = regexp.MustCompile(`^\d{4}:\d{2}:\d{2} \d{2}:\d{2}:\d{2}$`)

// Derive computes the candidate filename for original from its metadata.
//
// A strictly valid DateTimeOriginal value becomes the whole name with
// ".jpg" appended; the original name is discarded. Without one, the
// original name is lowercased and a trailing ".jpeg" is normalized to
// ".jpg". In both branches colons are stripped and spaces become
// underscores, so the result is safe on filesystems that reject them.
func Derive(original string, meta Metadata) string {
	var name string
	if ts, ok := meta[dateTimeOriginalTag].(string); ok && captureTimestampRegex.MatchString(ts) {
		name = ts + ".jpg"
	} else {
		name = strings.ToLower(original)
		if strings.HasSuffix(name, ".jpeg") {
			name = strings.TrimSuffix(name, ".jpeg") + ".jpg"
		}
	}

	name = strings.ReplaceAll(name, ":", "")
	return strings.ReplaceAll(name, " ", "_")
}
