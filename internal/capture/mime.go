package capture

import (
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// acceptedAudio lists the audio MIME types the upload accepts, aliases
// included.
var acceptedAudio = map[string]bool{
	"audio/mpeg":  true,
	"audio/mp3":   true,
	"audio/wav":   true,
	"audio/wave":  true,
	"audio/x-wav": true,
	"audio/mp4":   true,
	"audio/m4a":   true,
	"audio/x-m4a": true,
	"audio/ogg":   true,
}

// AcceptedAudioTypes returns the canonical accepted types.
func AcceptedAudioTypes() []string {
	return []string{"audio/mpeg", "audio/wav", "audio/mp4", "audio/ogg"}
}

// IsAcceptedAudio reports whether mimeType names a supported audio format.
// Parameters such as "; codecs=opus" are ignored.
func IsAcceptedAudio(mimeType string) bool {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		mediaType = strings.TrimSpace(mimeType)
	}

	return acceptedAudio[strings.ToLower(mediaType)]
}

// DetectAudioType sniffs the leading bytes of r. It returns the detected
// type, walking up mimetype's hierarchy until an accepted one is found, or
// an error naming what was detected.
func DetectAudioType(r io.Reader) (string, error) {
	detected, err := mimetype.DetectReader(r)
	if err != nil {
		return "", fmt.Errorf("detect audio type: %w", err)
	}

	for m := detected; m != nil; m = m.Parent() {
		if IsAcceptedAudio(m.String()) {
			return m.String(), nil
		}
	}

	return detected.String(), fmt.Errorf("unsupported content type %s", detected.String())
}
