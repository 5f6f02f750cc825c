package file

import (
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const genericMIME = "application/octet-stream"

// DetectVideo sniffs the payload and decides whether it is a video. When the
// bytes are not recognised at all, the declared content type and the file
// extension decide instead. The returned string is the best known MIME type.
func DetectVideo(content []byte, declaredType, filename string) (string, bool) {
	detected := mimetype.Detect(content)
	if !detected.Is(genericMIME) {
		return detected.String(), strings.HasPrefix(detected.String(), "video/")
	}

	mediaType, _, err := mime.ParseMediaType(declaredType)
	if err == nil && strings.HasPrefix(mediaType, "video/") {
		return mediaType, true
	}
	if IsVideoFile(filename) {
		return genericMIME, true
	}
	if err == nil && mediaType != "" {
		return mediaType, false
	}
	return genericMIME, false
}

// DetectImage is the still-image counterpart of DetectVideo. Formats that
// mimetype cannot name fall back to the file extension.
func DetectImage(content []byte, filename string) (string, bool) {
	detected := mimetype.Detect(content)
	if !detected.Is(genericMIME) {
		return detected.String(), strings.HasPrefix(detected.String(), "image/")
	}
	return genericMIME, IsImageFile(filename)
}
