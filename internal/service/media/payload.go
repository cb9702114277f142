package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"strings"

	// Decoders used by image.DecodeConfig for header validation.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

const defaultMIME = "image/jpeg"

var errNotDataURL = errors.New("not a data url")

// decodePayload accepts a data URL ("data:image/png;base64,...") or bare
// base64, which is taken to be JPEG.
func decodePayload(encoded string) (mime string, data []byte, err error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return "", nil, errors.New("empty payload")
	}

	mime, payload, err := splitDataURL(encoded)
	if errors.Is(err, errNotDataURL) {
		mime, payload = defaultMIME, encoded
	} else if err != nil {
		return "", nil, err
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return "", nil, fmt.Errorf("decode base64: %w", err)
		}
	}
	if len(data) == 0 {
		return "", nil, errors.New("empty payload")
	}
	return mime, data, nil
}

func splitDataURL(s string) (mime, payload string, err error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", "", errNotDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", "", errors.New("malformed data url")
	}

	params := strings.Split(meta, ";")
	if params[len(params)-1] != "base64" {
		return "", "", errors.New("data url is not base64 encoded")
	}
	mime = strings.ToLower(strings.TrimSpace(params[0]))
	if mime == "" {
		mime = defaultMIME
	}
	return mime, payload, nil
}

// extension maps a MIME type to the stored file extension and content type.
// Unknown types are stored as JPEG.
func extension(mime string) (ext, contentType string, known bool) {
	switch mime {
	case "image/jpeg", "image/jpg":
		return "jpg", "image/jpeg", true
	case "image/png":
		return "png", "image/png", true
	case "image/webp":
		return "webp", "image/webp", true
	case "image/gif":
		return "gif", "image/gif", true
	default:
		return "jpg", "image/jpeg", false
	}
}

// checkHeader verifies the payload decodes as an image header.
func checkHeader(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("unrecognised image data: %w", err)
	}
	return format, nil
}
