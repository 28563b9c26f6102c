package uploads

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	return buf.Bytes()
}

func TestValidate_AcceptsRealImage(t *testing.T) {
	v := NewValidator()

	uri, err := v.Validate(bytes.NewReader(encodePNG(t)), "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
}

func TestValidate_StripsContentTypeParams(t *testing.T) {
	v := NewValidator()

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8)), nil))

	uri, err := v.Validate(&buf, "image/jpeg; charset=binary")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))
}

func TestValidate_RejectsDisallowedType(t *testing.T) {
	v := NewValidator()

	_, err := v.Validate(bytes.NewReader([]byte("%PDF-1.4")), "application/pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid file type. Allowed types:")
	assert.Contains(t, err.Error(), "image/webp")
}

func TestValidate_RejectsOversize(t *testing.T) {
	v := NewValidator()

	big := make([]byte, MaxFileSize+1)
	_, err := v.Validate(bytes.NewReader(big), "image/png")
	require.Error(t, err)
	assert.EqualError(t, err, "File too large. Maximum size: 2MB")
}

func TestValidate_RejectsGarbageBytes(t *testing.T) {
	v := NewValidator()

	_, err := v.Validate(bytes.NewReader([]byte("definitely not an image")), "image/png")
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid image file")
}
