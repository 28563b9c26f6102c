package uploads

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/platform/httpclient"
)

// MaxFileSize es el tope por imagen subida.
const MaxFileSize = 2 << 20

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// Validate chequea content type, tamaño y que el archivo decodifique
// como imagen real, y devuelve el data URI listo para persistir.
func (v *Validator) Validate(r io.Reader, contentType string) (string, error) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if !allowedTypes[ct] {
		return "", apperr.InvalidInputf("Invalid file type. Allowed types: %s", allowedTypesList())
	}

	data, err := httpclient.ReadAtMost(r, MaxFileSize+1)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxFileSize {
		return "", apperr.InvalidInputf("File too large. Maximum size: 2MB")
	}

	if _, err := imaging.Decode(bytes.NewReader(data)); err != nil {
		return "", apperr.InvalidInputf("Invalid image file")
	}

	return "data:" + ct + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func allowedTypesList() string {
	types := make([]string, 0, len(allowedTypes))
	for t := range allowedTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	return strings.Join(types, ", ")
}
