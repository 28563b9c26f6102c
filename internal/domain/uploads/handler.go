package uploads

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"barkly-backend/internal/middleware"
	"barkly-backend/internal/platform/httpjson"
)

func RegisterRoutes(r chi.Router, v *Validator) {
	r.Post("/upload/image", uploadImageHandler(v))
}

type uploadResponse struct {
	Data string `json:"data"`
}

// uploadImageHandler godoc
// @Summary Validar y codificar una imagen
// @Description Acepta jpeg/png/gif/webp de hasta 2MB y devuelve un data URI.
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Param file formData file true "Imagen"
// @Success 200 {object} uploadResponse
// @Failure 400 {string} string "Invalid image file"
// @Router /upload/image [post]
func uploadImageHandler(v *Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		// El límite del form va un poco arriba del tope por archivo
		// para que el exceso lo reporte el validator, no el parser.
		if err := r.ParseMultipartForm(MaxFileSize + 1<<19); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "Invalid multipart form")
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "file is required")
			return
		}
		defer file.Close()

		uri, err := v.Validate(file, header.Header.Get("Content-Type"))
		if err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, uploadResponse{Data: uri})
	}
}
