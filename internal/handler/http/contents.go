package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-config-reader/internal/logger"
	"github.com/MKhiriev/go-config-reader/models"
	"github.com/go-chi/render"
)

const pathQueryParameter = "path"

// getContents serves GET /api/contents?path=<path>: 200 with the text on
// success, 422 with the problems otherwise.
func (h *Handler) getContents(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get(pathQueryParameter)

	content, problems, err := h.services.ContentService.Contents(r.Context(), path)
	if err != nil {
		writeError(w, r, err, "error resolving contents")
		return
	}

	if len(problems) > 0 {
		logger.FromRequest(r).Warn().
			Str("path", path).
			Int("problems", len(problems)).
			Msg("contents not resolved")

		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, models.ProblemsResponse{Problems: problems})
		return
	}

	render.PlainText(w, r, content)
}

// postContents serves POST /api/contents with a {"paths": [...]} body.
func (h *Handler) postContents(w http.ResponseWriter, r *http.Request) {
	var req models.ContentsRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err), "invalid JSON was passed")
		return
	}

	report, err := h.services.ContentService.ReadAll(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "error resolving contents batch")
		return
	}

	if report.Problems == nil {
		report.Problems = []models.Problem{}
	}

	render.JSON(w, r, report)
}
