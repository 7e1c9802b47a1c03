package http

import (
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/MKhiriev/go-config-reader/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

const (
	useDefaultLabelParameter = "useDefaultLabel"

	// slashPlaceholder stands for "/" inside a single label or name segment.
	slashPlaceholder = "(_)"

	defaultResourceContentType = "text/plain; charset=utf-8"
)

// getEnvironment serves GET /config/{application}/{profile}.
func (h *Handler) getEnvironment(w http.ResponseWriter, r *http.Request) {
	h.writeEnvironment(w, r, "")
}

// getEnvironmentOrResource serves GET /config/{application}/{profile}/{label}.
// With ?useDefaultLabel the last segment is a resource name instead.
func (h *Handler) getEnvironmentOrResource(w http.ResponseWriter, r *http.Request) {
	segment := unescapeSegment(chi.URLParam(r, "label"))

	if r.URL.Query().Has(useDefaultLabelParameter) {
		h.writeResource(w, r, "", segment)
		return
	}

	h.writeEnvironment(w, r, segment)
}

// getResource serves GET /config/{application}/{profile}/{label}/{name...}.
func (h *Handler) getResource(w http.ResponseWriter, r *http.Request) {
	label := unescapeSegment(chi.URLParam(r, "label"))
	name := unescapeSegment(chi.URLParam(r, "*"))

	if r.URL.Query().Has(useDefaultLabelParameter) {
		h.writeResource(w, r, "", label+"/"+name)
		return
	}

	h.writeResource(w, r, label, name)
}

func (h *Handler) writeEnvironment(w http.ResponseWriter, r *http.Request, label string) {
	env, err := h.services.ConfigServerService.Environment(
		r.Context(),
		chi.URLParam(r, "application"),
		chi.URLParam(r, "profile"),
		label,
	)
	if err != nil {
		writeError(w, r, err, "error finding environment")
		return
	}

	render.JSON(w, r, env)
}

func (h *Handler) writeResource(w http.ResponseWriter, r *http.Request, label, name string) {
	rc, err := h.services.ConfigServerService.Resource(
		r.Context(),
		chi.URLParam(r, "application"),
		chi.URLParam(r, "profile"),
		label,
		name,
	)
	if err != nil {
		writeError(w, r, err, "error finding resource")
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", resourceContentType(name))
	w.WriteHeader(http.StatusOK)
	if _, err = io.Copy(w, rc); err != nil {
		logger.FromRequest(r).Err(err).Str("resource", name).Msg("error streaming resource")
	}
}

func unescapeSegment(s string) string {
	return strings.ReplaceAll(s, slashPlaceholder, "/")
}

func resourceContentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return defaultResourceContentType
}
