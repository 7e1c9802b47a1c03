package http

import (
	"net/http"

	"github.com/go-chi/render"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, h.services.AppInfoService.GetAppVersion(r.Context()))
}
