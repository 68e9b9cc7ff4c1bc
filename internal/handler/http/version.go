package http

import (
	"net/http"

	"github.com/MKhiriev/lexsight/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	info := h.services.AppInfoService.GetBuildInfo(ctx)

	writeJSON(w, r, models.VersionResponse{
		Version: h.services.AppInfoService.GetAppVersion(ctx),
		Build:   info.BuildVersion(),
		Date:    info.BuildDate(),
		Commit:  info.BuildCommit(),
	}, http.StatusOK)
}
