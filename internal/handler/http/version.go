// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/provenart/go-art-registry/models"
)

// getVersion serves GET /api/version.
func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.VersionResponse{Version: version})
}
