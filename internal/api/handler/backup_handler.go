package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accubooks/accounting-system/internal/core/ports"
)

// maxImportBytes caps backup uploads. Snapshots are small JSON documents; the
// cap guards against accidental multi-gigabyte posts, not malice.
const maxImportBytes = 32 << 20

// BackupHandler exports and restores the whole dataset as one JSON snapshot.
type BackupHandler struct {
	service ports.BackupService
}

func NewBackupHandler(service ports.BackupService) *BackupHandler {
	return &BackupHandler{service: service}
}

// Export returns the full dataset with user credentials stripped.
//
// @Summary      Export all data
// @Tags         backup
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Backup
// @Router       /v1/backup/export [get]
func (h *BackupHandler) Export(c echo.Context) error {
	backup, err := h.service.Export(c.Request().Context())
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="accubooks-backup.json"`)
	return c.JSON(http.StatusOK, backup)
}

// Import restores a previously exported snapshot. Present collections replace
// the stored ones wholesale; absent collections are left alone.
//
// @Summary      Import a backup
// @Tags         backup
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.Backup  true  "Backup snapshot"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /v1/backup/import [post]
func (h *BackupHandler) Import(c echo.Context) error {
	raw, err := io.ReadAll(io.LimitReader(c.Request().Body, maxImportBytes))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "failed to read request body"})
	}

	if err := h.service.Import(c.Request().Context(), raw); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "backup restored"})
}
