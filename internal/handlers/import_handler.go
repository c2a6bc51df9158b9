package handlers

import (
	"errors"

	"movie-vault/internal/services"
	"movie-vault/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ImportHandler struct {
	service     services.ImportService
	defaultRoot string
	logger      *logrus.Logger
}

func NewImportHandler(service services.ImportService, defaultRoot string, logger *logrus.Logger) *ImportHandler {
	return &ImportHandler{
		service:     service,
		defaultRoot: defaultRoot,
		logger:      logger,
	}
}

// ImportLocal godoc
// @Summary Import local movie files
// @Description Scan a directory of video files and import each one, enriched with OMDB metadata when available
// @Tags import
// @Accept json
// @Produce json
// @Param path query string false "Directory to scan (defaults to the configured movies directory)"
// @Success 200 {object} utils.StandardResponse "Scan summary"
// @Failure 404 {object} utils.StandardResponse "Directory not found"
// @Failure 500 {object} utils.StandardResponse "Scan failed"
// @Router /import/local [post]
func (h *ImportHandler) ImportLocal(c *fiber.Ctx) error {
	ctx := c.Context()

	root := c.Query("path", h.defaultRoot)

	summary, err := h.service.ScanLibrary(ctx, root)
	if err != nil {
		if errors.Is(err, services.ErrFolderNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, err.Error())
		}
		h.logger.WithError(err).WithField("root", root).Error("Library scan failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Library scan failed")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Library scan completed", summary)
}
