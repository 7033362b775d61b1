package handler

import (
	"log/slog"
	"net/http"
	"path"

	"mealbell/internal/delivery/http/response"
	"mealbell/internal/domain/service"
	"mealbell/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AppHandlerParams holds dependencies for AppHandler, injected by Fx.
type AppHandlerParams struct {
	fx.In

	FileStore service.AppFileStore
	QRCodeSvc service.QRCodeService
	Logger    *slog.Logger
}

// AppHandler serves the distributed app binaries and the install QR code
type AppHandler struct {
	fileStore service.AppFileStore
	qrcodeSvc service.QRCodeService
	logger    *slog.Logger
}

// NewAppHandler is the constructor for AppHandler
func NewAppHandler(params AppHandlerParams) *AppHandler {
	return &AppHandler{
		fileStore: params.FileStore,
		qrcodeSvc: params.QRCodeSvc,
		logger:    params.Logger,
	}
}

// UploadApp handles an admin upload of a new app binary
func (h *AppHandler) UploadApp(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "file form field is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.InternalServerError(c, "FILE_READ_ERROR", "Failed to read uploaded file")
	}
	defer func() { _ = src.Close() }()

	// The stored name is the bare filename; any client path prefix is dropped.
	name := path.Base(fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := h.fileStore.Save(c.Request().Context(), name, contentType, src); err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("App binary uploaded",
		slog.String("name", name),
		slog.Int64("size", fileHeader.Size),
	)

	return response.Success(c, http.StatusCreated, map[string]string{"name": name}, "App binary uploaded successfully")
}

// DownloadApp streams a stored app binary
func (h *AppHandler) DownloadApp(c echo.Context) error {
	name := path.Base(c.Param("name"))

	r, contentType, err := h.fileStore.Open(c.Request().Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			return response.NotFound(c, "FILE_NOT_FOUND", "App binary not found")
		}

		return response.HandleAppError(c, err)
	}
	defer func() { _ = r.Close() }()

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)

	return c.Stream(http.StatusOK, contentType, r)
}

// GetInstallQR renders the QR code pointing at the app install page
func (h *AppHandler) GetInstallQR(c echo.Context) error {
	png, err := h.qrcodeSvc.GenerateInstallQR()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
