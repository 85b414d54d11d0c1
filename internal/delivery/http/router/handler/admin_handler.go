package handler

import (
	"net/http"

	"batulens/internal/delivery/http/response"
	"batulens/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the kunjungan management endpoints.
type AdminHandler struct {
	uc usecase.VisitUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.VisitUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListKunjungan serves the managed visit records.
func (h *AdminHandler) ListKunjungan(c echo.Context) error {
	visits, err := h.uc.ListVisits(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, visits, "")
}

// AddWisata creates a new visit record.
func (h *AdminHandler) AddWisata(c echo.Context) error {
	var input usecase.VisitInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visit input")
	}

	record, err := h.uc.AddVisit(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, record, "Data kunjungan berhasil ditambahkan")
}

// UpdateWisata replaces the visit count of an existing record.
func (h *AdminHandler) UpdateWisata(c echo.Context) error {
	var input usecase.VisitInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visit input")
	}

	record, err := h.uc.UpdateVisit(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Data kunjungan berhasil diperbarui")
}

// DeleteWisata removes a visit record by name.
func (h *AdminHandler) DeleteWisata(c echo.Context) error {
	var input usecase.VisitInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visit input")
	}

	if err := h.uc.DeleteVisit(c.Request().Context(), input.NamaWisata); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Data kunjungan berhasil dihapus")
}

// UploadFile accepts a new review dataset file.
func (h *AdminHandler) UploadFile(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "File tidak ditemukan")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	output, err := h.uc.UploadDataset(c.Request().Context(), usecase.UploadInput{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Reader:   file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "File berhasil diunggah")
}

// ExportKunjungan streams the visit records as a CSV download.
func (h *AdminHandler) ExportKunjungan(c echo.Context) error {
	output, err := h.uc.ExportVisits(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return sendAttachment(c, output)
}

// BackupData streams a zip archive of the managed data.
func (h *AdminHandler) BackupData(c echo.Context) error {
	output, err := h.uc.BackupData(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return sendAttachment(c, output)
}

// DownloadTemplate streams the upload template workbook.
func (h *AdminHandler) DownloadTemplate(c echo.Context) error {
	output, err := h.uc.Template(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return sendAttachment(c, output)
}

func sendAttachment(c echo.Context, output *usecase.ExportOutput) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+output.Filename+`"`)

	return c.Blob(http.StatusOK, output.ContentType, output.Content)
}
