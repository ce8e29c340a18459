package server

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zawlinnaung/slip-tracker/constants"
	"github.com/zawlinnaung/slip-tracker/internal/export"
	"github.com/zawlinnaung/slip-tracker/internal/service"
)

// SlipHandler exposes the slip-processing pipeline over HTTP.
type SlipHandler struct {
	processor     *service.Processor
	maxUploadSize int64
	logger        *slog.Logger
}

func NewSlipHandler(p *service.Processor, maxUploadSize int64, logger *slog.Logger) *SlipHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlipHandler{processor: p, maxUploadSize: maxUploadSize, logger: logger}
}

// Upload handles POST /api/v1/slips. The uploaded file's name is the
// document identifier: re-uploading the same name is reported as a duplicate
// and does not change the dataset.
func (h *SlipHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "multipart field 'file' is required")
		return
	}
	if file.Size > h.maxUploadSize {
		RespondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "uploaded file exceeds the size limit")
		return
	}
	if !constants.IsAllowedExtension(filepath.Ext(file.Filename)) {
		RespondError(c, http.StatusBadRequest, "UNSUPPORTED_TYPE", "only png, jpg and jpeg slips are accepted")
		return
	}

	// stage the upload where the recognizer binary can read it
	tmp := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmp); err != nil {
		h.logger.Error("upload.save.failed", "filename", file.Filename, "error", err)
		RespondError(c, http.StatusInternalServerError, "UPLOAD_FAILED", "could not store the uploaded file")
		return
	}
	defer func() {
		if rerr := os.Remove(tmp); rerr != nil {
			h.logger.Warn("upload.cleanup.failed", "path", tmp, "error", rerr)
		}
	}()

	res := h.processor.ProcessImage(c.Request.Context(), file.Filename, tmp)
	switch res.Status {
	case service.StatusExtracted:
		RespondCreated(c, res)
	case service.StatusDuplicate:
		RespondOK(c, res)
	default:
		// recognizer produced no usable text; surfaced as a warning, not a 5xx
		RespondError(c, http.StatusUnprocessableEntity, "NO_TEXT", res.Warning)
	}
}

// List handles GET /api/v1/slips: the tabular projection of the current
// session's dataset.
func (h *SlipHandler) List(c *gin.Context) {
	RespondOK(c, h.processor.Table())
}

// Total handles GET /api/v1/slips/total.
func (h *SlipHandler) Total(c *gin.Context) {
	RespondOK(c, gin.H{
		"total_amount": h.processor.TotalAmount().StringFixed(2),
		"count":        h.processor.Size(),
	})
}

// Warnings handles GET /api/v1/slips/warnings: documents skipped because the
// recognizer produced no usable text.
func (h *SlipHandler) Warnings(c *gin.Context) {
	RespondOK(c, h.processor.Warnings())
}

// Export handles GET /api/v1/slips/export?format=xlsx|csv.
func (h *SlipHandler) Export(c *gin.Context) {
	table := h.processor.Table()
	switch c.DefaultQuery("format", "xlsx") {
	case "xlsx":
		data, err := export.WriteXLSX(table)
		if err != nil {
			h.logger.Error("export.xlsx.failed", "error", err)
			RespondError(c, http.StatusInternalServerError, "EXPORT_FAILED", "could not build workbook")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="transaction_details.xlsx"`)
		c.Data(http.StatusOK, export.XLSXContentType, data)
	case "csv":
		c.Header("Content-Disposition", `attachment; filename="transaction_details.csv"`)
		c.Header("Content-Type", export.CSVContentType)
		c.Status(http.StatusOK)
		_, _ = c.Writer.Write(export.BOM)
		w := export.NewCSVWriter(c.Writer)
		if err := w.WriteTable(table); err != nil {
			h.logger.Error("export.csv.failed", "error", err)
			return
		}
		w.Flush()
	default:
		RespondError(c, http.StatusBadRequest, "BAD_FORMAT", "format must be xlsx or csv")
	}
}

// Health handles GET /healthz.
func (h *SlipHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
