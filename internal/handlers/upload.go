package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jotamaster/calculadora-precios-telefonos/internal/catalog"
	"github.com/jotamaster/calculadora-precios-telefonos/internal/ingest"
	"github.com/jotamaster/calculadora-precios-telefonos/internal/telemetry"
)

// decodeErrorMessage is the single user-facing message for an unreadable
// workbook, matching the one shown by the upload form.
const decodeErrorMessage = "Error al procesar el archivo Excel. Asegúrate de que el formato sea correcto."

// UploadResponse reports what one upload produced.
type UploadResponse struct {
	Rows   int `json:"rows"`
	Models int `json:"models"`
}

// UploadWorkbook ingests a promotions workbook and replaces the catalog.
// POST /api/catalog, multipart field "file" (.xlsx or .xls, first sheet).
//
// One upload at a time: a second upload while the first is processing gets
// 409 instead of queueing. On a decode error the store is left untouched, so
// a previously loaded catalog stays visible.
func (a *API) UploadWorkbook(c *gin.Context) {
	if !a.uploading.CompareAndSwap(false, true) {
		telemetry.ObserveUploadFailure("rejected")
		c.JSON(http.StatusConflict, gin.H{"error": "an upload is already in progress"})
		return
	}
	defer a.uploading.Store(false)

	start := time.Now()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		telemetry.ObserveUploadFailure("rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' is required"})
		return
	}

	if a.maxUploadBytes > 0 && fileHeader.Size > a.maxUploadBytes {
		telemetry.ObserveUploadFailure("rejected")
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds the upload size limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		telemetry.ObserveUploadFailure("decode_error")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": decodeErrorMessage})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		telemetry.ObserveUploadFailure("decode_error")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": decodeErrorMessage})
		return
	}

	records, err := ingest.ParseWorkbook(content)
	if err != nil {
		if errors.Is(err, ingest.ErrDecode) {
			a.logger.Warn().Err(err).Str("filename", fileHeader.Filename).Msg("workbook decode failed")
			telemetry.ObserveUploadFailure("decode_error")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": decodeErrorMessage})
			return
		}
		telemetry.ObserveUploadFailure("decode_error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	built := catalog.Build(records)
	a.store.Replace(built)

	elapsed := time.Since(start)
	telemetry.ObserveUpload(len(records), built.Len(), elapsed)

	a.logger.Info().
		Str("filename", fileHeader.Filename).
		Int("rows", len(records)).
		Int("models", built.Len()).
		Dur("elapsed", elapsed).
		Msg("catalog replaced from upload")

	c.JSON(http.StatusOK, UploadResponse{
		Rows:   len(records),
		Models: built.Len(),
	})
}
