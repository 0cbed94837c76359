package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/DrOldGuy/model-railroad-scaler/internal/models"
	"github.com/DrOldGuy/model-railroad-scaler/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errListScales = "failed to load scales"

	timestampLayout = "Monday, 02-Jan-2006 15:04:05"
)

// errorTimestamp renders t as e.g. "Friday, 05-Jul-2024 14:03:01 GMT-0500".
func errorTimestamp(t time.Time) string {
	return t.Format(timestampLayout) + " GMT" + t.Format("-0700")
}

// errorDetails writes the ErrorDetails body every /scale failure carries.
// Server faults are logged with the full error, caller mistakes with the message only.
func (h *Handler) errorDetails(c *gin.Context, code int, err error) {
	if h.log != nil {
		if code >= http.StatusInternalServerError {
			h.log.Errorw("scale_failed", "err", err, "uri", c.Request.URL.Path)
		} else {
			h.log.Infow("scale_rejected", "err", err.Error(), "uri", c.Request.URL.Path)
		}
	}
	c.JSON(code, models.ErrorDetails{
		Message:     err.Error(),
		ErrorCode:   code,
		ErrorReason: http.StatusText(code),
		Timestamp:   errorTimestamp(h.now()),
		URI:         c.Request.URL.Path,
	})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Scale dimensions
// @Description  Supply exactly one of fullsizeDimensions or modelDimensions; the other set is computed. Values may be numbers or numeric strings.
// @Tags         scale
// @Accept       json
// @Produce      json
// @Param        body  body      models.ScaleData     true  "Scale request"
// @Success      200   {object}  models.ScaleData
// @Failure      400   {object}  models.ErrorDetails
// @Failure      500   {object}  models.ErrorDetails
// @Router       /scale [post]
func (h *Handler) scale(c *gin.Context) {
	var in models.ScaleData
	if err := c.ShouldBindJSON(&in); err != nil {
		h.errorDetails(c, http.StatusBadRequest, err)
		return
	}
	if h.log != nil {
		h.log.Debugw("scale_request", "data", in.String())
	}

	ctx := c.Request.Context()
	out, err := h.services.Scaler.SupplyMissingFields(ctx, in)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			h.errorDetails(c, http.StatusBadRequest, ve)
			return
		}
		h.errorDetails(c, http.StatusInternalServerError, err)
		return
	}

	if _, err := h.services.History.Record(ctx, in, out); err != nil && h.log != nil {
		h.log.Errorw("conversion_record_failed", "err", err, "scale", out.Scale)
	}

	c.JSON(http.StatusOK, out)
}

// @Summary      List scales
// @Description  Built-in and custom scales, largest model first.
// @Tags         scale
// @Produce      json
// @Success      200  {array}   models.Scale
// @Failure      500  {object}  map[string]string
// @Router       /scales [get]
func (h *Handler) listScales(c *gin.Context) {
	scales, err := h.services.Catalog.ListScales(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListScales, "scales_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, scales)
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}
