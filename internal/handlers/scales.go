package handlers

import (
	"errors"
	"net/http"

	"github.com/DrOldGuy/model-railroad-scaler/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	errAddScale        = "failed to save scale"
	errInvalidBodyPref = "invalid body: "
)

// AddScaleRequest is the payload for creating or updating a custom scale.
type AddScaleRequest struct {
	// Letters and digits only, at most 16 characters
	Name string `json:"name" binding:"required" example:"Gn15"`
	// Full size / model ratio; must be positive
	Factor decimal.Decimal `json:"factor" swaggertype:"number" example:"22.5"`
}

// @Summary      Add or update a custom scale
// @Description  Built-in scales (O, S, OO, HO, TT, N, Z) cannot be changed.
// @Tags         scale
// @Accept       json
// @Produce      json
// @Param        body  body      AddScaleRequest  true  "Scale"
// @Success      200   {object}  models.Scale
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/scales [post]
// @Security     BearerAuth
func (h *Handler) addScale(c *gin.Context) {
	var req AddScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	scale, err := h.services.Catalog.AddScale(c.Request.Context(), req.Name, req.Factor)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrBuiltinScale):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case service.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errAddScale, "scale_save_failed", err, "name", req.Name)
		return
	}

	if h.log != nil {
		h.log.Infow("scale_saved", "name", scale.Name, "factor", scale.Factor.String(), "user_id", currentUser(c))
	}
	c.JSON(http.StatusOK, scale)
}
