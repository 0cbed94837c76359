package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/DrOldGuy/model-railroad-scaler/internal/models"
	"github.com/DrOldGuy/model-railroad-scaler/internal/service"

	"github.com/gin-gonic/gin"
)

const errLoadConversions = "failed to load conversions"

type conversionsPage struct {
	Count       int                 `json:"count"`
	Conversions []models.Conversion `json:"conversions"`
}

// Accepted time layouts, most specific first. A bare date as the upper bound
// covers that whole day.
var queryTimeLayouts = []struct {
	layout   string
	wholeDay bool
}{
	{time.RFC3339, false},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02", true},
}

// parseBound parses one end of the range. upper extends bare dates to the last
// instant of the day.
func parseBound(name, s string, upper bool) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, l := range queryTimeLayouts {
		t, err := time.Parse(l.layout, s)
		if err != nil {
			continue
		}
		if upper && l.wholeDay {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid '%s' time %q; use RFC3339, 'YYYY-MM-DD HH:MM:SS' or YYYY-MM-DD", name, s)
}

// @Summary      List conversions
// @Description  Recorded conversions, oldest first, filtered by time range and direction. A date-only 'to' covers the whole day.
// @Tags         history
// @Produce      json
// @Param        from       query   string  false  "Start of range"  example(2025-08-01)
// @Param        to         query   string  false  "End of range"    example(2025-08-31)
// @Param        direction  query   string  false  "Direction"  Enums(FULLSIZE_TO_MODEL,MODEL_TO_FULLSIZE)
// @Success      200   {object}  conversionsPage
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/conversions [get]
// @Security     BearerAuth
func (h *Handler) listConversions(c *gin.Context) {
	fromQ, toQ, direction := c.Query("from"), c.Query("to"), c.Query("direction")

	from, err := parseBound("from", fromQ, false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := parseBound("to", toQ, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := service.ConversionFilter{From: from, To: to, Direction: direction}
	conversions, err := h.services.History.ListConversions(c.Request.Context(), filter)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, conversionsPage{Count: len(conversions), Conversions: conversions})
	case service.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadConversions, "conversions_list_failed", err,
			"from", fromQ, "to", toQ, "direction", direction, "user_id", currentUser(c))
	}
}
