package handlers

import (
	"bytes"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/DrOldGuy/model-railroad-scaler/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	indexTemplate = "index.html"
	cssDir        = "css"

	errPageUnavailable   = "page unavailable"
	errClientNotBuilt    = "client.js has not been built"
	contentTypeHTML      = "text/html; charset=utf-8"
	contentTypeCSS       = "text/css; charset=utf-8"
	contentTypeJS        = "application/javascript; charset=utf-8"
	defaultModelScale    = "HO"
	defaultOutputUnit    = models.UnitInch
	defaultDimensionUnit = models.UnitFoot
)

type unitOption struct {
	Value models.Unit
	Label string
}

var unitOptions = []unitOption{
	{models.UnitInch, "Inches"},
	{models.UnitFoot, "Feet"},
	{models.UnitCM, "Centimeters"},
	{models.UnitMM, "Millimeters"},
}

type indexPage struct {
	Scales           []models.Scale
	Units            []unitOption
	DefaultScale     string
	DefaultOutput    models.Unit
	DefaultDimension models.Unit
	Dimensions       []string
}

// index renders the scaler page with the current scale catalogue.
func (h *Handler) index(c *gin.Context) {
	if h.opts.Pages == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errPageUnavailable})
		return
	}
	tmpl, err := template.ParseFS(h.opts.Pages, indexTemplate)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errPageUnavailable, "page_parse_failed", err)
		return
	}

	scales, err := h.services.Catalog.ListScales(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errPageUnavailable, "page_scales_failed", err)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, indexPage{
		Scales:           scales,
		Units:            unitOptions,
		DefaultScale:     defaultModelScale,
		DefaultOutput:    defaultOutputUnit,
		DefaultDimension: defaultDimensionUnit,
		Dimensions:       []string{"length", "width", "height"},
	}); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errPageUnavailable, "page_render_failed", err)
		return
	}
	c.Data(http.StatusOK, contentTypeHTML, buf.Bytes())
}

// stylesheet serves files below css/ from the page tree.
func (h *Handler) stylesheet(c *gin.Context) {
	name := path.Join(cssDir, strings.TrimPrefix(c.Param("filepath"), "/"))
	if h.opts.Pages == nil || !fs.ValidPath(name) || !strings.HasPrefix(name, cssDir+"/") {
		c.Status(http.StatusNotFound)
		return
	}
	b, err := fs.ReadFile(h.opts.Pages, name)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.Data(http.StatusOK, contentTypeCSS, b)
}

// clientJS serves the compiled form controller from disk so it can be rebuilt
// without restarting the server.
func (h *Handler) clientJS(c *gin.Context) {
	if h.opts.ClientJS == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": errClientNotBuilt})
		return
	}
	b, err := os.ReadFile(h.opts.ClientJS)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) && h.log != nil {
			h.log.Errorw("client_js_read_failed", "err", err, "path", h.opts.ClientJS)
		}
		c.JSON(http.StatusNotFound, gin.H{"error": errClientNotBuilt})
		return
	}
	c.Data(http.StatusOK, contentTypeJS, b)
}
