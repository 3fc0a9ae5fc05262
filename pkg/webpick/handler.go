package webpick

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thienel/filepick"
	"github.com/thienel/filepick/pkg/apperror"
	"github.com/thienel/filepick/pkg/format"
	"github.com/thienel/filepick/pkg/notify"
	"github.com/thienel/filepick/pkg/response"
)

// Handler exposes the selection pipeline over HTTP for web platforms. It
// prepares storage paths and metadata for submitted files; nothing is
// persisted here.
type Handler struct {
	selector *filepick.Selector
	hub      *notify.Hub
	logger   *zap.SugaredLogger
	config   HandlerConfig
}

// HandlerConfig configures the web handler.
type HandlerConfig struct {
	// MaxUploadSize is the maximum size per submitted file in bytes.
	MaxUploadSize int64

	// EnforceFormats rejects files outside the fixed MIME allow-list.
	EnforceFormats bool

	// Prefix is the storage path prefix for web selections.
	Prefix string
}

// DefaultHandlerConfig returns default handler configuration.
func DefaultHandlerConfig() HandlerConfig {
	return HandlerConfig{
		MaxUploadSize:  50 * 1024 * 1024, // 50MB
		EnforceFormats: true,
		Prefix:         "",
	}
}

// NewHandler creates a web selection handler. hub may be nil when no
// notification surface is exposed.
func NewHandler(selector *filepick.Selector, hub *notify.Hub, logger *zap.SugaredLogger, config HandlerConfig) *Handler {
	return &Handler{
		selector: selector,
		hub:      hub,
		logger:   logger,
		config:   config,
	}
}

// selectedItem is the JSON shape returned per prepared file.
type selectedItem struct {
	StoragePath string                    `json:"storage_path"`
	Size        int                       `json:"size"`
	ContentType string                    `json:"content_type"`
	Dimensions  *filepick.MediaDimensions `json:"dimensions,omitempty"`
}

// Select handles POST /select requests: it runs the submitted multipart
// files through the selection pipeline and returns their prepared storage
// paths and metadata.
func (h *Handler) Select(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(h.config.MaxUploadSize); err != nil {
		response.BadRequest(c, "Failed to parse form")
		return
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["files"]) == 0 {
		response.BadRequest(c, "No files provided")
		return
	}
	headers := form.File["files"]

	if h.config.EnforceFormats {
		for _, header := range headers {
			if !h.selector.Validator().Check(header.Filename) {
				response.HandleAppError(c, apperror.ErrUnsupportedFormat.
					WithMessagef("File format not allowed: %s", format.ResolveType(header.Filename)))
				return
			}
		}
	}

	var extensions []string
	if raw := c.Query("extensions"); raw != "" {
		extensions = strings.Split(raw, ",")
	}

	picker := NewFormPicker(headers, h.config.MaxUploadSize)
	results, err := h.selector.SelectFilesFrom(c.Request.Context(), picker, filepick.FileOptions{
		Extensions: extensions,
		Multiple:   true,
		Prefix:     h.config.Prefix,
	})
	if err != nil {
		h.logger.Errorw("web selection failed", "error", err)
		if appErr, ok := apperror.AsAppError(err); ok {
			response.HandleAppError(c, appErr)
			return
		}
		response.InternalError(c, "Selection failed")
		return
	}
	if results == nil {
		// Nothing usable in the request; same outcome as a cancelled pick.
		response.NoContent(c)
		return
	}

	items := make([]selectedItem, 0, len(results))
	for _, r := range results {
		items = append(items, selectedItem{
			StoragePath: r.StoragePath,
			Size:        len(r.Data),
			ContentType: format.Detect(r.Data),
			Dimensions:  r.Dimensions,
		})
	}

	response.OK(c, gin.H{"files": items})
}

// Notice handles GET /notice requests: it reports the current transient
// notification so a web UI can render upload-status feedback.
func (h *Handler) Notice(c *gin.Context) {
	if h.hub == nil {
		response.NoContent(c)
		return
	}
	current := h.hub.Current()
	if current == nil {
		response.NoContent(c)
		return
	}
	c.JSON(http.StatusOK, response.Success(current))
}

// RegisterRoutes registers selection routes on a Gin router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/select", h.Select)
	rg.GET("/notice", h.Notice)
}
