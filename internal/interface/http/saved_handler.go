package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/luxeliving/catalog-api/internal/application"
	"github.com/luxeliving/catalog-api/internal/interface/middleware"
	"github.com/luxeliving/catalog-api/pkg/response"
	"github.com/luxeliving/catalog-api/pkg/validation"
)

type SavedPropertyHandler struct {
	Svc    *application.SavedPropertyService
	Logger *logrus.Logger
}

func NewSavedPropertyHandler(svc *application.SavedPropertyService, logger *logrus.Logger) *SavedPropertyHandler {
	return &SavedPropertyHandler{Svc: svc, Logger: logger}
}

type saveRequest struct {
	Notes string `json:"notes" binding:"omitempty,max=500"`
}

// Save handles POST /properties/:id/save.
func (h *SavedPropertyHandler) Save(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	var req saveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
			return
		}
	}

	sp, err := h.Svc.Save(c.Request.Context(), uid, c.Param("id"), req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrPropertyNotFound):
			response.Error(c, http.StatusNotFound, "Property not found", nil)
		case errors.Is(err, application.ErrAlreadySaved):
			response.Error(c, http.StatusBadRequest, "Property already saved", nil)
		default:
			h.fail(c, "save property", err)
		}
		return
	}
	response.Data(c, http.StatusOK, sp, "")
}

// List handles GET /properties/saved.
func (h *SavedPropertyHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	items, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		h.fail(c, "list saved properties", err)
		return
	}
	response.Collection(c, items, len(items), "")
}

// Remove handles DELETE /properties/saved/:id.
func (h *SavedPropertyHandler) Remove(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Remove(c.Request.Context(), uid, c.Param("id")); err != nil {
		if errors.Is(err, application.ErrSavedNotFound) {
			response.Error(c, http.StatusNotFound, "Saved property not found", nil)
			return
		}
		h.fail(c, "remove saved property", err)
		return
	}
	response.Message(c, http.StatusOK, "Property removed from saved")
}

// fail reports a write-path store failure. Retryable store errors become
// 503 so clients can distinguish "try again" from a Conflict.
func (h *SavedPropertyHandler) fail(c *gin.Context, op string, err error) {
	if h.Logger != nil {
		h.Logger.WithError(err).Error(op + " failed")
	}
	var we *application.StoreWriteError
	if errors.As(err, &we) {
		response.Error(c, http.StatusServiceUnavailable, "store temporarily unavailable, try again", nil)
		return
	}
	response.Error(c, http.StatusInternalServerError, "Failed to "+op, nil)
}
