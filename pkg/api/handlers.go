package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"interest-form/pkg/form"
	"interest-form/pkg/models"
	"interest-form/pkg/services"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	sessions *services.SessionService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(sessions *services.SessionService, logger *zap.Logger) *Handlers {
	v := validator.New()
	// Report fields by the names the page uses
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handlers{
		sessions: sessions,
		validate: v,
		logger:   logger,
	}
}

// Register attaches the routes to r
func (h *Handlers) Register(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)

	forms := r.Group("/forms")
	forms.POST("", h.CreateForm)
	forms.GET("/:id", h.GetForm)
	forms.PUT("/:id/fields/:field", h.ChangeField)
	forms.POST("/:id/submit", h.SubmitForm)
	forms.DELETE("/:id", h.DeleteForm)
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// CreateForm mounts a new form with default values
func (h *Handlers) CreateForm(c *gin.Context) {
	session := h.sessions.Create()

	c.JSON(http.StatusCreated, formResponse(session.ID, session.State()))
}

// GetForm renders the current values and messages
func (h *Handlers) GetForm(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, formResponse(session.ID, session.State()))
}

// ChangeField delivers one input change to the form
func (h *Handlers) ChangeField(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	field, err := form.ParseField(c.Param("field"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req models.FieldChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	var state form.State
	err = session.Do(func(f *form.Controller) error {
		if err := f.Change(field, *req.Value); err != nil {
			return err
		}
		state = f.State()
		return nil
	})
	switch {
	case err == nil:
		c.JSON(http.StatusOK, formResponse(session.ID, state))
	case isSessionError(err):
		h.sessionError(c, err)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// incompleteError lists required inputs that are still empty, by page name.
type incompleteError struct {
	missing map[string]string
}

func (e *incompleteError) Error() string {
	return fmt.Sprintf("%d required fields are empty", len(e.missing))
}

// SubmitForm runs the submit gate. Empty required inputs stop the submit
// before the form sees it, as a browser would.
func (h *Handlers) SubmitForm(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var resp models.SubmitResponse
	err := session.Do(func(f *form.Controller) error {
		if missing := h.missingFields(f.State().Record); len(missing) > 0 {
			return &incompleteError{missing: missing}
		}

		submitted, accepted := f.Submit()
		resp.FormResponse = formResponse(session.ID, f.State())
		if accepted {
			resp.Status = "success"
			resp.Submitted = &submitted
		} else {
			resp.Status = "invalid"
		}
		return nil
	})

	var incomplete *incompleteError
	switch {
	case errors.As(err, &incomplete):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "incomplete",
			"missing": incomplete.missing,
		})
	case err != nil:
		h.sessionError(c, err)
	case resp.Submitted == nil:
		h.logger.Debug("submit blocked",
			zap.String("session_id", session.ID),
			zap.Bool("email_invalid", resp.Errors.Email != ""),
			zap.Bool("phone_invalid", resp.Errors.Phone != ""),
		)
		c.JSON(http.StatusUnprocessableEntity, resp)
	default:
		c.JSON(http.StatusOK, resp)
	}
}

// DeleteForm discards a form session
func (h *Handlers) DeleteForm(c *gin.Context) {
	if err := h.sessions.Delete(c.Param("id")); err != nil {
		h.sessionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handlers) session(c *gin.Context) (*services.Session, bool) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		h.sessionError(c, err)
		return nil, false
	}
	return session, true
}

func isSessionError(err error) bool {
	return errors.Is(err, services.ErrSessionNotFound) || errors.Is(err, services.ErrSessionExpired)
}

func (h *Handlers) sessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrSessionExpired):
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
	default:
		h.logger.Error("session lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// missingFields returns field name -> failed rule for inputs the page requires
func (h *Handlers) missingFields(r form.Record) map[string]string {
	err := h.validate.Struct(models.NewRequiredFields(r))
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return map[string]string{"_error": "validation_failed"}
	}

	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field()] = e.Tag()
	}
	return out
}

func formResponse(id string, state form.State) models.FormResponse {
	return models.FormResponse{
		ID:     id,
		Record: state.Record,
		Errors: state.Errors,
	}
}
