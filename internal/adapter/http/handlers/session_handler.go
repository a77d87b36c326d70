package handlers

import (
	"net/http"

	request "rawasi_matching/internal/adapter/http/dto/request"
	response "rawasi_matching/internal/adapter/http/dto/response"
	"rawasi_matching/internal/domain/entities"
	"rawasi_matching/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles the write side of an owner session: the wizard,
// the compare selection and navigation.
type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// StartSession godoc
// @Summary  Start a session
// @Tags     sessions
// @Produce  json
// @Success  201  {object}  response.SessionResponse
// @Router   /sessions [post]
func (h *SessionHandler) StartSession(c *gin.Context) {
	s, err := h.usecase.Start(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(s))
}

// GetSession godoc
// @Summary  Get a session snapshot
// @Tags     sessions
// @Produce  json
// @Param    id   path      string  true  "Session ID"
// @Success  200  {object}  response.SessionResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	h.respondSession(c, http.StatusOK, func(id string) (entities.Session, error) {
		return h.usecase.Get(c.Request.Context(), id)
	})
}

// ResetSession godoc
// @Summary  Reset a session to the first wizard step
// @Tags     sessions
// @Produce  json
// @Param    id   path      string  true  "Session ID"
// @Success  200  {object}  response.SessionResponse
// @Router   /sessions/{id} [delete]
func (h *SessionHandler) ResetSession(c *gin.Context) {
	h.respondSession(c, http.StatusOK, func(id string) (entities.Session, error) {
		return h.usecase.Reset(c.Request.Context(), id)
	})
}

// UpdateDraft godoc
// @Summary  Replace the wizard draft
// @Tags     wizard
// @Accept   json
// @Produce  json
// @Param    id       path      string                true  "Session ID"
// @Param    payload  body      request.DraftRequest  true  "Project draft"
// @Success  200      {object}  response.SessionResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /sessions/{id}/draft [put]
func (h *SessionHandler) UpdateDraft(c *gin.Context) {
	var payload request.DraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}
	h.respondSession(c, http.StatusOK, func(id string) (entities.Session, error) {
		return h.usecase.UpdateDraft(c.Request.Context(), id, payload.ToDescriptor())
	})
}

// NextStep godoc
// @Summary  Advance the wizard one step
// @Tags     wizard
// @Produce  json
// @Param    id   path      string  true  "Session ID"
// @Success  200  {object}  response.SessionResponse
// @Failure  422  {object}  pkg.HTTPError
// @Router   /sessions/{id}/draft/next [post]
func (h *SessionHandler) NextStep(c *gin.Context) {
	h.respondSession(c, http.StatusOK, func(id string) (entities.Session, error) {
		return h.usecase.NextStep(c.Request.Context(), id)
	})
}

// PrevStep godoc
// @Summary  Go back one wizard step
// @Tags     wizard
// @Produce  json
// @Param    id   path      string  true  "Session ID"
// @Success  200  {object}  response.SessionResponse
// @Router   /sessions/{id}/draft/prev [post]
func (h *SessionHandler) PrevStep(c *gin.Context) {
	h.respondSession(c, http.StatusOK, func(id string) (entities.Session, error) {
		return h.usecase.PrevStep(c.Request.Context(), id)
	})
}

// ToggleTech godoc
// @Summary  Add or remove a tech need on the wizard draft
// @Tags     wizard
// @Produce  json
// @Param    id   path      string  true  "Session ID"
// @Param    tag  path      string  true  "Tech tag"
// @Success  200  {object}  response.SessionResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /sessions/{id}/draft/tech/{tag} [post]
func (h *SessionHandler) ToggleTech(c *gin.Context) {
	h.respondSession(c, http.StatusOK, func(id string) (entities.Session, error) {
		return h.usecase.ToggleTech(c.Request.Context(), id, c.Param("tag"))
	})
}

// SubmitDraft godoc
// @Summary  Submit the project and move to recommendations
// @Tags     wizard
// @Produce  json
// @Param    id   path      string  true  "Session ID"
// @Success  200  {object}  response.SessionResponse
// @Failure  409  {object}  pkg.HTTPError
// @Failure  422  {object}  pkg.HTTPError
// @Router   /sessions/{id}/draft/submit [post]
func (h *SessionHandler) SubmitDraft(c *gin.Context) {
	h.respondSession(c, http.StatusOK, func(id string) (entities.Session, error) {
		return h.usecase.Submit(c.Request.Context(), id)
	})
}

// ToggleCompare godoc
// @Summary  Add or remove a provider from the compare selection
// @Tags     compare
// @Produce  json
// @Param    id           path      string  true  "Session ID"
// @Param    provider_id  path      string  true  "Provider ID"
// @Success  200          {object}  response.SessionResponse
// @Failure  404          {object}  pkg.HTTPError
// @Router   /sessions/{id}/compare/{provider_id} [post]
func (h *SessionHandler) ToggleCompare(c *gin.Context) {
	h.respondSession(c, http.StatusOK, func(id string) (entities.Session, error) {
		return h.usecase.ToggleCompare(c.Request.Context(), id, c.Param("provider_id"))
	})
}

// PickProvider godoc
// @Summary  Record the provider picked from the comparison
// @Tags     compare
// @Produce  json
// @Param    id           path      string  true  "Session ID"
// @Param    provider_id  path      string  true  "Provider ID"
// @Success  200          {object}  response.SessionResponse
// @Router   /sessions/{id}/picked/{provider_id} [put]
func (h *SessionHandler) PickProvider(c *gin.Context) {
	h.respondSession(c, http.StatusOK, func(id string) (entities.Session, error) {
		return h.usecase.PickProvider(c.Request.Context(), id, c.Param("provider_id"))
	})
}

// Navigate godoc
// @Summary      Move to a stage
// @Description  Blocked stages are redirected; the response reports the stage actually entered.
// @Tags         flow
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Session ID"
// @Param        payload  body      request.NavigateRequest  true  "Stage or action"
// @Success      200      {object}  response.NavigationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /sessions/{id}/navigate [post]
func (h *SessionHandler) Navigate(c *gin.Context) {
	var payload request.NavigateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNavigatePayload.HTTPStatus, errInvalidNavigatePayload.ToHTTPError())
		return
	}
	stage, action, err := payload.Resolve()
	if err != nil {
		c.JSON(errInvalidNavigatePayload.HTTPStatus, errInvalidNavigatePayload.ToHTTPError())
		return
	}

	var res usecase.NavigationResult
	if action != "" {
		res, err = h.usecase.NavigateAction(c.Request.Context(), c.Param("id"), action)
	} else {
		res, err = h.usecase.Navigate(c.Request.Context(), c.Param("id"), stage)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNavigation(res))
}

func (h *SessionHandler) respondSession(c *gin.Context, status int, call func(id string) (entities.Session, error)) {
	s, err := call(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(status, response.FromSession(s))
}
