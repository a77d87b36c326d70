package handlers

import (
	"errors"
	"net/http"

	"rawasi_matching/internal/usecase"
	"rawasi_matching/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDraftPayload    = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid project draft payload", http.StatusBadRequest)
	errInvalidNavigatePayload = pkg.NewDomainErrorSimple("INVALID_NAVIGATION_INPUT", "Provide either a stage or an action", http.StatusBadRequest)
	errInvalidQuery           = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidProviderID), errors.Is(err, usecase.ErrInvalidTechTag):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProviderNotFound):
		return pkg.NewDomainErrorSimple("PROVIDER_NOT_FOUND", "Provider not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNameRequired):
		return pkg.NewDomainErrorSimple("PROJECT_NAME_REQUIRED", "Please name your project.", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrWizardIncomplete):
		return pkg.NewDomainErrorSimple("WIZARD_INCOMPLETE", "Finish every wizard step before submitting", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidProjectDraft):
		return pkg.NewDomainError("INVALID_PROJECT_DRAFT", "Invalid project draft", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidAction):
		return pkg.NewDomainErrorSimple("INVALID_ACTION", "Unknown flow action", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapSessionError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
