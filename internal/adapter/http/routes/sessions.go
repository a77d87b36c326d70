package routes

import (
	"rawasi_matching/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions = "/sessions"
)

func addSessionRoutes(rg *gin.RouterGroup, sessionHandler *handlers.SessionHandler, recommendationHandler *handlers.RecommendationHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", sessionHandler.StartSession)
		sessions.GET("/:id", sessionHandler.GetSession)
		sessions.DELETE("/:id", sessionHandler.ResetSession)

		// Project wizard.
		sessions.PUT("/:id/draft", sessionHandler.UpdateDraft)
		sessions.POST("/:id/draft/next", sessionHandler.NextStep)
		sessions.POST("/:id/draft/prev", sessionHandler.PrevStep)
		sessions.POST("/:id/draft/tech/:tag", sessionHandler.ToggleTech)
		sessions.POST("/:id/draft/submit", sessionHandler.SubmitDraft)

		sessions.GET("/:id/estimate", recommendationHandler.GetEstimate)
		sessions.GET("/:id/recommendations", recommendationHandler.GetRecommendations)

		sessions.GET("/:id/compare", recommendationHandler.GetCompare)
		sessions.POST("/:id/compare/:provider_id", sessionHandler.ToggleCompare)
		sessions.PUT("/:id/picked/:provider_id", sessionHandler.PickProvider)

		sessions.POST("/:id/navigate", sessionHandler.Navigate)
		sessions.GET("/:id/dashboard", recommendationHandler.GetDashboard)
	}
}
