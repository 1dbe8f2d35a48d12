package routes

import (
	"visitme_reservas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathWizard = "/wizard"

func addWizardRoutes(rg *gin.RouterGroup, wizardHandler *handlers.WizardHandler) {
	wizard := rg.Group(PathWizard)
	{
		wizard.POST("", wizardHandler.StartWizard)
		wizard.GET("/:session_id", wizardHandler.GetWizard)
		wizard.POST("/:session_id/space", wizardHandler.SelectSpace)
		wizard.POST("/:session_id/department", wizardHandler.SelectDepartment)
		wizard.POST("/:session_id/day", wizardHandler.SelectDay)
		wizard.POST("/:session_id/block", wizardHandler.SelectBlock)
		wizard.POST("/:session_id/navigate", wizardHandler.Navigate)
		wizard.POST("/:session_id/submit", wizardHandler.SubmitWizard)
	}
}
