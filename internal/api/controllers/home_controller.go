package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"smartcity/internal/view"
	"smartcity/pkg/utils"
)

type HomeController struct{}

func NewHomeController() *HomeController {
	return &HomeController{}
}

// Home serves GET /, the navigation between screens.
func (hc *HomeController) Home(c *gin.Context) {
	p := view.NewPage("", "🏙️", "SmartCity", "Console d'administration de la ville intelligente")
	utils.RespondPage(c, http.StatusOK, "home.tmpl", p)
}

// NotFound renders the error page for unknown routes.
func (hc *HomeController) NotFound(c *gin.Context) {
	utils.HandleServiceError(c, zap.L(), utils.ErrPageNotFound)
}
