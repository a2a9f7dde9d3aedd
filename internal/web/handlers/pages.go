package handlers

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tokentide/tokentide-api/internal/middleware"
	"github.com/tokentide/tokentide-api/internal/models"
	"github.com/tokentide/tokentide-api/internal/services"
	"github.com/tokentide/tokentide-api/internal/web/templates"
)

const maxDashboardActivity = 10

type WebHandler struct {
	db       *gorm.DB
	activity *services.ActivityService
}

func NewWebHandler(db *gorm.DB) *WebHandler {
	return &WebHandler{
		db:       db,
		activity: services.NewActivityService(db),
	}
}

// Home renders the marketing landing page, or the dashboard for signed-in users
func (h *WebHandler) Home(c *gin.Context) {
	if user, exists := middleware.GetCurrentUser(c); exists && user.ID > 0 {
		c.Redirect(http.StatusTemporaryRedirect, "/dashboard")
		return
	}

	h.render(c, templates.Landing())
}

// Features renders the feature overview page
func (h *WebHandler) Features(c *gin.Context) {
	h.render(c, templates.Features())
}

// Pricing renders the pricing page
func (h *WebHandler) Pricing(c *gin.Context) {
	h.render(c, templates.Pricing())
}

// About renders the about page
func (h *WebHandler) About(c *gin.Context) {
	h.render(c, templates.About())
}

// Login renders the sign-in page
func (h *WebHandler) Login(c *gin.Context) {
	h.render(c, templates.Login())
}

// Dashboard renders the generator workspace for signed-in users
func (h *WebHandler) Dashboard(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists || user.ID == 0 {
		c.Redirect(http.StatusTemporaryRedirect, "/login")
		return
	}

	activity, err := h.activity.Recent(c.Request.Context(), user.ID, maxDashboardActivity)
	if err != nil {
		activity = []models.ActivityLog{}
	}

	h.render(c, templates.Dashboard(user, activity))
}

func (h *WebHandler) render(c *gin.Context, component templ.Component) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render template"})
	}
}
