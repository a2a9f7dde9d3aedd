package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/github"
	"github.com/markbates/goth/providers/google"
	"gorm.io/gorm"

	"github.com/tokentide/tokentide-api/internal/config"
	"github.com/tokentide/tokentide-api/internal/models"
)

type OAuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewOAuthHandler(db *gorm.DB, cfg *config.Config) *OAuthHandler {
	store := sessions.NewCookieStore([]byte(cfg.JWTSecret))
	store.Options.HttpOnly = true
	store.Options.Secure = cfg.Environment == "production"
	gothic.Store = store

	goth.UseProviders(
		google.New(
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.BaseURL+"/api/auth/google/callback",
			"email", "profile",
		),
		github.New(
			cfg.GitHubClientID,
			cfg.GitHubClientSecret,
			cfg.BaseURL+"/api/auth/github/callback",
			"user:email",
		),
	)

	return &OAuthHandler{db: db, cfg: cfg}
}

// BeginAuth redirects the user to the OAuth provider's login page
func (h *OAuthHandler) BeginAuth(c *gin.Context) {
	provider := c.Param("provider")

	if provider != providerGoogle && provider != providerGitHub {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported provider"})
		return
	}

	// gothic reads the provider from the query string
	q := c.Request.URL.Query()
	q.Add("provider", provider)
	c.Request.URL.RawQuery = q.Encode()

	gothic.BeginAuthHandler(c.Writer, c.Request)
}

// Callback handles the OAuth provider callback
func (h *OAuthHandler) Callback(c *gin.Context) {
	provider := c.Param("provider")

	if provider != providerGoogle && provider != providerGitHub {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported provider"})
		return
	}

	q := c.Request.URL.Query()
	q.Add("provider", provider)
	c.Request.URL.RawQuery = q.Encode()

	gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "OAuth authentication failed"})
		return
	}

	user, _, err := h.findOrCreateOAuthUser(&gothUser)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	authHandler := &AuthHandler{db: h.db, cfg: h.cfg}
	accessToken, err := authHandler.generateAccessToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate access token"})
		return
	}

	refreshToken, err := authHandler.generateRefreshToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate refresh token"})
		return
	}

	authHandler.setAuthCookies(c, accessToken, refreshToken)

	c.Redirect(http.StatusTemporaryRedirect, "/dashboard")
}

// findOrCreateOAuthUser finds an existing OAuth user or creates a new one
func (h *OAuthHandler) findOrCreateOAuthUser(gothUser *goth.User) (*models.User, bool, error) {
	var oauthProvider models.OAuthProvider

	err := h.db.Where("provider = ? AND provider_user_id = ?",
		gothUser.Provider, gothUser.UserID).
		Preload("User").
		First(&oauthProvider).Error

	if err == nil {
		return &oauthProvider.User, false, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	return h.createOAuthUser(gothUser)
}

// createOAuthUser creates a new user from OAuth data, linking to an existing
// email/password account when the address matches
func (h *OAuthHandler) createOAuthUser(gothUser *goth.User) (*models.User, bool, error) {
	tx := h.db.Begin()

	var existingUser models.User
	emailExists := tx.Where("email = ?", gothUser.Email).First(&existingUser).Error == nil

	if emailExists {
		oauthProvider := models.OAuthProvider{
			UserID:         existingUser.ID,
			Provider:       gothUser.Provider,
			ProviderUserID: gothUser.UserID,
		}

		if err := tx.Create(&oauthProvider).Error; err != nil {
			tx.Rollback()
			return nil, false, err
		}

		tx.Commit()
		return &existingUser, false, nil
	}

	user := models.User{
		Email:     gothUser.Email,
		Name:      gothUser.Name,
		AvatarURL: gothUser.AvatarURL,
		IsActive:  true,
		// No password for OAuth-only accounts
		Password: "",
	}

	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		return nil, false, err
	}

	oauthProvider := models.OAuthProvider{
		UserID:         user.ID,
		Provider:       gothUser.Provider,
		ProviderUserID: gothUser.UserID,
	}

	if err := tx.Create(&oauthProvider).Error; err != nil {
		tx.Rollback()
		return nil, false, err
	}

	tx.Commit()
	return &user, true, nil
}
