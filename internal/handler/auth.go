package handler

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lingua/api/internal/auth"
	"github.com/lingua/api/internal/logging"
	"golang.org/x/oauth2"
)

const stateCookie = "oauth_state"

// UserInfoFunc resolves the Google account behind an exchanged token.
type UserInfoFunc func(ctx context.Context, cfg *oauth2.Config, token *oauth2.Token) (*auth.GoogleUserInfo, error)

// TokenExchanger is the part of *oauth2.Config the callback needs.
type TokenExchanger interface {
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
}

type AuthHandler struct {
	jwtSecret    string
	googleConfig *oauth2.Config
	exchanger    TokenExchanger
	userInfo     UserInfoFunc
	frontendURL  string
	log          logging.Logger
}

func NewAuthHandler(jwtSecret string, googleConfig *oauth2.Config, log logging.Logger) *AuthHandler {
	return &AuthHandler{
		jwtSecret:    jwtSecret,
		googleConfig: googleConfig,
		exchanger:    googleConfig,
		userInfo:     auth.GetGoogleUserInfo,
		log:          log,
	}
}

// WithProvider replaces the code exchange and user info lookup.
func (h *AuthHandler) WithProvider(exchanger TokenExchanger, userInfo UserInfoFunc) *AuthHandler {
	h.exchanger = exchanger
	h.userInfo = userInfo
	return h
}

type TokenResponse struct {
	Status      string               `json:"status"`
	AccessToken string               `json:"accessToken"`
	ExpiresIn   int                  `json:"expiresIn"`
	User        *auth.GoogleUserInfo `json:"user"`
}

func (h *AuthHandler) Register(r gin.IRouter) {
	r.GET("/auth/google", h.GoogleAuth)
	r.GET("/oauth2callback", h.GoogleCallback)
}

// WithFrontendRedirect makes a successful callback redirect to frontendURL with
// the token in the query string instead of answering with JSON.
func (h *AuthHandler) WithFrontendRedirect(frontendURL string) *AuthHandler {
	h.frontendURL = frontendURL
	return h
}

// GoogleAuth redirects to the Google consent screen.
func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	state := generateState()
	c.SetCookie(stateCookie, state, 600, "/", "", false, true)

	consentURL := h.exchanger.AuthCodeURL(state, oauth2.AccessTypeOffline)
	c.Redirect(http.StatusTemporaryRedirect, consentURL)
}

// GoogleCallback exchanges the authorization code and issues a session token.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	ctx := c.Request.Context()

	state := c.Query("state")
	if saved, err := c.Cookie(stateCookie); err == nil && saved != state {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid state"})
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	token, err := h.exchanger.Exchange(ctx, code)
	if err != nil {
		h.log.Error(ctx, "code exchange failed", "error", err)
		c.JSON(http.StatusInternalServerError, "Authentication failed.")
		return
	}

	info, err := h.userInfo(ctx, h.googleConfig, token)
	if err != nil {
		h.log.Error(ctx, "user info lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, "Authentication failed.")
		return
	}

	principal := auth.Principal{UserID: info.ID, Email: info.Email, Name: info.Name}
	accessToken, err := auth.GenerateAccessToken(principal, h.jwtSecret, auth.AccessTokenExpiry)
	if err != nil {
		h.log.Error(ctx, "token signing failed", "error", err)
		c.JSON(http.StatusInternalServerError, "Authentication failed.")
		return
	}

	h.log.Info(ctx, "user signed in", "userId", info.ID)
	expiresIn := int(auth.AccessTokenExpiry.Seconds())

	if h.frontendURL != "" {
		q := url.Values{}
		q.Set("accessToken", accessToken)
		q.Set("expiresIn", strconv.Itoa(expiresIn))
		c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"?"+q.Encode())
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		Status:      "Authorization successful!",
		AccessToken: accessToken,
		ExpiresIn:   expiresIn,
		User:        info,
	})
}

func generateState() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}
