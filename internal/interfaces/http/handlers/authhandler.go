package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/appmaster-hq/appmaster/internal/application/user/usecases"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	"github.com/appmaster-hq/appmaster/internal/shared/config"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/utils"
)

type AuthHandler struct {
	signupUseCase         signupUseCase
	loginUseCase          loginUseCase
	logoutUseCase         logoutUseCase
	verifyEmailUseCase    verifyEmailUseCase
	getCurrentUserUseCase getCurrentUserUseCase
	logger                logger.Interface
	cookieConfig          config.CookieConfig
}

func NewAuthHandler(
	signupUC signupUseCase,
	loginUC loginUseCase,
	logoutUC logoutUseCase,
	verifyEmailUC verifyEmailUseCase,
	getCurrentUserUC getCurrentUserUseCase,
	logger logger.Interface,
	cookieConfig config.CookieConfig,
) *AuthHandler {
	return &AuthHandler{
		signupUseCase:         signupUC,
		loginUseCase:          loginUC,
		logoutUseCase:         logoutUC,
		verifyEmailUseCase:    verifyEmailUC,
		getCurrentUserUseCase: getCurrentUserUC,
		logger:                logger,
		cookieConfig:          cookieConfig,
	}
}

// SignupRequest carries the signup form. Field rules beyond presence are
// checked by the use case so the form gets its own messages back.
type SignupRequest struct {
	Name             string `json:"name" binding:"required,max=100"`
	Email            string `json:"email" binding:"required"`
	Password         string `json:"password" binding:"required"`
	ConfirmPassword  string `json:"confirm_password" binding:"required"`
	AccountType      string `json:"account_type"`
	OrganisationName string `json:"organisation_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "All fields are required")
		return
	}

	result, err := h.signupUseCase.Execute(c.Request.Context(), usecases.SignupCommand{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		ConfirmPassword:  req.ConfirmPassword,
		AccountType:      req.AccountType,
		OrganisationName: req.OrganisationName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.User, result.Message)
}

// Login handles POST /auth/login. The token is returned in the body and set
// as an HttpOnly cookie that lives as long as the session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	maxAge := int(time.Until(result.Login.ExpiresAt).Seconds())
	utils.SetAccessTokenCookie(c, h.cookieConfig, result.Login.AccessToken, maxAge)

	utils.SuccessResponse(c, http.StatusOK, result.Message, result.Login)
}

// Logout handles POST /auth/logout. The cookie is cleared even when the
// session was already gone.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := authorization.SessionFromGin(c)
	utils.ClearAccessTokenCookie(c, h.cookieConfig)

	if session == nil {
		utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
		return
	}

	if err := h.logoutUseCase.Execute(c.Request.Context(), session); err != nil {
		h.logger.Warnw("logout failed", "error", err, "session_id", session.SessionID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// VerifyEmail handles GET and POST /auth/verify-email. The emailed link
// carries the token as a query parameter.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if token := c.Query("token"); token != "" {
		req.Token = token
	} else if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid or expired confirmation link")
		return
	}

	result, err := h.verifyEmailUseCase.Execute(c.Request.Context(), req.Token)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, nil)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	result, err := h.getCurrentUserUseCase.Execute(c.Request.Context(), authorization.SessionFromGin(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
