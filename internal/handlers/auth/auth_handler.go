// internal/handlers/auth/auth_handler.go
package auth

import (
	"errors"
	"net/http"

	"knowledgepulse-web/internal/domain/auth"
	"knowledgepulse-web/internal/middleware"
	xerrors "knowledgepulse-web/internal/pkg/errors"
	"knowledgepulse-web/internal/pkg/response"
	"knowledgepulse-web/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	sessions *session.Service
	logger   *zap.Logger
}

func NewAuthHandler(sessions *session.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// ========== Sign in ==========

// ShowSignIn renders the sign-in form; signed-in visitors go home instead
func (h *AuthHandler) ShowSignIn(c *gin.Context) {
	if middleware.IsSignedIn(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	response.HTML(c, http.StatusOK, "signin.tmpl", gin.H{})
}

// SignIn handles the sign-in submission. Rejected credentials re-render the
// form with an inline message rather than redirecting, so the visitor keeps
// the email they typed.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var creds auth.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		response.HTML(c, http.StatusBadRequest, "signin.tmpl", gin.H{
			"Error": "email and password are required",
			"Email": creds.Email,
		})
		return
	}

	if err := h.sessions.Login(c.Request.Context(), creds); err != nil {
		h.logger.Warn("sign-in failed",
			zap.String("email", creds.Email),
			zap.Error(err),
		)
		msg := response.Message(err)
		if errors.Is(err, xerrors.ErrUnauthorized) {
			msg = "invalid email or password"
		}
		response.HTML(c, http.StatusUnauthorized, "signin.tmpl", gin.H{
			"Error": msg,
			"Email": creds.Email,
		})
		return
	}

	if h.sessions.IsAdmin(c.Request.Context()) {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// ========== Registration ==========

// ShowRegister renders the registration form; signed-in visitors go home
// instead
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	if middleware.IsSignedIn(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	response.HTML(c, http.StatusOK, "register.tmpl", gin.H{})
}

// Register handles the registration submission. The account is created and
// signed in first; the student profile is enriched afterwards, and a failed
// enrichment still counts as a successful registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var form auth.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		response.HTML(c, http.StatusBadRequest, "register.tmpl", gin.H{
			"Error": "please fill in all required fields",
			"Form":  form,
		})
		return
	}

	res, err := h.sessions.Register(c.Request.Context(), form)
	if err != nil {
		h.logger.Error("registration failed",
			zap.String("email", form.Email),
			zap.Error(err),
		)
		response.HTML(c, http.StatusBadRequest, "register.tmpl", gin.H{
			"Error": response.Message(err),
			"Form":  form,
		})
		return
	}

	if !res.ProfileEnriched {
		h.logger.Warn("registered without student profile",
			zap.String("email", form.Email),
		)
	}
	c.Redirect(http.StatusFound, "/")
}

// ========== Sign out ==========

// Logout clears the session and lands on home. Safe to call when already
// signed out.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
	}
	c.Redirect(http.StatusFound, "/")
}

// ========== Password recovery ==========

// ShowForgotPassword renders the reset request form (public endpoint)
func (h *AuthHandler) ShowForgotPassword(c *gin.Context) {
	response.HTML(c, http.StatusOK, "forgot_password.tmpl", gin.H{})
}

// ForgotPassword relays the reset request. The confirmation message does not
// reveal whether the address has an account.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	email := c.PostForm("email")
	if email == "" {
		response.HTML(c, http.StatusBadRequest, "forgot_password.tmpl", gin.H{
			"Error": "email is required",
		})
		return
	}

	if err := h.sessions.ForgotPassword(c.Request.Context(), email); err != nil {
		h.logger.Error("forgot-password request failed",
			zap.String("email", email),
			zap.Error(err),
		)
	}
	response.HTML(c, http.StatusOK, "forgot_password.tmpl", gin.H{
		"Notice": "If that email has an account, a reset link is on its way.",
	})
}

// ShowResetPassword renders the new-password form for a reset link
func (h *AuthHandler) ShowResetPassword(c *gin.Context) {
	response.HTML(c, http.StatusOK, "reset_password.tmpl", gin.H{
		"Token": c.Query("token"),
	})
}

// ResetPassword completes a password reset using the emailed token
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req auth.ResetPasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		response.HTML(c, http.StatusBadRequest, "reset_password.tmpl", gin.H{
			"Error": "a new password is required",
			"Token": req.Token,
		})
		return
	}

	if err := h.sessions.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		h.logger.Warn("password reset failed", zap.Error(err))
		response.HTML(c, http.StatusBadRequest, "reset_password.tmpl", gin.H{
			"Error": response.Message(err),
			"Token": req.Token,
		})
		return
	}
	c.Redirect(http.StatusFound, "/signin")
}

// ChangePassword rotates the signed-in user's password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req auth.ChangePasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		response.HTML(c, http.StatusBadRequest, "profile.tmpl", gin.H{
			"PasswordError": "both passwords are required",
		})
		return
	}

	if err := h.sessions.ChangePassword(c.Request.Context(), req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, xerrors.ErrUnauthorized) {
			response.HandleError(c, err)
			return
		}
		h.logger.Warn("password change failed", zap.Error(err))
		response.HTML(c, http.StatusBadRequest, "profile.tmpl", gin.H{
			"PasswordError": response.Message(err),
		})
		return
	}
	c.Redirect(http.StatusFound, "/profile")
}
