// internal/app/router.go
package app

import (
	adminHandler "knowledgepulse-web/internal/handlers/admin"
	authHandler "knowledgepulse-web/internal/handlers/auth"
	courseHandler "knowledgepulse-web/internal/handlers/courses"
	pagesHandler "knowledgepulse-web/internal/handlers/pages"
	studentHandler "knowledgepulse-web/internal/handlers/student"
	"knowledgepulse-web/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	AuthHandler    *authHandler.AuthHandler
	CourseHandler  *courseHandler.CourseHandler
	StudentHandler *studentHandler.StudentHandler
	AdminHandler   *adminHandler.AdminHandler
	PagesHandler   *pagesHandler.PagesHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	// ==================== Health Check ====================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Public Pages ====================
	r.GET("/", h.PagesHandler.Home)
	r.GET("/about", h.PagesHandler.About)
	r.GET("/faq", h.PagesHandler.FAQ)
	r.GET("/courses", h.CourseHandler.List)
	r.GET("/course/:id", h.CourseHandler.Detail)

	// ==================== Auth Routes ====================
	r.GET("/signin", h.AuthHandler.ShowSignIn)
	r.POST("/signin", h.AuthHandler.SignIn)
	r.GET("/register", h.AuthHandler.ShowRegister)
	r.POST("/register", h.AuthHandler.Register)
	r.POST("/logout", h.AuthHandler.Logout)
	r.GET("/forgot-password", h.AuthHandler.ShowForgotPassword)
	r.POST("/forgot-password", h.AuthHandler.ForgotPassword)
	r.GET("/reset-password", h.AuthHandler.ShowResetPassword)
	r.POST("/reset-password", h.AuthHandler.ResetPassword)

	// ==================== Student Routes ====================
	student := r.Group("/")
	student.Use(h.AuthMiddleware.RequireAuth())
	{
		student.GET("/my-courses", h.StudentHandler.MyCourses)
		student.POST("/enroll", h.StudentHandler.Enroll)
		student.POST("/unenroll", h.StudentHandler.Unenroll)
		student.GET("/profile", h.StudentHandler.Profile)
		student.POST("/profile", h.StudentHandler.UpdateProfile)
		student.POST("/profile/password", h.AuthHandler.ChangePassword)
	}

	// ==================== Admin Routes ====================
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware.AdminOnly()...)
	{
		admin.GET("/dashboard", h.AdminHandler.Dashboard)
		admin.POST("/courses", h.AdminHandler.CreateCourse)
		admin.POST("/courses/:id", h.AdminHandler.UpdateCourse)
		admin.POST("/courses/:id/delete", h.AdminHandler.DeleteCourse)
		admin.POST("/students/:id/delete", h.AdminHandler.DeleteStudent)
	}
}
