// internal/handlers/admin/admin_handler.go
package admin

import (
	"net/http"
	"strconv"

	"knowledgepulse-web/internal/api"
	"knowledgepulse-web/internal/domain/course"
	xerrors "knowledgepulse-web/internal/pkg/errors"
	"knowledgepulse-web/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	client *api.Client
	logger *zap.Logger
}

func NewAdminHandler(client *api.Client, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		client: client,
		logger: logger,
	}
}

// Dashboard renders course and student management side by side
func (h *AdminHandler) Dashboard(c *gin.Context) {
	courses, err := h.client.ListCourses(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list courses", zap.Error(err))
		response.HandleError(c, err)
		return
	}

	students, err := h.client.ListStudents(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list students", zap.Error(err))
		response.HandleError(c, err)
		return
	}

	response.HTML(c, http.StatusOK, "admin_dashboard.tmpl", gin.H{
		"Courses":      courses,
		"Students":     students,
		"CourseCount":  len(courses),
		"StudentCount": len(students),
	})
}

// CreateCourse adds a course to the catalog
func (h *AdminHandler) CreateCourse(c *gin.Context) {
	var form course.Form
	if err := c.ShouldBind(&form); err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "course code and name are required")
		return
	}

	created, err := h.client.CreateCourse(c.Request.Context(), form)
	if err != nil {
		h.logger.Error("course creation failed",
			zap.String("course_code", form.CourseCode),
			zap.Error(err),
		)
		response.HandleError(c, err)
		return
	}

	h.logger.Info("course created",
		zap.Int64("course_id", created.ID),
		zap.String("course_code", created.CourseCode),
	)
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// UpdateCourse saves edits to an existing course
func (h *AdminHandler) UpdateCourse(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.HandleError(c, xerrors.ErrNotFound)
		return
	}

	var form course.Form
	if err := c.ShouldBind(&form); err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "course code and name are required")
		return
	}

	if _, err := h.client.UpdateCourse(c.Request.Context(), id, form); err != nil {
		h.logger.Error("course update failed",
			zap.Int64("course_id", id),
			zap.Error(err),
		)
		response.HandleError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// DeleteCourse removes a course from the catalog
func (h *AdminHandler) DeleteCourse(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.HandleError(c, xerrors.ErrNotFound)
		return
	}

	if err := h.client.DeleteCourse(c.Request.Context(), id); err != nil {
		h.logger.Error("course deletion failed",
			zap.Int64("course_id", id),
			zap.Error(err),
		)
		response.HandleError(c, err)
		return
	}

	h.logger.Info("course deleted", zap.Int64("course_id", id))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// DeleteStudent removes a student account
func (h *AdminHandler) DeleteStudent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.HandleError(c, xerrors.ErrNotFound)
		return
	}

	if err := h.client.DeleteStudent(c.Request.Context(), id); err != nil {
		h.logger.Error("student deletion failed",
			zap.Int64("student_id", id),
			zap.Error(err),
		)
		response.HandleError(c, err)
		return
	}

	h.logger.Info("student deleted", zap.Int64("student_id", id))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}
