// internal/handlers/student/student_handler.go
package student

import (
	"net/http"
	"strconv"

	"knowledgepulse-web/internal/api"
	"knowledgepulse-web/internal/domain/student"
	"knowledgepulse-web/internal/pkg/response"
	"knowledgepulse-web/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StudentHandler struct {
	client   *api.Client
	sessions *session.Service
	logger   *zap.Logger
}

func NewStudentHandler(client *api.Client, sessions *session.Service, logger *zap.Logger) *StudentHandler {
	return &StudentHandler{
		client:   client,
		sessions: sessions,
		logger:   logger,
	}
}

// MyCourses renders the signed-in student's enrollments
func (h *StudentHandler) MyCourses(c *gin.Context) {
	list, err := h.client.MyCourses(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load enrollments", zap.Error(err))
		response.HandleError(c, err)
		return
	}
	response.HTML(c, http.StatusOK, "my_courses.tmpl", gin.H{
		"Courses": list,
	})
}

// Enroll adds the signed-in student to a course and returns to their list
func (h *StudentHandler) Enroll(c *gin.Context) {
	id, err := strconv.ParseInt(c.PostForm("courseId"), 10, 64)
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "invalid course")
		return
	}

	if err := h.client.Enroll(c.Request.Context(), id); err != nil {
		h.logger.Warn("enrollment failed",
			zap.Int64("course_id", id),
			zap.Error(err),
		)
		response.HandleError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/my-courses")
}

// Unenroll removes the signed-in student from a course
func (h *StudentHandler) Unenroll(c *gin.Context) {
	id, err := strconv.ParseInt(c.PostForm("courseId"), 10, 64)
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "invalid course")
		return
	}

	if err := h.client.Unenroll(c.Request.Context(), id); err != nil {
		h.logger.Warn("unenrollment failed",
			zap.Int64("course_id", id),
			zap.Error(err),
		)
		response.HandleError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/my-courses")
}

// Profile renders the signed-in student's profile
func (h *StudentHandler) Profile(c *gin.Context) {
	rec, err := h.client.MyProfile(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load profile", zap.Error(err))
		response.HandleError(c, err)
		return
	}
	response.HTML(c, http.StatusOK, "profile.tmpl", gin.H{
		"Student": rec,
	})
}

// UpdateProfile saves profile edits and refreshes the cached identity
func (h *StudentHandler) UpdateProfile(c *gin.Context) {
	var form student.Profile
	if err := c.ShouldBind(&form); err != nil {
		response.HTML(c, http.StatusBadRequest, "profile.tmpl", gin.H{
			"Error": "invalid profile details",
		})
		return
	}

	if _, err := h.sessions.UpdateProfile(c.Request.Context(), form); err != nil {
		h.logger.Error("profile update failed", zap.Error(err))
		response.HandleError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile")
}
