// internal/api/students.go
package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"knowledgepulse-web/internal/domain/course"
	"knowledgepulse-web/internal/domain/student"
)

type enrollRequest struct {
	CourseID int64 `json:"courseId"`
}

// CreateStudent creates the student profile record right after registration,
// correlated to the account by its email. It is sent with the explicitly
// provided context token and without the 401 purge hook: the session being
// built must survive a failed enrichment call.
func (c *Client) CreateStudent(ctx context.Context, username string, profile student.Profile) (*student.Student, error) {
	q := url.Values{"username": {username}}
	var out student.Student
	if err := c.send(ctx, http.MethodPost, "/students", q, profile, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyProfile returns the signed-in student's profile.
func (c *Client) MyProfile(ctx context.Context) (*student.Student, error) {
	var out student.Student
	if err := c.do(ctx, http.MethodGet, "/students/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMyProfile updates the signed-in student's profile.
func (c *Client) UpdateMyProfile(ctx context.Context, profile student.Profile) (*student.Student, error) {
	var out student.Student
	if err := c.do(ctx, http.MethodPut, "/students/me", nil, profile, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyCourses returns the courses the signed-in student is enrolled in.
func (c *Client) MyCourses(ctx context.Context) ([]course.Course, error) {
	var courses []course.Course
	if err := c.do(ctx, http.MethodGet, "/students/me/courses", nil, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Enroll enrolls the signed-in student in a course.
func (c *Client) Enroll(ctx context.Context, courseID int64) error {
	return c.do(ctx, http.MethodPost, "/students/me/enroll", nil, enrollRequest{CourseID: courseID}, nil)
}

// Unenroll removes the signed-in student from a course.
func (c *Client) Unenroll(ctx context.Context, courseID int64) error {
	return c.do(ctx, http.MethodPost, "/students/me/unenroll", nil, enrollRequest{CourseID: courseID}, nil)
}

// ListStudents returns every student; the backend enforces the admin role.
func (c *Client) ListStudents(ctx context.Context) ([]student.Student, error) {
	var students []student.Student
	if err := c.do(ctx, http.MethodGet, "/students", nil, nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// DeleteStudent removes a student record; the backend enforces the admin
// role.
func (c *Client) DeleteStudent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/students/"+strconv.FormatInt(id, 10), nil, nil, nil)
}
