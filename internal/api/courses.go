// internal/api/courses.go
package api

import (
	"context"
	"net/http"
	"strconv"

	"knowledgepulse-web/internal/domain/course"
)

// ListCourses returns the full course catalog (public endpoint).
func (c *Client) ListCourses(ctx context.Context) ([]course.Course, error) {
	var courses []course.Course
	if err := c.do(ctx, http.MethodGet, "/courses", nil, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCourse returns a single course by ID (public endpoint).
func (c *Client) GetCourse(ctx context.Context, id int64) (*course.Course, error) {
	var out course.Course
	if err := c.do(ctx, http.MethodGet, "/courses/"+strconv.FormatInt(id, 10), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCourse adds a course; the backend enforces the admin role.
func (c *Client) CreateCourse(ctx context.Context, form course.Form) (*course.Course, error) {
	var out course.Course
	if err := c.do(ctx, http.MethodPost, "/courses", nil, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCourse replaces a course's fields; the backend enforces the admin
// role.
func (c *Client) UpdateCourse(ctx context.Context, id int64, form course.Form) (*course.Course, error) {
	var out course.Course
	if err := c.do(ctx, http.MethodPut, "/courses/"+strconv.FormatInt(id, 10), nil, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCourse removes a course; the backend enforces the admin role.
func (c *Client) DeleteCourse(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/courses/"+strconv.FormatInt(id, 10), nil, nil, nil)
}
