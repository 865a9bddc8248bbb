// internal/domain/student/entity.go
package student

import "knowledgepulse-web/internal/domain/course"

// Account is the backend user record attached to a student.
type Account struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Student mirrors the backend's student resource.
type Student struct {
	ID               int64           `json:"id"`
	FirstName        string          `json:"firstName"`
	LastName         string          `json:"lastName"`
	Phone            string          `json:"phone"`
	Address          string          `json:"address"`
	HighestEducation string          `json:"highestEducation"`
	CreatedAt        string          `json:"createdAt,omitempty"`
	Courses          []course.Course `json:"courses,omitempty"`
	User             *Account        `json:"user,omitempty"`
}
