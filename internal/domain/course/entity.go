// internal/domain/course/entity.go
package course

// Course mirrors the backend's course resource.
type Course struct {
	ID          int64  `json:"id"`
	CourseCode  string `json:"courseCode"`
	CourseName  string `json:"courseName"`
	Description string `json:"description"`
	Credits     int    `json:"credits"`
	Instructor  string `json:"instructor"`
	// Serialized by the backend without a zone offset, so kept opaque.
	CreatedAt string `json:"createdAt,omitempty"`
}
