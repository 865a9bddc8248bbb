// internal/domain/course/dto.go
package course

// Form is the admin create/update payload.
type Form struct {
	CourseCode  string `form:"courseCode" json:"courseCode" binding:"required"`
	CourseName  string `form:"courseName" json:"courseName" binding:"required"`
	Description string `form:"description" json:"description"`
	Credits     int    `form:"credits" json:"credits"`
	Instructor  string `form:"instructor" json:"instructor"`
}
