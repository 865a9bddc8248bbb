// internal/domain/student/dto.go
package student

// Profile is the writable subset of a student record, sent on profile
// creation after registration and on profile updates.
type Profile struct {
	FirstName        string `form:"firstName" json:"firstName"`
	LastName         string `form:"lastName" json:"lastName"`
	Phone            string `form:"phone" json:"phone"`
	Address          string `form:"address" json:"address"`
	HighestEducation string `form:"highestEducation" json:"highestEducation"`
}
