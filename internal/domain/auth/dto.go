// internal/domain/auth/dto.go
package auth

// RoleStudent is the fixed role tag sent with every self-service
// registration; admin accounts are provisioned on the backend.
const RoleStudent = "STUDENT"

// Credentials is what the sign-in form submits.
type Credentials struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// RegisterForm carries the full registration form. Only email, password and
// the fixed role reach the account endpoint; the remaining fields enrich the
// student record in a second call.
type RegisterForm struct {
	Email            string `form:"email" binding:"required,email"`
	Password         string `form:"password" binding:"required,min=8"`
	FirstName        string `form:"firstName" binding:"required"`
	LastName         string `form:"lastName" binding:"required"`
	Phone            string `form:"phone"`
	Address          string `form:"address"`
	HighestEducation string `form:"highestEducation"`
}

// LoginRequest matches the backend's login endpoint; the username is the
// account email.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest matches the backend's registration endpoint.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// TokenResponse is the shape the backend returns from both register and
// login. Register only fills the token; login fills all fields.
type TokenResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
	Message  string `json:"message"`
}

// ForgotPasswordRequest asks the backend to mail a reset link.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest completes a password reset with the mailed token.
type ResetPasswordRequest struct {
	Token    string `form:"token" json:"token" binding:"required"`
	Password string `form:"password" json:"password" binding:"required,min=8"`
}

// ChangePasswordRequest rotates the password of the signed-in account.
type ChangePasswordRequest struct {
	OldPassword string `form:"oldPassword" json:"oldPassword" binding:"required"`
	NewPassword string `form:"newPassword" json:"newPassword" binding:"required,min=8"`
}
