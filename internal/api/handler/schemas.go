package handler

// messageResponse is the envelope for auth failures and plain notices.
type messageResponse struct {
	Message string `json:"message"`
}

// tokenResponse carries a freshly signed credential.
type tokenResponse struct {
	Token string `json:"token"`
}

// registerUserRequest is the self-registration body. Any additional
// fields the client sends are ignored; only name and email persist.
type registerUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// adminCheckResponse answers GET /user/admin/:email.
type adminCheckResponse struct {
	Admin bool `json:"admin"`
}

// memberCheckResponse answers GET /user/member/:email.
type memberCheckResponse struct {
	Member bool `json:"member"`
}

// updateUserRequest is the PATCH /updateUser/:id body.
type updateUserRequest struct {
	Role string `json:"role" validate:"required,oneof=admin member none"`
}

// updateAgreementRequest is the PATCH /updateAgreement/:id body:
// the admin decision plus the role granted on acceptance.
type updateAgreementRequest struct {
	Status   string `json:"status"   validate:"required,oneof=checked rejected"`
	UserRole string `json:"userRole" validate:"required,oneof=admin member none"`
}
