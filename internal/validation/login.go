package validation

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateLogin aplica las reglas de inicio de sesión.
func ValidateLogin(p LoginPayload) Result {
	res := newResult()

	if isBlank(p.Email) {
		res.Errors["email"] = "Email field is required"
	}
	if isBlank(p.Password) {
		res.Errors["password"] = "Password field is required"
	}

	return res
}
