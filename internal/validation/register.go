package validation

type RegisterPayload struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

// ValidateRegister aplica las reglas de registro. Las reglas no cortan en
// el primer fallo: para un mismo campo gana el último mensaje calculado.
func ValidateRegister(p RegisterPayload) Result {
	res := newResult()

	if !lengthBetween(p.Name, 2, 30) {
		res.Errors["name"] = "Name must be between 2 and 30 characters"
	}
	if isBlank(p.Name) {
		res.Errors["name"] = "Name field is required"
	}

	if !isEmail(p.Email) {
		res.Errors["email"] = "Email is invalid"
	}
	if isBlank(p.Email) {
		res.Errors["email"] = "Email field is required"
	}

	if !lengthBetween(p.Password, 6, 30) {
		res.Errors["password"] = "Password must be between 6 and 30 characters"
	}
	if isBlank(p.Password) {
		res.Errors["password"] = "Password field is required"
	}

	if !lengthBetween(p.Password2, 6, 30) {
		res.Errors["password2"] = "Confirm password must be between 6 and 30 characters"
	}
	if isBlank(p.Password2) {
		res.Errors["password2"] = "Confirm password field is required"
	}
	if normalize(p.Password) != normalize(p.Password2) {
		res.Errors["password2"] = "Passwords must match"
	}

	return res
}
