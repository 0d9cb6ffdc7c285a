package validation

type PostPayload struct {
	Text string `json:"text"`
}

// ValidatePost aplica las reglas de publicaciones y comentarios.
func ValidatePost(p PostPayload) Result {
	res := newResult()

	if !lengthBetween(p.Text, 10, 300) {
		res.Errors["text"] = "Post must be between 10 and 300 characters"
	}
	if isBlank(p.Text) {
		res.Errors["text"] = "Text field is required"
	}

	return res
}
