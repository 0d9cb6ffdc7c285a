package validation

type EducationPayload struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// ValidateEducation aplica las reglas de entradas de educación.
func ValidateEducation(p EducationPayload) Result {
	res := newResult()

	if isBlank(p.School) {
		res.Errors["school"] = "School field is required"
	}
	if isBlank(p.Degree) {
		res.Errors["degree"] = "Degree field is required"
	}
	if isBlank(p.FieldOfStudy) {
		res.Errors["fieldofstudy"] = "Field of study is required"
	}
	if !isBlank(p.From) && !isDate(p.From) {
		res.Errors["from"] = "From is not a valid date"
	}
	if isBlank(p.From) {
		res.Errors["from"] = "From field is required"
	}
	if !isBlank(p.To) && !isDate(p.To) {
		res.Errors["to"] = "To is not a valid date"
	}

	return res
}
