package validation

type ExperiencePayload struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// ValidateExperience aplica las reglas de entradas de experiencia.
func ValidateExperience(p ExperiencePayload) Result {
	res := newResult()

	if isBlank(p.Title) {
		res.Errors["title"] = "Title field is required"
	}
	if isBlank(p.Company) {
		res.Errors["company"] = "Company field is required"
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
