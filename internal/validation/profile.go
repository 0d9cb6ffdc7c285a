package validation

type ProfilePayload struct {
	Handle         string `json:"handle"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Status         string `json:"status"`
	Skills         string `json:"skills"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"github_username"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// ValidateProfile aplica las reglas del perfil. Los campos de URL son
// opcionales: sólo se validan cuando vienen presentes.
func ValidateProfile(p ProfilePayload) Result {
	res := newResult()

	if !lengthBetween(p.Handle, 2, 40) {
		res.Errors["handle"] = "Handle needs to be between 2 and 40 characters"
	}
	if isBlank(p.Handle) {
		res.Errors["handle"] = "Profile handle is required"
	}

	if isBlank(p.Status) {
		res.Errors["status"] = "Status field is required"
	}
	if isBlank(p.Skills) {
		res.Errors["skills"] = "Skills field is required"
	}

	urlFields := map[string]string{
		"website":   p.Website,
		"youtube":   p.Youtube,
		"twitter":   p.Twitter,
		"facebook":  p.Facebook,
		"linkedin":  p.Linkedin,
		"instagram": p.Instagram,
	}
	for field, value := range urlFields {
		if !isBlank(value) && !isURL(value) {
			res.Errors[field] = "Not a valid URL"
		}
	}

	return res
}
