package validation

import "testing"

func validRegister() RegisterPayload {
	return RegisterPayload{
		Name:      "Al Dev",
		Email:     "al@x.com",
		Password:  "secret1",
		Password2: "secret1",
	}
}

func TestValidateRegister_Valid(t *testing.T) {
	res := ValidateRegister(validRegister())
	if !res.IsValid() {
		t.Fatalf("expected valid, got errors: %v", res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("IsValid true but errors present: %v", res.Errors)
	}
}

func TestValidateRegister_IsValidDerivedFromErrors(t *testing.T) {
	cases := []RegisterPayload{
		validRegister(),
		{},
		{Name: "A"},
		{Name: "Al Dev", Email: "not-an-email", Password: "secret1", Password2: "secret1"},
		{Name: "Al Dev", Email: "al@x.com", Password: "secret1", Password2: "other99"},
	}
	for _, p := range cases {
		res := ValidateRegister(p)
		if res.IsValid() != (len(res.Errors) == 0) {
			t.Fatalf("IsValid inconsistent with errors for %+v: %v", p, res.Errors)
		}
	}
}

func TestValidateRegister_PasswordMismatch(t *testing.T) {
	p := validRegister()
	p.Password2 = "different9"
	res := ValidateRegister(p)
	if res.IsValid() {
		t.Fatal("expected invalid")
	}
	if res.Errors["password2"] != "Passwords must match" {
		t.Fatalf("expected mismatch error on password2, got %q", res.Errors["password2"])
	}
}

func TestValidateRegister_WhitespaceOnlyIsAbsent(t *testing.T) {
	p := validRegister()
	p.Name = "   \t  "
	res := ValidateRegister(p)
	if res.IsValid() {
		t.Fatal("expected invalid")
	}
	if res.Errors["name"] != "Name field is required" {
		t.Fatalf("expected required error on name, got %q", res.Errors["name"])
	}
}

func TestValidateRegister_NameLength(t *testing.T) {
	p := validRegister()
	p.Name = "A"
	res := ValidateRegister(p)
	if res.Errors["name"] != "Name must be between 2 and 30 characters" {
		t.Fatalf("expected length error on name, got %q", res.Errors["name"])
	}

	p.Name = "AB"
	if res := ValidateRegister(p); !res.IsValid() {
		t.Fatalf("2-char name should pass (inclusive bound): %v", res.Errors)
	}
}

func TestValidateRegister_BadEmail(t *testing.T) {
	p := validRegister()
	p.Email = "not an email"
	res := ValidateRegister(p)
	if res.Errors["email"] != "Email is invalid" {
		t.Fatalf("expected email error, got %q", res.Errors["email"])
	}
}

func TestValidateRegister_RequiredOverridesLength(t *testing.T) {
	res := ValidateRegister(RegisterPayload{})
	// Ambas reglas fallan para cada campo; queda el mensaje calculado al final.
	if res.Errors["password"] != "Password field is required" {
		t.Fatalf("expected required message to win, got %q", res.Errors["password"])
	}
	if len(res.Errors) != 4 {
		t.Fatalf("expected all four fields flagged, got %v", res.Errors)
	}
}

func TestValidateLogin(t *testing.T) {
	res := ValidateLogin(LoginPayload{})
	if res.IsValid() {
		t.Fatal("expected invalid")
	}
	if res.Errors["email"] == "" || res.Errors["password"] == "" {
		t.Fatalf("expected errors on both fields, got %v", res.Errors)
	}

	res = ValidateLogin(LoginPayload{Email: "al@x.com", Password: "secret1"})
	if !res.IsValid() {
		t.Fatalf("expected valid, got %v", res.Errors)
	}
}

func TestValidatePost_Length(t *testing.T) {
	res := ValidatePost(PostPayload{Text: "too short"})
	if res.Errors["text"] != "Post must be between 10 and 300 characters" {
		t.Fatalf("expected length error, got %q", res.Errors["text"])
	}

	res = ValidatePost(PostPayload{Text: "exactly ten"})
	if !res.IsValid() {
		t.Fatalf("expected valid, got %v", res.Errors)
	}

	res = ValidatePost(PostPayload{Text: "   "})
	if res.Errors["text"] != "Text field is required" {
		t.Fatalf("expected required error, got %q", res.Errors["text"])
	}
}

func TestValidateProfile(t *testing.T) {
	res := ValidateProfile(ProfilePayload{})
	for _, field := range []string{"handle", "status", "skills"} {
		if res.Errors[field] == "" {
			t.Fatalf("expected error on %s, got %v", field, res.Errors)
		}
	}

	ok := ProfilePayload{Handle: "aldev", Status: "Developer", Skills: "go,rust"}
	if res := ValidateProfile(ok); !res.IsValid() {
		t.Fatalf("expected valid, got %v", res.Errors)
	}
}

func TestValidateProfile_OptionalURLs(t *testing.T) {
	p := ProfilePayload{
		Handle:  "aldev",
		Status:  "Developer",
		Skills:  "go",
		Website: "not a url",
		Twitter: "https://twitter.com/aldev",
	}
	res := ValidateProfile(p)
	if res.Errors["website"] != "Not a valid URL" {
		t.Fatalf("expected URL error on website, got %v", res.Errors)
	}
	if _, ok := res.Errors["twitter"]; ok {
		t.Fatalf("valid URL flagged: %v", res.Errors)
	}

	// Ausente no es error salvo que el campo sea requerido.
	p.Website = ""
	if res := ValidateProfile(p); !res.IsValid() {
		t.Fatalf("absent optional URL should pass: %v", res.Errors)
	}
}

func TestValidateExperience(t *testing.T) {
	res := ValidateExperience(ExperiencePayload{})
	for _, field := range []string{"title", "company", "from"} {
		if res.Errors[field] == "" {
			t.Fatalf("expected error on %s, got %v", field, res.Errors)
		}
	}

	ok := ExperiencePayload{Title: "Engineer", Company: "Acme", From: "2019-06-01"}
	if res := ValidateExperience(ok); !res.IsValid() {
		t.Fatalf("expected valid, got %v", res.Errors)
	}

	bad := ExperiencePayload{Title: "Engineer", Company: "Acme", From: "junio 2019"}
	if res := ValidateExperience(bad); res.Errors["from"] != "From is not a valid date" {
		t.Fatalf("expected date error, got %v", res.Errors)
	}
}

func TestValidateEducation(t *testing.T) {
	res := ValidateEducation(EducationPayload{})
	for _, field := range []string{"school", "degree", "fieldofstudy", "from"} {
		if res.Errors[field] == "" {
			t.Fatalf("expected error on %s, got %v", field, res.Errors)
		}
	}

	ok := EducationPayload{School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: "2015-09-01"}
	if res := ValidateEducation(ok); !res.IsValid() {
		t.Fatalf("expected valid, got %v", res.Errors)
	}
}

func TestParseDate(t *testing.T) {
	if _, ok := ParseDate("2019-06-01"); !ok {
		t.Fatal("expected date-only layout to parse")
	}
	if _, ok := ParseDate("2019-06-01T00:00:00Z"); !ok {
		t.Fatal("expected RFC3339 layout to parse")
	}
	if _, ok := ParseDate("01/06/2019"); ok {
		t.Fatal("expected unknown layout to fail")
	}
}
