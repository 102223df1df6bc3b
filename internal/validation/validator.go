package validation

import (
	"regexp"
	"strings"

	"interview-prep/internal/domain"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// passwordSymbols is the fixed punctuation set accepted for the symbol rule.
const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// NormalizeEmail lowercases and trims an email address before lookup or storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeName trims a display name and collapses interior whitespace.
func NormalizeName(name string) string {
	return spacePattern.ReplaceAllString(strings.TrimSpace(name), " ")
}

// ValidateRegister validates an already-normalized registration request.
func (v *Validator) ValidateRegister(email, password, name string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if email == "" {
		errs = append(errs, domain.NewMissingFieldError("email"))
	} else if !emailPattern.MatchString(email) {
		errs = append(errs, domain.NewFieldError("email", "invalid email format"))
	}

	errs = append(errs, v.validatePassword(password)...)
	errs = append(errs, v.validateName(name)...)

	return errs
}

// ValidateLogin validates a login request.
func (v *Validator) ValidateLogin(email, password string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if email == "" {
		errs = append(errs, domain.NewMissingFieldError("email"))
	}
	if password == "" {
		errs = append(errs, domain.NewMissingFieldError("password"))
	}
	return errs
}

// validatePassword enforces the composite strength policy: length >= 8 and
// at least one uppercase, lowercase, digit and symbol.
func (v *Validator) validatePassword(password string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if password == "" {
		return append(errs, domain.NewMissingFieldError("password"))
	}
	if len(password) < 8 {
		errs = append(errs, domain.NewFieldError("password", "must be at least 8 characters long"))
	}
	if !strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		errs = append(errs, domain.NewFieldError("password", "must contain at least one uppercase letter"))
	}
	if !strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz") {
		errs = append(errs, domain.NewFieldError("password", "must contain at least one lowercase letter"))
	}
	if !strings.ContainsAny(password, "0123456789") {
		errs = append(errs, domain.NewFieldError("password", "must contain at least one number"))
	}
	if !strings.ContainsAny(password, passwordSymbols) {
		errs = append(errs, domain.NewFieldError("password", "must contain at least one special character"))
	}

	return errs
}

func (v *Validator) validateName(name string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if name == "" {
		return append(errs, domain.NewMissingFieldError("name"))
	}
	if len(name) < 2 {
		errs = append(errs, domain.NewFieldError("name", "must be at least 2 characters long"))
	}
	if len(name) > 50 {
		errs = append(errs, domain.NewFieldError("name", "must not exceed 50 characters"))
	}
	if !namePattern.MatchString(name) {
		errs = append(errs, domain.NewFieldError("name", "can only contain letters and spaces"))
	}

	return errs
}

// ValidateStartSession validates the session start request.
func (v *Validator) ValidateStartSession(sessionType string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(sessionType) == "" {
		errs = append(errs, domain.NewMissingFieldError("type"))
	}
	return errs
}

// ValidateGenerateQuestion validates the question generation request.
func (v *Validator) ValidateGenerateQuestion(category, difficulty string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(category) == "" {
		errs = append(errs, domain.NewMissingFieldError("category"))
	}
	if strings.TrimSpace(difficulty) == "" {
		errs = append(errs, domain.NewMissingFieldError("difficulty"))
	}
	return errs
}

// ValidateSubmitAnswer validates the answer submission request.
func (v *Validator) ValidateSubmitAnswer(questionID, answer string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(questionID) == "" {
		errs = append(errs, domain.NewMissingFieldError("questionId"))
	}
	if strings.TrimSpace(answer) == "" {
		errs = append(errs, domain.NewMissingFieldError("answer"))
	}
	return errs
}

// ValidateResumeQuestion validates the resume question request.
func (v *Validator) ValidateResumeQuestion(resumeText string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(resumeText) == "" {
		errs = append(errs, domain.NewMissingFieldError("resumeText"))
	}
	return errs
}

// ValidateCompanyQuestion validates the company question request.
func (v *Validator) ValidateCompanyQuestion(company, role string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(company) == "" {
		errs = append(errs, domain.NewMissingFieldError("company"))
	}
	if strings.TrimSpace(role) == "" {
		errs = append(errs, domain.NewMissingFieldError("role"))
	}
	return errs
}

// ValidateSTARAnalysis validates the standalone STAR analysis request.
func (v *Validator) ValidateSTARAnalysis(answer string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(answer) == "" {
		errs = append(errs, domain.NewMissingFieldError("answer"))
	}
	return errs
}
