package service

import "github.com/phrazzld/clients-api/internal/domain"

// requiredFields is the canonical order used when reporting missing fields.
var requiredFields = []string{"name", "email", "phone", "city"}

// checkRequiredFields verifies that name, email, phone and city are present.
// An empty string counts as absent. Every missing field is reported, not just the first.
// Length and format rules are left to domain.Client.Validate, which the store runs before writing.
func checkRequiredFields(in ClientInput) error {
	values := map[string]string{
		"name":  in.Name,
		"email": in.Email,
		"phone": in.Phone,
		"city":  in.City,
	}

	var missing []string
	for _, field := range requiredFields {
		if values[field] == "" {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

// emailChanged reports whether the incoming email differs from the current one
// after normalization on both sides.
func emailChanged(incoming, current string) bool {
	return domain.NormalizeEmail(incoming) != domain.NormalizeEmail(current)
}
