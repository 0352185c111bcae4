package api

import "strings"

// missingFields returns the names of required fields that are absent or
// blank, preserving the given order for the error message.
func missingFields(fields map[string]string, required []string) []string {
	var missing []string
	for _, f := range required {
		if strings.TrimSpace(fields[f]) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// validEmail applies the deliberately permissive check the public forms
// have always used: exactly one @, non-empty local and domain parts, and a
// dot somewhere in the domain. Not RFC 5322 and not meant to be.
func validEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	local, domain := parts[0], parts[1]
	if local == "" || domain == "" {
		return false
	}
	return strings.Contains(domain, ".")
}
