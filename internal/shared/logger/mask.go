package logger

// MaskUsername hides all but the first character of a login name so error
// chains can identify the account without quoting it verbatim.
// Example: admin -> a***
func MaskUsername(username string) string {
	if username == "" {
		return ""
	}
	return username[:1] + "***"
}
