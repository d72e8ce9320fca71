package errors

import (
	"bytes"
	stderrors "errors"
	"text/template"
)

// userMessages maps codes to player-facing templates. Metadata keys are
// available as template fields.
var userMessages = map[Code]string{
	CodeInsufficientFunds: "Error: Not enough money!",
	CodeInvalidAmount:     "Error: Invalid amount.",
	CodeToolMaxed:         "Your pickaxe is already at its best.",
	CodeConsumablesFull:   "You have no free space!",
	CodeUsernameInvalid:   "Username must be alphanumeric.",
	CodeUsernameTaken:     "Username {{.Username}} is already taken.",
	CodeStorage:           "Could not save your progress.",
}

// UserMessage renders the player-facing text for err.
// Errors without a domain code fall back to err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var domainErr *Error
	if !stderrors.As(err, &domainErr) {
		return err.Error()
	}
	tmpl, ok := userMessages[domainErr.Code]
	if !ok {
		return domainErr.Error()
	}

	metadata := domainErr.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}

	t, err := template.New("msg").Option("missingkey=zero").Parse(tmpl)
	if err != nil {
		return tmpl
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}
