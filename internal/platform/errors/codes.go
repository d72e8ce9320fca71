// Package errors provides structured domain errors with machine-readable codes.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Account errors
	CodeInsufficientFunds Code = "ACCOUNT_INSUFFICIENT_FUNDS"
	CodeInvalidAmount     Code = "ACCOUNT_INVALID_AMOUNT"

	// Player errors
	CodeToolMaxed Code = "PLAYER_TOOL_MAXED"

	// Inventory errors
	CodeConsumablesFull Code = "INVENTORY_CONSUMABLES_FULL"

	// Roster errors
	CodeUsernameInvalid Code = "ROSTER_USERNAME_INVALID"
	CodeUsernameTaken   Code = "ROSTER_USERNAME_TAKEN"

	// Storage errors
	CodeStorage Code = "STORAGE_FAILURE"
)

// Recoverable reports whether the code describes a validation failure the
// player can react to, as opposed to an infrastructure failure.
func (c Code) Recoverable() bool {
	switch c {
	case CodeInsufficientFunds,
		CodeInvalidAmount,
		CodeToolMaxed,
		CodeConsumablesFull,
		CodeUsernameInvalid,
		CodeUsernameTaken:
		return true
	default:
		return false
	}
}
