// Package entity contains the core business objects of the project.
package entity

// Mode tells which backing the cart currently has.
type Mode string

const (
	// ModeGuest indicates the cart lives only in local storage.
	ModeGuest Mode = "guest"
	// ModeAuthenticated indicates the cart is owned by the remote cart service.
	ModeAuthenticated Mode = "authenticated"
)

// String returns the string representation of the Mode.
func (m Mode) String() string {
	return string(m)
}

// IsValid checks if the Mode is a valid value.
func (m Mode) IsValid() bool {
	switch m {
	case ModeGuest, ModeAuthenticated:
		return true
	default:
		return false
	}
}
