package domain

import "letterbox/errors"

// Role selects which side of a participant's correspondence an
// operation applies to.
type Role string

const (
	RoleRecipient Role = "recipient"
	RoleSender    Role = "sender"
)

func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleRecipient:
		return RoleRecipient, nil
	case RoleSender:
		return RoleSender, nil
	default:
		return "", errors.ErrUnknownRole
	}
}
