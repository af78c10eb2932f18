package model

import (
	"fmt"
	"strings"
)

// Role describes how we know the person.
type Role string

const (
	Friend   Role = "FRIEND"
	Familiar Role = "FAMILIAR"
	Coworker Role = "COWORKER"
	Family   Role = "FAMILY"
)

// allRoles lists the valid roles in the order they are presented to users.
var allRoles = []Role{Friend, Familiar, Coworker, Family}

// Roles returns all valid roles.
func Roles() []Role {
	roles := make([]Role, len(allRoles))
	copy(roles, allRoles)
	return roles
}

// RoleNames returns the valid roles separated by blanks, e.g. for error messages.
func RoleNames() string {
	names := make([]string, 0, len(allRoles))
	for _, r := range allRoles {
		names = append(names, string(r))
	}
	return strings.Join(names, " ")
}

// ParseRole converts the textual form of a role. The match is exact and case sensitive.
func ParseRole(text string) (Role, error) {
	for _, r := range allRoles {
		if string(r) == text {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", text)
}

func (r Role) String() string {
	return string(r)
}
