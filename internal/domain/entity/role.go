// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a profile has in the marketplace.
type Role string

const (
	// RoleAdmin operates the platform.
	RoleAdmin Role = "admin"
	// RoleTechnician fulfils client service requests.
	RoleTechnician Role = "technician"
	// RoleClient creates service requests and orders.
	RoleClient Role = "client"
	// RoleVendor sells products fulfilled through deliveries.
	RoleVendor Role = "vendor"
	// RoleDelivery carries orders from vendors to clients.
	RoleDelivery Role = "delivery"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTechnician, RoleClient, RoleVendor, RoleDelivery:
		return true
	default:
		return false
	}
}

// SelfRegistrable reports whether a profile may sign up with this role.
func (r Role) SelfRegistrable() bool {
	return r.IsValid() && r != RoleAdmin
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
