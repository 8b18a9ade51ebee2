// Package cache implements the keyed query store shared by the role-scoped use cases
// and the realtime bridge, together with the graph that decides which keys a change makes stale.
package cache

import (
	"github.com/google/uuid"
)

// Name identifies a family of cached queries.
type Name string

const (
	ServiceRequests    Name = "service-requests"
	Deliveries         Name = "deliveries"
	Orders             Name = "orders"
	Products           Name = "products"
	Profiles           Name = "profiles"
	TechnicianProfile  Name = "technician-profile"
	Technicians        Name = "technicians"
	WalletTransactions Name = "wallet-transactions"
	PendingPayments    Name = "pending-payments"
	Financials         Name = "financials"
	PlatformSettings   Name = "platform-settings"
	Categories         Name = "categories"
	Specialties        Name = "specialties"
	Services           Name = "services"
	SupportTickets     Name = "support-tickets"
	Devices            Name = "devices"
)

// AllNames lists every known key name.
var AllNames = []Name{
	ServiceRequests, Deliveries, Orders, Products, Profiles, TechnicianProfile, Technicians,
	WalletTransactions, PendingPayments, Financials, PlatformSettings, Categories, Specialties,
	Services, SupportTickets, Devices,
}

// Key addresses one cached query: a name plus the scope it was computed for.
type Key struct {
	Name  Name
	Scope string
}

// String renders the key as name/scope.
func (k Key) String() string {
	if k.Scope == "" {
		return string(k.Name)
	}

	return string(k.Name) + "/" + k.Scope
}

// Global is a key shared by every caller.
func Global(name Name) Key {
	return Key{Name: name}
}

// Scoped is a key computed for one identity, e.g. a role and profile ID.
func Scoped(name Name, parts ...string) Key {
	scope := ""
	for i, p := range parts {
		if i > 0 {
			scope += ":"
		}
		scope += p
	}

	return Key{Name: name, Scope: scope}
}

// ForProfile scopes a key to a role and profile.
func ForProfile(name Name, role string, profileID uuid.UUID) Key {
	return Scoped(name, role, profileID.String())
}
