// File: role.go
// Role: Closed dispatch-role variant carried by every Vertex.
//
// A Role is one of None, Shop(company) or Client. Company is only meaningful
// for shops; an empty company marks an unaffiliated shop.

package core

import (
	"fmt"
	"strings"
)

// RoleKind enumerates the dispatch roles a vertex can play.
type RoleKind int

const (
	// RoleNone marks an ordinary intersection.
	RoleNone RoleKind = iota

	// RoleShop marks a shop; taxis of the shop's company wait there.
	RoleShop

	// RoleClient marks a vertex from which clients call for a taxi.
	RoleClient
)

// String returns the lower-case role name.
func (k RoleKind) String() string {
	switch k {
	case RoleNone:
		return "none"
	case RoleShop:
		return "shop"
	case RoleClient:
		return "client"
	default:
		return fmt.Sprintf("RoleKind(%d)", int(k))
	}
}

// Role is the dispatch role of a vertex.
type Role struct {
	Kind    RoleKind
	Company string // set only when Kind == RoleShop
}

// None returns the default role.
func None() Role { return Role{Kind: RoleNone} }

// Shop returns a shop role affiliated with company ("" = unaffiliated).
func Shop(company string) Role { return Role{Kind: RoleShop, Company: company} }

// Client returns the client role.
func Client() Role { return Role{Kind: RoleClient} }

// IsShop reports whether r is a shop role.
func (r Role) IsShop() bool { return r.Kind == RoleShop }

// IsClient reports whether r is the client role.
func (r Role) IsClient() bool { return r.Kind == RoleClient }

// ShopOf reports whether r is a shop of the given company. Company names
// compare case-insensitively; an empty company matches every shop.
func (r Role) ShopOf(company string) bool {
	if r.Kind != RoleShop {
		return false
	}
	if company == "" {
		return true
	}

	return CompanyKey(r.Company) == CompanyKey(company)
}

// String renders the role as "none", "client", "shop" or "shop(<company>)".
func (r Role) String() string {
	switch r.Kind {
	case RoleShop:
		if r.Company == "" {
			return RoleShop.String()
		}
		return RoleShop.String() + "(" + r.Company + ")"
	case RoleNone, RoleClient:
		return r.Kind.String()
	default:
		return r.Kind.String()
	}
}

// CompanyKey normalizes a company name for index lookups.
func CompanyKey(company string) string {
	return strings.ToLower(strings.TrimSpace(company))
}
