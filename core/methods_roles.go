// File: methods_roles.go
// Role: Role assignment and the role indices used by dispatch.
//
// The indices turn "every shop of company C" and "every client" into O(1)
// lookups instead of a full vertex scan per dispatch call.
//
// Determinism:
//   - Shops(), Clients() and Companies() return sorted results.
// Concurrency:
//   - Vertex roles and all indices are protected by muVert.
package core

import "sort"

// SetRole re-tags vertex id with role and keeps the role indices consistent.
//
// Steps:
//  1. Validate ID and look up the vertex.
//  2. Drop the vertex from the index of its current role.
//  3. Store the new role and add the vertex to the matching index.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) SetRole(id string, role Role) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	g.unindex(v)
	v.Role = role
	g.index(v)

	return nil
}

// Shops returns the IDs of every shop affiliated with company, sorted.
// Company names compare case-insensitively; "" returns every shop.
// Complexity: O(k log k) for k matching shops.
func (g *Graph) Shops(company string) []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if company == "" {
		return sortedKeys(g.shops)
	}

	return sortedKeys(g.shopsByCompany[CompanyKey(company)])
}

// Clients returns the IDs of every client vertex, sorted.
func (g *Graph) Clients() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return sortedKeys(g.clients)
}

// Companies returns the company names that own at least one shop,
// in the spelling first seen, sorted.
func (g *Graph) Companies() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]string, 0, len(g.companies))
	for key, name := range g.companies {
		if len(g.shopsByCompany[key]) > 0 {
			out = append(out, name)
		}
	}
	sort.Strings(out)

	return out
}

// index adds v to the index of its current role. Caller holds muVert.
func (g *Graph) index(v *Vertex) {
	switch v.Role.Kind {
	case RoleShop:
		g.shops[v.ID] = struct{}{}
		if v.Role.Company == "" {
			return
		}
		key := CompanyKey(v.Role.Company)
		if g.shopsByCompany[key] == nil {
			g.shopsByCompany[key] = make(map[string]struct{})
		}
		g.shopsByCompany[key][v.ID] = struct{}{}
		if _, ok := g.companies[key]; !ok {
			g.companies[key] = v.Role.Company
		}
	case RoleClient:
		g.clients[v.ID] = struct{}{}
	case RoleNone:
		// not indexed
	}
}

// unindex removes v from the index of its current role. Caller holds muVert.
func (g *Graph) unindex(v *Vertex) {
	switch v.Role.Kind {
	case RoleShop:
		delete(g.shops, v.ID)
		if v.Role.Company != "" {
			delete(g.shopsByCompany[CompanyKey(v.Role.Company)], v.ID)
		}
	case RoleClient:
		delete(g.clients, v.ID)
	case RoleNone:
		// not indexed
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
