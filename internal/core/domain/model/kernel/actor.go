package kernel

import "foodbank/internal/pkg/errs"

// Actor is the caller identity supplied by the upstream auth layer for every
// request: the partner organization the caller belongs to and whether the
// caller holds staff (admin) capability.
//
// Actor is a value object; it carries no credentials and performs no
// authentication itself. The lifecycle operations consult it to decide
// whether a transition is permitted.
type Actor struct {
	organization string
	admin        bool
}

// NewActor creates an actor for a partner organization member.
// Organization must be non-empty unless the actor is an admin.
func NewActor(organization string, admin bool) (Actor, error) {
	if organization == "" && !admin {
		return Actor{}, errs.NewValueIsRequiredError("organization")
	}

	return Actor{organization: organization, admin: admin}, nil
}

// Organization returns the partner organization the actor belongs to.
// Empty for staff accounts without a partner affiliation.
func (a Actor) Organization() string {
	return a.organization
}

// IsAdmin reports whether the actor holds staff capability.
func (a Actor) IsAdmin() bool {
	return a.admin
}

// CanActFor reports whether the actor may operate on orders belonging to
// the given organization: staff may act for any organization, partners only
// for their own.
func (a Actor) CanActFor(organization string) bool {
	return a.admin || a.organization == organization
}
