// Package access decides who may do what with a record. Every operation
// entry point resolves an Actor first and asks Evaluate before touching
// storage; the decision is pure and carries no side effects.
package access

// Actor is the resolved identity of a request: either anonymous or an
// authenticated user with a stable id.
type Actor struct {
	UserID   uint
	Username string
}

// Anonymous is the zero actor for requests without a session.
var Anonymous = Actor{}

// IsAuthenticated reports whether the actor carries a user identity.
func (a Actor) IsAuthenticated() bool {
	return a.UserID != 0
}

// Operation is the kind of access being requested.
type Operation int

const (
	// OpRead covers ownerless reads: news home, news detail and the
	// comments shown there.
	OpRead Operation = iota
	// OpReadOwnList is the per-user note listing.
	OpReadOwnList
	OpCreate
	OpEdit
	OpDelete
)

// Decision is the outcome of an access check.
type Decision int

const (
	// Allow lets the operation proceed.
	Allow Decision = iota
	// DenyAsNotFound hides the record from non-owners. The caller must
	// answer exactly as if the record did not exist, so ownership
	// mismatches never leak resource existence.
	DenyAsNotFound
	// DenyAsAuthRequired sends the caller to the login flow, preserving
	// the originally requested location.
	DenyAsAuthRequired
)

// NoOwner marks an ownerless resource (news articles, listing pages).
const NoOwner uint = 0

// Evaluate applies the access rules in order and returns the decision
// for the given actor, resource owner and operation. ownerID is NoOwner
// for resources that belong to nobody.
func Evaluate(actor Actor, ownerID uint, op Operation) Decision {
	switch op {
	case OpRead:
		if ownerID == NoOwner {
			return Allow
		}
		// Owned reads (note detail) follow the edit/delete rules: the
		// record must stay invisible to everyone but the author.
		return evaluateOwned(actor, ownerID)
	case OpReadOwnList, OpCreate:
		if !actor.IsAuthenticated() {
			return DenyAsAuthRequired
		}
		return Allow
	case OpEdit, OpDelete:
		return evaluateOwned(actor, ownerID)
	}
	return DenyAsNotFound
}

func evaluateOwned(actor Actor, ownerID uint) Decision {
	if !actor.IsAuthenticated() {
		return DenyAsAuthRequired
	}
	if actor.UserID == ownerID {
		return Allow
	}
	return DenyAsNotFound
}
