package auth

import "github.com/user/taskhub-go/apperror"

// Owned is implemented by resources that record a creating identity.
type Owned interface {
	OwnerID() int
}

// AssertOwner fails with a ForbiddenError unless the identity created the
// resource. It is applied before every mutation or deletion of a task or
// task list; reads are deliberately not ownership-checked.
func AssertOwner(resource Owned, user *User) error {
	return AssertOwnerID(resource.OwnerID(), user)
}

// AssertOwnerID is the same check against a bare owner ID, for call sites
// that authorize against a related record's creator (a task authorizes
// against its owning list's creator).
func AssertOwnerID(ownerID int, user *User) error {
	if user == nil || ownerID != user.ID {
		return apperror.NewForbiddenError("resource does not belong to the current user", nil)
	}
	return nil
}
