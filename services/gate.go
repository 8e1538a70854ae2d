package services

import (
	"github.com/vin0san/mini-twitter/apperr"
	"github.com/vin0san/mini-twitter/auth"
)

// AssertOwner fails with Forbidden unless actor owns the resource.
func AssertOwner(actor auth.Identity, ownerID uint, what string) error {
	if actor.AccountID != ownerID {
		return apperr.ForbiddenError("not authorized to modify this %s", what)
	}
	return nil
}

func assertNotSelf(actor auth.Identity, targetID uint) error {
	if actor.AccountID == targetID {
		return apperr.InvalidRequestError("you cannot follow yourself")
	}
	return nil
}
