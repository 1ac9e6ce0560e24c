// Package authz derives mutation permissions from store-resolved
// relationships. Client-supplied shop and book ids address rows; they
// are never trusted as proof of ownership.
package authz

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrUnauthenticated means no identity was presented.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden means the identity is present but does not own the resource.
	ErrForbidden = errors.New("forbidden: not the resource owner")

	// ErrResourceNotFound means the addressed resource does not exist.
	ErrResourceNotFound = errors.New("resource not found")
)

// ResourceResolver resolves a resource to its owning user id.
// Implementations query the store directly; the resolved owner is the
// only input to the authorization decision.
type ResourceResolver interface {
	// ShopOwner returns the owner of the shop, or ErrResourceNotFound.
	ShopOwner(ctx context.Context, shopID uuid.UUID) (uuid.UUID, error)

	// BookOwner returns the owner of the book's shop (via join) and the
	// shop id, or ErrResourceNotFound.
	BookOwner(ctx context.Context, bookID uuid.UUID) (ownerID, shopID uuid.UUID, err error)
}

type Authorizer struct {
	resolver ResourceResolver
}

func NewAuthorizer(resolver ResourceResolver) *Authorizer {
	return &Authorizer{resolver: resolver}
}

// AuthorizeShopMutation permits userID to mutate the shop's catalog.
func (a *Authorizer) AuthorizeShopMutation(ctx context.Context, userID, shopID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthenticated
	}

	ownerID, err := a.resolver.ShopOwner(ctx, shopID)
	if err != nil {
		return err
	}
	if ownerID != userID {
		return ErrForbidden
	}
	return nil
}

// AuthorizeBookMutation permits userID to mutate the book. The owning
// shop id is returned so callers can address follow-up writes without
// trusting the client's copy.
func (a *Authorizer) AuthorizeBookMutation(ctx context.Context, userID, bookID uuid.UUID) (uuid.UUID, error) {
	if userID == uuid.Nil {
		return uuid.Nil, ErrUnauthenticated
	}

	ownerID, shopID, err := a.resolver.BookOwner(ctx, bookID)
	if err != nil {
		return uuid.Nil, err
	}
	if ownerID != userID {
		return uuid.Nil, ErrForbidden
	}
	return shopID, nil
}
