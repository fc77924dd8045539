package userstore

import (
	"context"

	"github.com/byuhkorea/alumnihub/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fetcher adapts the store to auth.UserFetcher so the session
// middleware can load the member profile on each request.
type Fetcher struct {
	s *Store
}

func NewFetcher(db *mongo.Database) *Fetcher {
	return &Fetcher{s: New(db)}
}

// FetchProfile returns nil when no profile exists or the lookup fails;
// the session layer treats both as "profile not set up yet".
func (f *Fetcher) FetchProfile(ctx context.Context, uid string) *auth.Profile {
	p, err := f.s.Get(ctx, uid)
	if err != nil {
		return nil
	}
	return &auth.Profile{
		Name:  p.Name,
		Email: p.Email,
		Role:  p.Role,
	}
}
