// internal/domain/models/user.go
package models

import "time"

// Roles a member profile can hold. There is no implicit hierarchy in
// access checks; routes list the roles they accept explicitly.
const (
	RoleMember  = "member"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleMember, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// UserProfile is the application-owned record for a registered alumni
// member. It is keyed by the Google subject id, so _id is a string
// rather than an ObjectID: exactly one profile per identity.
//
// A profile does not exist until the member completes the setup flow;
// until then the identity can sign in but only reach /profile/setup.
type UserProfile struct {
	UID             string `bson:"_id" json:"uid"`
	Name            string `bson:"name" json:"name"`
	NameCI          string `bson:"name_ci" json:"-"` // folded, for ordering and search
	Email           string `bson:"email" json:"email"`
	Phone           string `bson:"phone" json:"phone"`
	Company         string `bson:"company,omitempty" json:"company,omitempty"`
	Position        string `bson:"position,omitempty" json:"position,omitempty"`
	LinkedIn        string `bson:"linked_in,omitempty" json:"linked_in,omitempty"`
	GraduationYear  string `bson:"graduation_year,omitempty" json:"graduation_year,omitempty"`
	ProfileImageURL string `bson:"profile_image_url,omitempty" json:"profile_image_url,omitempty"`
	Role            string `bson:"role" json:"role"` // member | manager | admin

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
