// Package auth carries the authenticated actor through a request and provides
// the password-hashing utility shared by the seeder and account tooling.
// Login, sessions and token verification live in the consuming application,
// not here.
package auth

import "context"

// Role is the actor's role for permission checks.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// Actor is the authenticated principal attempting an operation. For patients
// ID is the patient id; for doctors the doctor id. Admin IDs are opaque.
type Actor struct {
	ID   int64
	Role Role
}

// IsPatient reports whether the actor is the patient with the given id.
func (a Actor) IsPatient(patientID int64) bool {
	return a.Role == RolePatient && a.ID == patientID
}

type contextKey string

const actorKey contextKey = "actor"

// WithActor returns a context carrying the actor.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

// ActorFromContext retrieves the actor from context. ok is false when no
// actor was attached, which callers must treat as unauthenticated.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey).(Actor)
	return a, ok
}
