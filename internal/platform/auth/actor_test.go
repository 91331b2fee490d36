package auth

import (
	"context"
	"testing"
)

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RolePatient, RoleDoctor, RoleAdmin} {
		if !r.Valid() {
			t.Errorf("expected role %q to be valid", r)
		}
	}
	if Role("nurse").Valid() {
		t.Error("expected unknown role to be invalid")
	}
	if Role("").Valid() {
		t.Error("expected empty role to be invalid")
	}
}

func TestActorContextRoundTrip(t *testing.T) {
	ctx := WithActor(context.Background(), Actor{ID: 42, Role: RoleDoctor})

	a, ok := ActorFromContext(ctx)
	if !ok {
		t.Fatal("expected actor in context")
	}
	if a.ID != 42 || a.Role != RoleDoctor {
		t.Errorf("unexpected actor: %+v", a)
	}
}

func TestActorFromContext_Missing(t *testing.T) {
	if _, ok := ActorFromContext(context.Background()); ok {
		t.Error("expected no actor in empty context")
	}
}

func TestActorIsPatient(t *testing.T) {
	patient := Actor{ID: 7, Role: RolePatient}
	if !patient.IsPatient(7) {
		t.Error("expected patient 7 to own patient id 7")
	}
	if patient.IsPatient(8) {
		t.Error("patient 7 must not own patient id 8")
	}

	doctor := Actor{ID: 7, Role: RoleDoctor}
	if doctor.IsPatient(7) {
		t.Error("doctor must never pass the patient ownership check")
	}
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "s3cret") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("expected wrong password to fail")
	}
}
