package auth

import (
	"errors"
	"testing"

	"aihub/aihub/middlewares"
	"aihub/aihub/types"
)

func TestSignInSignOut(t *testing.T) {
	s := NewService("test-secret")

	if _, ok := s.CurrentIdentity(); ok {
		t.Error("expected no identity before sign-in")
	}

	identity, err := s.SignIn(types.ProviderGoogle)
	if err != nil {
		t.Fatal(err)
	}
	if identity.Provider != types.ProviderGoogle {
		t.Errorf("provider = %q", identity.Provider)
	}

	current, ok := s.CurrentIdentity()
	if !ok || current.ID != identity.ID {
		t.Error("current identity not set after sign-in")
	}

	s.SignOut()
	if _, ok := s.CurrentIdentity(); ok {
		t.Error("identity should be absent after sign-out")
	}
}

func TestSignInUnknownProviderLeavesIdentityAbsent(t *testing.T) {
	s := NewService("test-secret")

	if _, err := s.SignIn("apple"); !errors.Is(err, ErrUnknownProvider) {
		t.Errorf("expected ErrUnknownProvider, got %v", err)
	}
	if _, ok := s.CurrentIdentity(); ok {
		t.Error("failed sign-in must not set an identity")
	}
}

func TestIssuedTokenRoundTrips(t *testing.T) {
	s := NewService("test-secret")
	identity, err := s.SignIn(types.ProviderMicrosoft)
	if err != nil {
		t.Fatal(err)
	}

	token, err := s.IssueToken(identity)
	if err != nil {
		t.Fatal(err)
	}

	id, err := middlewares.ParseToken(token, "test-secret")
	if err != nil {
		t.Fatal(err)
	}
	if id != identity.ID {
		t.Errorf("token identity = %q, want %q", id, identity.ID)
	}

	if _, err := middlewares.ParseToken(token, "wrong-secret"); err == nil {
		t.Error("token validated with wrong secret")
	}
}
