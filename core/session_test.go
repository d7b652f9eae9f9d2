package core

import (
	"errors"
	"sync"
	"testing"
)

func TestSession_StateMachine(t *testing.T) {
	s := NewSession("https://models.example.com")
	if s.State() != SessionUnauthenticated {
		t.Fatalf("new session should start unauthenticated, got %s", s.State())
	}
	if _, err := s.Token(); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("Token before login: want ErrSessionInvalid, got %v", err)
	}

	s.Authenticate("tok-123", true)
	if !s.Valid() {
		t.Fatal("session should be valid after Authenticate")
	}
	tok, err := s.Token()
	if err != nil {
		t.Fatalf("Token after login: %v", err)
	}
	if tok != "tok-123" {
		t.Fatalf("unexpected token %q", tok)
	}
	if !s.Persistent() {
		t.Error("persistence flag should be retained")
	}

	s.Invalidate()
	if s.Valid() {
		t.Fatal("session should be invalid after Invalidate")
	}
	if _, err := s.Token(); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("Token after logout: want ErrSessionInvalid, got %v", err)
	}
}

func TestSession_ConcurrentReads(t *testing.T) {
	s := NewSession("https://models.example.com")
	s.Authenticate("tok", false)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Token(); err != nil {
				t.Errorf("concurrent Token: %v", err)
			}
			_ = s.Valid()
			_ = s.Endpoint()
		}()
	}
	wg.Wait()
}

func TestSessionState_String(t *testing.T) {
	if SessionUnauthenticated.String() != "unauthenticated" || SessionAuthenticated.String() != "authenticated" {
		t.Fatal("unexpected state strings")
	}
}
