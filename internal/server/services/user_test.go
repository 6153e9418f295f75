package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/common"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/auth"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/config"
)

func newUserService(t *testing.T, m *fakeRepoManager) *UserService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	t.Cleanup(func() { db.Close() })
	cfg := &config.Config{SecretKey: "test-secret", AccessTokenValidityDuration: time.Minute}
	return NewUserService(db, m, cfg)
}

func TestLogin_Success(t *testing.T) {
	m := newFakeManager()
	m.u.user.Password = "Detective2024!"
	s := newUserService(t, m)

	token, actor, err := s.Login(context.Background(), "sarah.chen@agency.gov", "Detective2024!")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if actor.Email != "sarah.chen@agency.gov" || actor.Role != "Detective" {
		t.Errorf("unexpected actor: %+v", actor)
	}

	got, err := auth.GetActorFromToken(token, []byte("test-secret"))
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if got != actor {
		t.Errorf("token actor mismatch: %+v != %+v", got, actor)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	m := newFakeManager()
	m.u.user.Password = "correct"
	s := newUserService(t, m)

	_, _, err := s.Login(context.Background(), "sarah.chen@agency.gov", "wrong")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	s := newUserService(t, newFakeManager())
	_, _, err := s.Login(context.Background(), "nobody@agency.gov", "x")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}
}

func TestLogin_InactiveUser(t *testing.T) {
	m := newFakeManager()
	m.u.user.Password = "pw"
	m.u.user.Status = "suspended"
	s := newUserService(t, m)

	_, _, err := s.Login(context.Background(), "sarah.chen@agency.gov", "pw")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}
}

func TestLogin_RepoFailure(t *testing.T) {
	m := newFakeManager()
	m.u.err = errBoom{}
	s := newUserService(t, m)

	_, _, err := s.Login(context.Background(), "sarah.chen@agency.gov", "pw")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("want ErrorInternal, got %v", err)
	}
}
