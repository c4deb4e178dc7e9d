package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func newUserSvc(t *testing.T) *UserService {
	t.Helper()
	svc := NewUserService(newSvcDB(t))
	svc.BcryptCost = bcrypt.MinCost
	return svc
}

func TestRegister_NormalizesAndRejectsDuplicates(t *testing.T) {
	svc := newUserSvc(t)

	u, err := svc.Register(context.Background(), " alice ", " Alice@Example.COM ", "s3cretpass", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Username != "alice" || u.Email != "alice@example.com" {
		t.Fatalf("not normalized: %+v", u)
	}
	if u.PasswordHash == "s3cretpass" || u.PasswordHash == "" {
		t.Fatalf("password stored badly: %q", u.PasswordHash)
	}

	if _, err := svc.Register(context.Background(), "alice", "other@example.com", "s3cretpass", ""); !errors.Is(err, ErrAccountExists) {
		t.Fatalf("duplicate username: want ErrAccountExists, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice2", "ALICE@example.com", "s3cretpass", ""); !errors.Is(err, ErrAccountExists) {
		t.Fatalf("duplicate email: want ErrAccountExists, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "", "x@example.com", "s3cretpass", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("blank username: want ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc := newUserSvc(t)
	u, err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cretpass", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, err := svc.Login(context.Background(), "Alice@Example.com", "s3cretpass")
	if err != nil || got.ID != u.ID {
		t.Fatalf("Login: got=%+v err=%v", got, err)
	}
	if _, err := svc.Login(context.Background(), "alice@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: want ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "nobody@example.com", "s3cretpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: want ErrInvalidCredentials, got %v", err)
	}
}

func TestUserGet_NotFound(t *testing.T) {
	svc := newUserSvc(t)
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}
}
