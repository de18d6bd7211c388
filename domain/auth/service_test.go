package auth

import (
	"context"
	"testing"

	"padelbot/domain/validation"
)

type fakeRepo struct {
	loginCalls    int
	registerCalls int
	forgotEmail   string
	confirmToken  string
}

func (f *fakeRepo) Login(ctx context.Context, identifier, password string) (*Session, error) {
	f.loginCalls++
	return &Session{Token: "jwt", User: Profile{ID: 7, Username: identifier}}, nil
}

func (f *fakeRepo) Register(ctx context.Context, username, email, password string) (*Session, error) {
	f.registerCalls++
	return &Session{Token: "jwt", User: Profile{ID: 8, Username: username, Email: email}}, nil
}

func (f *fakeRepo) ForgotPassword(ctx context.Context, email string) error {
	f.forgotEmail = email
	return nil
}

func (f *fakeRepo) ConfirmEmail(ctx context.Context, token string) error {
	f.confirmToken = token
	return nil
}

type memSessions struct {
	byChat map[int64]*Session
}

func newMemSessions() *memSessions { return &memSessions{byChat: make(map[int64]*Session)} }

func (m *memSessions) Save(ctx context.Context, chatID int64, s *Session) error {
	m.byChat[chatID] = s
	return nil
}

func (m *memSessions) Get(ctx context.Context, chatID int64) (*Session, error) {
	return m.byChat[chatID], nil
}

func (m *memSessions) Delete(ctx context.Context, chatID int64) error {
	delete(m.byChat, chatID)
	return nil
}

func TestLoginPersistsSession(t *testing.T) {
	repo := &fakeRepo{}
	sessions := newMemSessions()
	svc := NewService(repo, sessions)
	ctx := context.Background()

	sess, err := svc.Login(ctx, 42, "  ana  ", "secret")
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if sess.User.Username != "ana" {
		t.Errorf("identifier not trimmed: %q", sess.User.Username)
	}

	stored, err := svc.Current(ctx, 42)
	if err != nil {
		t.Fatalf("Current() failed: %v", err)
	}
	if stored == nil || stored.Token != "jwt" {
		t.Fatalf("stored session = %+v, want the login result", stored)
	}
}

func TestLoginRequiresCredentials(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, newMemSessions())

	for _, tt := range []struct{ identifier, password string }{
		{"", "secret"},
		{"   ", "secret"},
		{"ana", ""},
	} {
		if _, err := svc.Login(context.Background(), 42, tt.identifier, tt.password); !validation.Is(err) {
			t.Fatalf("Login(%q, %q): err = %v, want validation error", tt.identifier, tt.password, err)
		}
	}
	if repo.loginCalls != 0 {
		t.Fatal("rejected login must not reach the backend")
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, newMemSessions())

	_, err := svc.Register(context.Background(), 42, "ana", "ana@example.com", "secret", "secreto")
	if !validation.Is(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if repo.registerCalls != 0 {
		t.Fatal("mismatched passwords must not reach the backend")
	}
}

func TestRegisterPersistsSession(t *testing.T) {
	sessions := newMemSessions()
	svc := NewService(&fakeRepo{}, sessions)
	ctx := context.Background()

	if _, err := svc.Register(ctx, 42, "ana", "ana@example.com", "secret", "secret"); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if sessions.byChat[42] == nil {
		t.Fatal("register must persist the session")
	}
}

func TestLogoutDeletesSession(t *testing.T) {
	sessions := newMemSessions()
	svc := NewService(&fakeRepo{}, sessions)
	ctx := context.Background()

	if _, err := svc.Login(ctx, 42, "ana", "secret"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if err := svc.Logout(ctx, 42); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}

	sess, err := svc.Current(ctx, 42)
	if err != nil {
		t.Fatalf("Current() failed: %v", err)
	}
	if sess != nil {
		t.Fatal("session must be gone after logout")
	}
}

func TestForgotAndConfirmTrimInput(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, newMemSessions())
	ctx := context.Background()

	if err := svc.ForgotPassword(ctx, " ana@example.com "); err != nil {
		t.Fatalf("ForgotPassword() failed: %v", err)
	}
	if repo.forgotEmail != "ana@example.com" {
		t.Errorf("forgot email = %q, want trimmed", repo.forgotEmail)
	}

	if err := svc.ConfirmEmail(ctx, " tok123 "); err != nil {
		t.Fatalf("ConfirmEmail() failed: %v", err)
	}
	if repo.confirmToken != "tok123" {
		t.Errorf("confirm token = %q, want trimmed", repo.confirmToken)
	}

	if err := svc.ForgotPassword(ctx, "   "); !validation.Is(err) {
		t.Fatalf("empty email: err = %v, want validation error", err)
	}
	if err := svc.ConfirmEmail(ctx, ""); !validation.Is(err) {
		t.Fatalf("empty token: err = %v, want validation error", err)
	}
}
