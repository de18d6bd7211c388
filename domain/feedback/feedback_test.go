package feedback

import (
	"context"
	"strings"
	"testing"

	"padelbot/domain/validation"
)

type fakeRepo struct {
	calls int
	text  string
}

func (f *fakeRepo) Submit(ctx context.Context, token, text string) error {
	f.calls++
	f.text = text
	return nil
}

func TestSubmitTrimsAndForwards(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	err := svc.Submit(context.Background(), "tok", "  el buscador no encuentra por apellido  ")
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if repo.text != "el buscador no encuentra por apellido" {
		t.Errorf("submitted %q, want trimmed text", repo.text)
	}
}

func TestSubmitLengthBounds(t *testing.T) {
	tests := []struct {
		name string
		text string
		ok   bool
	}{
		{"too short", "muy corto", false},
		{"whitespace only", "          ", false},
		{"at minimum", strings.Repeat("a", MinLength), true},
		{"at maximum", strings.Repeat("a", MaxLength), true},
		{"over maximum", strings.Repeat("a", MaxLength+1), false},
		// Length is counted in runes, not bytes.
		{"multibyte at minimum", strings.Repeat("á", MinLength), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := NewService(repo)

			err := svc.Submit(context.Background(), "tok", tt.text)
			if tt.ok {
				if err != nil {
					t.Fatalf("Submit() failed: %v", err)
				}
				if repo.calls != 1 {
					t.Fatalf("repo calls = %d, want 1", repo.calls)
				}
				return
			}
			if !validation.Is(err) {
				t.Fatalf("err = %v, want validation error", err)
			}
			if repo.calls != 0 {
				t.Fatal("rejected suggestion must not reach the backend")
			}
		})
	}
}
