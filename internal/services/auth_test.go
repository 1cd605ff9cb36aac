package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	authrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/auth"
	"github.com/ovenline/bakehouse-backend/internal/data/repos/testutil"
	userrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/user"
	types "github.com/ovenline/bakehouse-backend/internal/domain"
	"github.com/ovenline/bakehouse-backend/internal/platform/apperr"
	"github.com/ovenline/bakehouse-backend/internal/platform/requestdata"
)

func newAuthService(tb testing.TB, db *gorm.DB) AuthService {
	tb.Helper()
	log := testutil.Logger(tb)
	return NewAuthService(
		db,
		log,
		userrepos.NewUserRepo(db, log),
		authrepos.NewUserTokenRepo(db, log),
		"test-secret",
		time.Hour,
		24*time.Hour,
	)
}

func TestRegisterAndLogin(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	svc := newAuthService(t, db)

	user, err := svc.Register(ctx, "Prover@Ovenline.Test", "crustneversleeps", "Sam", "Leaven")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "prover@ovenline.test" {
		t.Fatalf("email not lowercased: %q", user.Email)
	}
	if user.Role != types.RoleBaker {
		t.Fatalf("role = %q, want %q", user.Role, types.RoleBaker)
	}
	if user.PasswordHash == "crustneversleeps" {
		t.Fatal("password stored in plaintext")
	}

	pair, err := svc.Login(ctx, "prover@ovenline.test", "crustneversleeps")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("incomplete token pair: %+v", pair)
	}

	if _, err := svc.Login(ctx, "prover@ovenline.test", "wrong-password"); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("Login with wrong password = %v, want ErrInvalidInput", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	svc := newAuthService(t, db)

	if _, err := svc.Register(ctx, "not-an-email", "crustneversleeps", "", ""); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("Register bad email = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Register(ctx, "ok@ovenline.test", "short", "", ""); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("Register short password = %v, want ErrInvalidInput", err)
	}
}

func TestRefreshRotatesTokens(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	svc := newAuthService(t, db)

	if _, err := svc.Register(ctx, "mixer@ovenline.test", "crustneversleeps", "", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}
	pair, err := svc.Login(ctx, "mixer@ovenline.test", "crustneversleeps")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	next, err := svc.Refresh(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if next.RefreshToken == pair.RefreshToken {
		t.Fatal("refresh token was not rotated")
	}

	// The old refresh token is revoked by the rotation.
	if _, err := svc.Refresh(ctx, pair.RefreshToken); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("Refresh with rotated token = %v, want ErrUnauthorized", err)
	}
}

func TestSetContextFromTokenAndLogout(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	svc := newAuthService(t, db)

	user, err := svc.Register(ctx, "ovens@ovenline.test", "crustneversleeps", "", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	pair, err := svc.Login(ctx, "ovens@ovenline.test", "crustneversleeps")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	authed, err := svc.SetContextFromToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	rd := requestdata.GetRequestData(authed)
	if rd == nil || rd.UserID != user.ID {
		t.Fatalf("request data = %+v, want user %s", rd, user.ID)
	}
	if rd.Role != types.RoleBaker {
		t.Fatalf("role = %q, want %q", rd.Role, types.RoleBaker)
	}

	if _, err := svc.SetContextFromToken(ctx, "garbage"); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("SetContextFromToken garbage = %v, want ErrUnauthorized", err)
	}

	if err := svc.Logout(authed); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.Refresh(ctx, pair.RefreshToken); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("Refresh after logout = %v, want ErrUnauthorized", err)
	}

	if err := svc.Logout(context.Background()); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("Logout without identity = %v, want ErrUnauthorized", err)
	}
}
