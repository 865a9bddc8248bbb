// internal/pkg/session/service.go
package session

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"knowledgepulse-web/internal/api"
	"knowledgepulse-web/internal/domain/auth"
	"knowledgepulse-web/internal/domain/student"
	xerrors "knowledgepulse-web/internal/pkg/errors"
	"knowledgepulse-web/internal/pkg/token"
)

// Service owns all session state. It is the only writer of the token store,
// and the single place where roles are normalized (always lower-cased on
// write, whichever path created the identity).
type Service struct {
	store  Store
	client *api.Client
	logger *zap.Logger
}

func NewService(store Store, client *api.Client, logger *zap.Logger) *Service {
	s := &Service{store: store, client: client, logger: logger}
	client.OnUnauthorized(s.purge)
	return s
}

// Login exchanges credentials for a token and caches token + identity
// together. The backend's role casing is normalized here.
func (s *Service) Login(ctx context.Context, creds auth.Credentials) error {
	resp, err := s.client.Login(ctx, auth.LoginRequest{Username: creds.Email, Password: creds.Password})
	if err != nil {
		return err
	}
	if resp.Token == "" {
		return errors.New("login response missing token")
	}

	identity := &CachedIdentity{Email: resp.Username, Role: normalizeRole(resp.Role)}
	if err := s.store.Set(ctx, SIDFromContext(ctx), resp.Token, identity); err != nil {
		return xerrors.Wrap(err, "failed to persist session")
	}

	s.logger.Info("user signed in",
		zap.String("email", identity.Email),
		zap.String("role", identity.Role),
	)
	return nil
}

// Register runs the two-phase registration flow: create the account and
// cache its token + decoded identity, then enrich the student record with
// the same freshly issued token. The enrichment call is best-effort; its
// failure is reported in the result, never as an error.
func (s *Service) Register(ctx context.Context, form auth.RegisterForm) (*RegisterResult, error) {
	resp, err := s.client.Register(ctx, auth.RegisterRequest{
		Username: form.Email,
		Password: form.Password,
		Role:     auth.RoleStudent,
	})
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, errors.New("register response missing token")
	}

	res := &RegisterResult{IdentityCreated: true, Token: resp.Token}

	var identity *CachedIdentity
	if claims, err := token.Decode(resp.Token); err != nil {
		// Decode failure is advisory-only: the token still authenticates.
		s.logger.Error("failed to decode registration token", zap.Error(err))
	} else {
		identity = &CachedIdentity{Email: claims.Email, Role: normalizeRole(claims.Role)}
	}

	sid := SIDFromContext(ctx)
	if err := s.store.Set(ctx, sid, resp.Token, identity); err != nil {
		return res, xerrors.Wrap(err, "failed to persist session")
	}
	res.User = identity

	// The ambient context may not carry the new token yet, so the enrichment
	// call is issued with the one just received.
	created, err := s.client.CreateStudent(api.WithToken(ctx, resp.Token), form.Email, student.Profile{
		FirstName:        form.FirstName,
		LastName:         form.LastName,
		Phone:            form.Phone,
		Address:          form.Address,
		HighestEducation: form.HighestEducation,
	})
	if err != nil {
		s.logger.Error("failed to create student profile after registration",
			zap.String("email", form.Email),
			zap.Error(err),
		)
		return res, nil
	}

	res.ProfileEnriched = true
	if identity != nil {
		merged := *identity
		mergeProfile(&merged, created)
		if err := s.store.Set(ctx, sid, resp.Token, &merged); err != nil {
			s.logger.Error("failed to merge profile into session", zap.Error(err))
			return res, nil
		}
		res.User = &merged
	}
	return res, nil
}

// Logout clears the session slot. Idempotent: clearing an already cleared
// session is a no-op.
func (s *Service) Logout(ctx context.Context) error {
	sid := SIDFromContext(ctx)
	if sid == "" {
		return nil
	}
	return s.store.Clear(ctx, sid)
}

// CurrentUser returns the cached identity, or nil when signed out. Pure
// read.
func (s *Service) CurrentUser(ctx context.Context) *CachedIdentity {
	identity, err := s.store.Identity(ctx, SIDFromContext(ctx))
	if err != nil {
		s.logger.Error("failed to read cached identity", zap.Error(err))
		return nil
	}
	return identity
}

// Token returns the cached bearer token, or "" when signed out.
func (s *Service) Token(ctx context.Context) string {
	tok, err := s.store.Token(ctx, SIDFromContext(ctx))
	if err != nil {
		s.logger.Error("failed to read cached token", zap.Error(err))
		return ""
	}
	return tok
}

// IsAuthenticated reports token presence, not validity: a stale token still
// reads as authenticated until the backend rejects it.
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	return s.Token(ctx) != ""
}

// IsAdmin reports whether the cached role is admin, case-insensitively.
func (s *Service) IsAdmin(ctx context.Context) bool {
	user := s.CurrentUser(ctx)
	return user != nil && strings.EqualFold(user.Role, "admin")
}

// UpdateProfile updates the student record and merges the result into the
// cached identity, keeping the token untouched.
func (s *Service) UpdateProfile(ctx context.Context, profile student.Profile) (*student.Student, error) {
	updated, err := s.client.UpdateMyProfile(ctx, profile)
	if err != nil {
		return nil, err
	}

	sid := SIDFromContext(ctx)
	tok, err := s.store.Token(ctx, sid)
	if err != nil || tok == "" {
		return updated, nil
	}
	identity, err := s.store.Identity(ctx, sid)
	if err != nil || identity == nil {
		return updated, nil
	}

	merged := *identity
	mergeProfile(&merged, updated)
	if err := s.store.Set(ctx, sid, tok, &merged); err != nil {
		s.logger.Error("failed to merge updated profile into session", zap.Error(err))
	}
	return updated, nil
}

// ForgotPassword relays the reset request; no local state changes.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	return s.client.ForgotPassword(ctx, email)
}

// ResetPassword relays the reset completion; no local state changes.
func (s *Service) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	return s.client.ResetPassword(ctx, resetToken, newPassword)
}

// ChangePassword relays the password rotation; no local state changes.
func (s *Service) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return s.client.ChangePassword(ctx, oldPassword, newPassword)
}

// purge drops the session after the backend rejected its token. Wired into
// the API client's 401 hook.
func (s *Service) purge(ctx context.Context) {
	sid := SIDFromContext(ctx)
	if sid == "" {
		return
	}
	if err := s.store.Clear(ctx, sid); err != nil {
		s.logger.Error("failed to purge rejected session", zap.String("sid", sid), zap.Error(err))
	}
}

func normalizeRole(role string) string {
	if role == "" {
		return "student"
	}
	return strings.ToLower(role)
}

func mergeProfile(identity *CachedIdentity, rec *student.Student) {
	if rec == nil {
		return
	}
	identity.FirstName = rec.FirstName
	identity.LastName = rec.LastName
	identity.Phone = rec.Phone
	identity.Address = rec.Address
	identity.HighestEducation = rec.HighestEducation
}
