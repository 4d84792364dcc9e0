package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/ashiskumarwork/SmartNotesAI-backend/pkg/errors"
	"github.com/ashiskumarwork/SmartNotesAI-backend/pkg/util"
)

// Service exposes authentication workflows.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (LoginResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	ValidateToken(ctx context.Context, token string) (Claims, error)
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
	Profile(ctx context.Context, userID int64) (UserView, error)
	Logout(ctx context.Context, claims Claims) error
}

type service struct {
	cfg     Config
	repo    Repository
	revoked RevocationStore
	now     util.Clock
	logger  *slog.Logger
}

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	minPasswordLength = 8
	maxPasswordBytes  = 72
	maxNameLength     = 100

	msgFieldsRequired     = "All fields are required."
	msgEmailRegistered    = "Email already registered."
	msgInvalidCredentials = "Invalid email or password."
	msgInvalidToken       = "Invalid or expired token."
	msgUserNotFound       = "User not found."
)

// NewService constructs a Service instance. A nil revocation store disables logout revocation.
func NewService(cfg Config, repo Repository, revoked RevocationStore, logger *slog.Logger) Service {
	return &service{
		cfg:     cfg,
		repo:    repo,
		revoked: revoked,
		now:     util.NowUTC,
		logger:  logger.With("component", "auth.service"),
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (LoginResponse, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return LoginResponse{}, apperrors.Wrap("invalid_input", msgFieldsRequired, nil)
	}
	name, err := normalizeName(req.Name)
	if err != nil {
		return LoginResponse{}, apperrors.Wrap("invalid_input", err.Error(), nil)
	}
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return LoginResponse{}, apperrors.Wrap("invalid_input", "Please provide a valid email address.", err)
	}
	if err := validatePassword(req.Password); err != nil {
		return LoginResponse{}, apperrors.Wrap("invalid_input", err.Error(), nil)
	}
	_, exists, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return LoginResponse{}, apperrors.Wrap("auth_error", "Registration failed. Please try again.", err)
	}
	if exists {
		return LoginResponse{}, apperrors.Wrap("email_exists", msgEmailRegistered, nil)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return LoginResponse{}, apperrors.Wrap("auth_error", "Registration failed. Please try again.", err)
	}
	user, err := s.repo.Create(ctx, name, email, string(hashed))
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			return LoginResponse{}, apperrors.Wrap("email_exists", msgEmailRegistered, err)
		}
		return LoginResponse{}, apperrors.Wrap("auth_error", "Registration failed. Please try again.", err)
	}
	s.logger.Info("user registered", "user_id", user.ID)
	return s.buildLoginResponse(user)
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return LoginResponse{}, apperrors.Wrap("invalid_input", msgFieldsRequired, nil)
	}
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return LoginResponse{}, apperrors.Wrap("invalid_credentials", msgInvalidCredentials, nil)
	}
	user, found, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return LoginResponse{}, apperrors.Wrap("auth_error", "Login failed. Please try again.", err)
	}
	if !found {
		return LoginResponse{}, apperrors.Wrap("invalid_credentials", msgInvalidCredentials, nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResponse{}, apperrors.Wrap("invalid_credentials", msgInvalidCredentials, nil)
	}
	return s.buildLoginResponse(user)
}

func (s *service) ValidateToken(ctx context.Context, token string) (Claims, error) {
	if strings.TrimSpace(token) == "" {
		return Claims{}, apperrors.Wrap("invalid_token", "No token provided.", nil)
	}
	claims, err := s.parseToken(token)
	if err != nil {
		return Claims{}, err
	}
	if claims.TokenType != tokenTypeAccess {
		return Claims{}, apperrors.Wrap("invalid_token", msgInvalidToken, errors.New("token type mismatch"))
	}
	if err := s.checkRevoked(ctx, claims); err != nil {
		return Claims{}, err
	}
	return claims, nil
}

func (s *service) Profile(ctx context.Context, userID int64) (UserView, error) {
	user, found, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return UserView{}, apperrors.Wrap("auth_error", "Failed to fetch user info.", err)
	}
	if !found {
		return UserView{}, apperrors.Wrap("user_not_found", msgUserNotFound, nil)
	}
	return toView(user), nil
}

// Refresh exchanges a refresh token for a new pair. The presented refresh token is revoked.
func (s *service) Refresh(ctx context.Context, refreshToken string) (LoginResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return LoginResponse{}, apperrors.Wrap("invalid_input", "Refresh token is required.", nil)
	}
	claims, err := s.parseToken(refreshToken)
	if err != nil {
		return LoginResponse{}, err
	}
	if claims.TokenType != tokenTypeRefresh {
		return LoginResponse{}, apperrors.Wrap("invalid_token", msgInvalidToken, errors.New("token type mismatch"))
	}
	if err := s.checkRevoked(ctx, claims); err != nil {
		return LoginResponse{}, err
	}
	user, found, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return LoginResponse{}, apperrors.Wrap("auth_error", "Failed to fetch user info.", err)
	}
	if !found {
		return LoginResponse{}, apperrors.Wrap("user_not_found", msgUserNotFound, nil)
	}
	if err := s.revoke(ctx, claims); err != nil {
		return LoginResponse{}, err
	}
	return s.buildLoginResponse(user)
}

// Logout revokes the access token described by claims until it would have expired anyway.
func (s *service) Logout(ctx context.Context, claims Claims) error {
	if err := s.revoke(ctx, claims); err != nil {
		return err
	}
	s.logger.Info("user logged out", "user_id", claims.UserID)
	return nil
}

func (s *service) revoke(ctx context.Context, claims Claims) error {
	if s.revoked == nil || claims.TokenID == "" {
		return nil
	}
	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.revoked.Revoke(ctx, claims.TokenID, ttl); err != nil {
		return apperrors.Wrap("auth_error", "Failed to revoke token.", err)
	}
	return nil
}

func (s *service) checkRevoked(ctx context.Context, claims Claims) error {
	if s.revoked == nil || claims.TokenID == "" {
		return nil
	}
	revoked, err := s.revoked.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return apperrors.Wrap("auth_error", "Failed to verify token.", err)
	}
	if revoked {
		return apperrors.Wrap("invalid_token", msgInvalidToken, errors.New("token revoked"))
	}
	return nil
}

func (s *service) buildLoginResponse(user User) (LoginResponse, error) {
	access, err := s.generateToken(user, tokenTypeAccess, s.cfg.TokenTTL)
	if err != nil {
		return LoginResponse{}, err
	}
	refresh, err := s.generateToken(user, tokenTypeRefresh, s.cfg.RefreshTokenTTL)
	if err != nil {
		return LoginResponse{}, err
	}
	return LoginResponse{
		Token:        access,
		RefreshToken: refresh,
		User:         toView(user),
	}, nil
}

func (s *service) generateToken(user User, tokenType string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := tokenClaims{
		UserID:    user.ID,
		Email:     user.Email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ID:        newTokenID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", apperrors.Wrap("auth_error", "failed to sign token", err)
	}
	return signed, nil
}

func (s *service) parseToken(token string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return Claims{}, apperrors.Wrap("invalid_token", msgInvalidToken, err)
	}
	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return Claims{}, apperrors.Wrap("invalid_token", msgInvalidToken, nil)
	}
	return Claims{
		UserID:    claims.UserID,
		Email:     claims.Email,
		TokenType: claims.TokenType,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func toView(user User) UserView {
	return UserView{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func normalizeEmail(raw string) (string, error) {
	email := strings.TrimSpace(strings.ToLower(raw))
	if email == "" {
		return "", errors.New("email cannot be empty")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return "", err
	}
	if addr.Address != email {
		return "", fmt.Errorf("unexpected address form %q", email)
	}
	return email, nil
}

func normalizeName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if len([]rune(name)) > maxNameLength {
		return "", fmt.Errorf("name cannot exceed %d characters", maxNameLength)
	}
	return name, nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	// bcrypt refuses longer inputs.
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("password must be at most %d bytes", maxPasswordBytes)
	}
	return nil
}

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"userId"`
	Email     string `json:"email"`
	TokenType string `json:"type"`
}

func newTokenID() string {
	return uuid.NewString()
}
