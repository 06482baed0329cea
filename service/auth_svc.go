package service

import (
	"context"
	"time"

	"github.com/cyltest/api/domain"
	"github.com/cyltest/api/pkg/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const tokenDuration = 8 * time.Hour

// Login checks the credentials and issues a JWT. Both outcomes leave an auth
// trail entry; a failed attempt never reveals whether the account exists.
func (svc *Service) Login(ctx context.Context, email, password string, meta *domain.RequestMeta) (string, error) {
	opts := &domain.QueryUserOptions{Emails: []string{email}}
	if err := svc.Repo.QueryUsers(ctx, opts); err != nil {
		return "", errors.Wrap(err, "query user by email")
	}

	var user *domain.User
	if len(opts.Result) > 0 {
		user = opts.Result[0]
	}

	authorized := false
	if user != nil && (user.Status == domain.UserStatusActive || user.Status == domain.UserStatusWaitChangePassword) {
		ok, err := user.Password.Cmp(password)
		if err != nil {
			logger.Logger(ctx).Error().Err(err).Msg("password comparison failed")
		}
		authorized = ok
	}

	if !authorized {
		event := domain.AuthEvent{
			Action:  domain.ActionLoginFailed,
			Message: "Login failed for " + email,
			Details: domain.Details{"email": email},
			Meta:    meta,
		}
		if user != nil {
			event.UserID = user.ID.Hex()
		}
		svc.LogAuthEvent(ctx, event)
		return "", domain.ErrInvalidCredentials
	}

	token, err := svc.generateJWT(user)
	if err != nil {
		return "", errors.Wrap(err, "generate JWT")
	}

	svc.LogAuthEvent(ctx, domain.AuthEvent{
		Action:  domain.ActionLogin,
		Message: "User logged in",
		UserID:  user.ID.Hex(),
		Meta:    meta,
	})
	return token, nil
}

func (svc *Service) Logout(ctx context.Context, claims *domain.Claims, meta *domain.RequestMeta) error {
	if claims == nil {
		return domain.ErrInvalidCredentials
	}
	svc.LogAuthEvent(ctx, domain.AuthEvent{
		Action:  domain.ActionLogout,
		Message: "User logged out",
		UserID:  claims.UID,
		Meta:    meta,
	})
	return nil
}

// ChangePassword verifies the current password before storing the new one.
// The trail entry records the actor but never any password material.
func (svc *Service) ChangePassword(ctx context.Context, claims *domain.Claims, oldPassword, newPassword string) error {
	if claims == nil {
		return domain.ErrInvalidCredentials
	}
	uid, err := claims.GetBsonObjectUID()
	if err != nil {
		return errors.Wrap(err, "parse claims uid")
	}

	opts := &domain.QueryUserOptions{IDs: []bson.ObjectID{uid}}
	if err := svc.Repo.QueryUsers(ctx, opts); err != nil {
		return errors.Wrap(err, "query user")
	}
	if len(opts.Result) == 0 {
		return domain.ErrNotFound
	}
	user := opts.Result[0]

	ok, err := user.Password.Cmp(oldPassword)
	if err != nil {
		return errors.Wrap(err, "compare password")
	}
	if !ok {
		svc.LogSecurityEvent(ctx, domain.SecurityEvent{
			Action:  domain.ActionPasswordChange,
			Level:   domain.LevelWarning,
			Message: "Password change rejected: current password mismatch",
			UserID:  claims.UID,
		})
		return domain.ErrInvalidCredentials
	}

	user.Password = domain.EncryptedPassword(newPassword)
	user.UpdatedTime = time.Now().UnixMilli()
	if user.Status == domain.UserStatusWaitChangePassword {
		user.Status = domain.UserStatusActive
	}
	if err := svc.Repo.UpdateUser(ctx, user); err != nil {
		return errors.Wrap(err, "update user")
	}

	svc.LogAuthEvent(ctx, domain.AuthEvent{
		Action:  domain.ActionPasswordChange,
		Message: "User changed password",
		UserID:  claims.UID,
	})
	return nil
}

// CreateAdminUserIfNotExists seeds the bootstrap admin account on first
// startup.
func (svc *Service) CreateAdminUserIfNotExists(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	opts := &domain.QueryUserOptions{Emails: []string{email}}
	if err := svc.Repo.QueryUsers(ctx, opts); err != nil {
		return errors.Wrap(err, "query admin user")
	}
	if len(opts.Result) > 0 {
		return nil
	}

	user := &domain.User{
		BaseEntity: domain.NewBaseEntity(nil, nil),
		Email:      email,
		Name:       "Administrator",
		Role:       domain.AdminRole,
		Password:   domain.EncryptedPassword(password),
		Status:     domain.UserStatusActive,
	}
	if err := svc.Repo.CreateUser(ctx, user); err != nil {
		return errors.Wrap(err, "create admin user")
	}

	svc.LogSystemEvent(ctx, domain.SystemEvent{
		Message: "Bootstrap admin account created",
		Module:  "auth",
		Details: domain.Details{"email": email},
	})
	return nil
}

// VerifyJWTToken parses and validates a bearer token, then checks the role.
// Admins pass any role requirement.
func (svc *Service) VerifyJWTToken(ctx context.Context, tokenString string, requiredRole string) (domain.Claims, error) {
	var claims domain.Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return &svc.jwtPrivateKey.PublicKey, nil
	})
	if err != nil || !token.Valid {
		return domain.Claims{}, domain.ErrInvalidCredentials
	}

	if requiredRole != "" && claims.Role != requiredRole && claims.Role != domain.AdminRole {
		svc.LogSecurityEvent(ctx, domain.SecurityEvent{
			Action:  "ACCESS_DENIED",
			Level:   domain.LevelWarning,
			Message: "Role check failed for " + claims.Email,
			UserID:  claims.UID,
			Details: domain.Details{"required_role": requiredRole, "role": claims.Role},
		})
		return domain.Claims{}, domain.ErrPermissionDenied
	}
	return claims, nil
}

func (svc *Service) generateJWT(user *domain.User) (string, error) {
	now := time.Now()
	claims := domain.Claims{
		UID:   user.ID.Hex(),
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "cyltest-api",
			Subject:   user.ID.Hex(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(svc.jwtPrivateKey)
}
