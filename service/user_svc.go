package service

import (
	"context"

	"github.com/cyltest/api/domain"
	"github.com/pkg/errors"
)

// CreateUser stores a new account and records a user-activity entry naming
// the operator and the created account.
func (svc *Service) CreateUser(ctx context.Context, operator *domain.Claims, user *domain.User, meta *domain.RequestMeta) error {
	if operator == nil || operator.Role != domain.AdminRole {
		return domain.ErrPermissionDenied
	}

	opts := &domain.QueryUserOptions{Emails: []string{user.Email}}
	if err := svc.Repo.QueryUsers(ctx, opts); err != nil {
		return errors.Wrap(err, "query user by email")
	}
	if len(opts.Result) > 0 {
		return errors.Errorf("user %s already exists", user.Email)
	}

	if operatorID, err := operator.GetBsonObjectUID(); err == nil {
		user.BaseEntity = domain.NewBaseEntity(&operatorID, &operatorID)
	} else {
		user.BaseEntity = domain.NewBaseEntity(nil, nil)
	}
	if user.Status == 0 {
		user.Status = domain.UserStatusWaitChangePassword
	}
	if err := svc.Repo.CreateUser(ctx, user); err != nil {
		return errors.Wrap(err, "create user")
	}

	svc.LogUserActivity(ctx, domain.UserActivityEvent{
		Action:  domain.ActionUserCreate,
		Message: "User account created: " + user.Email,
		UserID:  operator.UID,
		Resource: domain.ResourceRef{
			Type: "user",
			ID:   user.ID.Hex(),
			Name: user.Email,
		},
		Details: domain.Details{"role": user.Role},
		Meta:    meta,
	})
	return nil
}

func (svc *Service) QueryUsers(ctx context.Context, opt *domain.QueryUserOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	return svc.Repo.QueryUsers(ctx, opt)
}
