package service

import (
	"context"

	"github.com/cyltest/api/domain"
	"github.com/pkg/errors"
)

// UpdateSetting upserts one configuration value and records the change with
// its previous value through the settings-update emitter.
func (svc *Service) UpdateSetting(ctx context.Context, operator *domain.Claims, category, key, value string, meta *domain.RequestMeta) error {
	if operator == nil || operator.Role != domain.AdminRole {
		return domain.ErrPermissionDenied
	}

	oldValue := ""
	opts := &domain.QuerySettingOptions{Categories: []string{category}, Keys: []string{key}}
	if err := svc.Repo.QuerySettings(ctx, opts); err != nil {
		return errors.Wrap(err, "query setting")
	}
	if len(opts.Result) > 0 {
		oldValue = opts.Result[0].Value
	}

	setting := &domain.Setting{
		Category: category,
		Key:      key,
		Value:    value,
	}
	if operatorID, err := operator.GetBsonObjectUID(); err == nil {
		setting.UpdaterID = operatorID
	}
	if err := svc.Repo.UpsertSetting(ctx, setting); err != nil {
		return errors.Wrap(err, "upsert setting")
	}

	svc.LogSettingsUpdate(ctx, domain.SettingsUpdateEvent{
		Category:  category,
		Key:       key,
		OldValue:  oldValue,
		NewValue:  value,
		UserID:    operator.UID,
		UserEmail: operator.Email,
		Meta:      meta,
	})
	return nil
}

func (svc *Service) QuerySettings(ctx context.Context, opt *domain.QuerySettingOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	return svc.Repo.QuerySettings(ctx, opt)
}
