package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cyltest/api/domain"
	"github.com/cyltest/api/pkg/logger"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// parseActorID converts an emitter-supplied user id. Malformed ids leave the
// actor absent rather than failing the write.
func parseActorID(ctx context.Context, raw string) bson.ObjectID {
	if raw == "" {
		return bson.ObjectID{}
	}
	oid, err := bson.ObjectIDFromHex(raw)
	if err != nil {
		logger.Logger(ctx).Debug().Str("user_id", raw).Msg("malformed actor id on audit event")
		return bson.ObjectID{}
	}
	return oid
}

func (svc *Service) LogUserActivity(ctx context.Context, event domain.UserActivityEvent) string {
	level := event.Level
	if !level.Valid() {
		level = domain.LevelInfo
	}
	entry := &domain.AuditLog{
		LogType:      domain.LogTypeUserActivity,
		Level:        level,
		Action:       event.Action,
		Message:      event.Message,
		UserID:       parseActorID(ctx, event.UserID),
		ResourceType: event.Resource.Type,
		ResourceID:   event.Resource.ID,
		ResourceName: event.Resource.Name,
		Details:      event.Details,
	}
	applyRequestMeta(entry, event.Meta)
	return svc.submit(ctx, entry)
}

func (svc *Service) LogSystemEvent(ctx context.Context, event domain.SystemEvent) string {
	level := event.Level
	if !level.Valid() {
		level = domain.LevelInfo
	}
	entry := &domain.AuditLog{
		LogType:           domain.LogTypeSystem,
		Level:             level,
		Message:           event.Message,
		Module:            event.Module,
		Details:           event.Details,
		IsSystemGenerated: true,
	}
	return svc.submit(ctx, entry)
}

func (svc *Service) LogAuthEvent(ctx context.Context, event domain.AuthEvent) string {
	level := event.Level
	if !level.Valid() {
		if event.Action == domain.ActionLoginFailed {
			level = domain.LevelWarning
		} else {
			level = domain.LevelInfo
		}
	}
	entry := &domain.AuditLog{
		LogType:   domain.LogTypeAuth,
		Level:     level,
		Action:    event.Action,
		Message:   event.Message,
		UserID:    parseActorID(ctx, event.UserID),
		SessionID: event.SessionID,
		Details:   event.Details,
	}
	applyRequestMeta(entry, event.Meta)
	return svc.submit(ctx, entry)
}

func (svc *Service) LogEmailEvent(ctx context.Context, event domain.EmailEvent) string {
	level := event.Level
	if !level.Valid() {
		if event.Status == "failed" {
			level = domain.LevelError
		} else {
			level = domain.LevelInfo
		}
	}
	action := event.Action
	if action == "" {
		action = domain.ActionEmailSend
	}
	payload := domain.EmailDetails{
		Recipient:    event.Recipient,
		Subject:      event.Subject,
		Status:       event.Status,
		ErrorMessage: event.ErrorMessage,
	}
	entry := &domain.AuditLog{
		LogType: domain.LogTypeEmail,
		Level:   level,
		Action:  action,
		Message: event.Message,
		Details: payload.Details(),
	}
	applyRequestMeta(entry, event.Meta)
	return svc.submit(ctx, entry)
}

func (svc *Service) LogFileOperation(ctx context.Context, event domain.FileOperationEvent) string {
	payload := domain.FileDetails{
		FileName: event.FileName,
		FileSize: event.FileSize,
		FileType: event.FileType,
		FilePath: event.FilePath,
	}
	entry := &domain.AuditLog{
		LogType:      domain.LogTypeFileOperation,
		Level:        domain.LevelInfo,
		Action:       event.Action,
		Message:      fmt.Sprintf("File %s: %s", event.Action, event.FileName),
		UserID:       parseActorID(ctx, event.UserID),
		ResourceType: "file",
		ResourceID:   event.FilePath,
		ResourceName: event.FileName,
		Details:      payload.Details(),
	}
	applyRequestMeta(entry, event.Meta)
	return svc.submit(ctx, entry)
}

func (svc *Service) LogSettingsUpdate(ctx context.Context, event domain.SettingsUpdateEvent) string {
	payload := domain.SettingsDetails{
		Category: event.Category,
		Key:      event.Key,
		OldValue: event.OldValue,
		NewValue: event.NewValue,
	}
	entry := &domain.AuditLog{
		LogType:      domain.LogTypeUserActivity,
		Level:        domain.LevelInfo,
		Action:       domain.ActionSettingsUpdate,
		Message:      fmt.Sprintf("Setting %s updated", payload.ResourceID()),
		UserID:       parseActorID(ctx, event.UserID),
		UserEmail:    event.UserEmail,
		ResourceType: "setting",
		ResourceID:   payload.ResourceID(),
		Details:      payload.Details(),
	}
	applyRequestMeta(entry, event.Meta)
	return svc.submit(ctx, entry)
}

func (svc *Service) LogSecurityEvent(ctx context.Context, event domain.SecurityEvent) string {
	level := event.Level
	if !level.Valid() {
		level = domain.LevelInfo
	}
	entry := &domain.AuditLog{
		LogType:     domain.LogTypeSecurity,
		Level:       level,
		Action:      event.Action,
		Message:     event.Message,
		UserID:      parseActorID(ctx, event.UserID),
		Details:     event.Details,
		IsSensitive: true,
	}
	applyRequestMeta(entry, event.Meta)
	return svc.submit(ctx, entry)
}

// QueryAuditLogs is the filtered, paginated read path. Storage failures are
// logged and counted, and produce an empty result instead of an error; the
// administrative UI sees "no data" either way.
func (svc *Service) QueryAuditLogs(ctx context.Context, opt *domain.QueryAuditLogOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	if opt.Limit <= 0 {
		opt.Limit = domain.DefaultQueryLimit
	}
	if opt.Limit > domain.MaxQueryLimit {
		opt.Limit = domain.MaxQueryLimit
	}
	if opt.Offset < 0 {
		opt.Offset = 0
	}

	if err := svc.Repo.QueryAuditLogs(ctx, opt); err != nil {
		auditQueryFailures.Inc()
		logger.Logger(ctx).Error().Err(err).Msg("audit query failed")
		opt.Result = []*domain.AuditLog{}
	}
	return nil
}

// QueryEmailLogs is the email convenience view: the query scoped to email
// entries, reshaped into the recipient/subject/status projection.
func (svc *Service) QueryEmailLogs(ctx context.Context, opt *domain.QueryAuditLogOptions) ([]*domain.EmailLog, error) {
	if opt == nil {
		opt = &domain.QueryAuditLogOptions{}
	}
	opt.LogTypes = []domain.LogType{domain.LogTypeEmail}
	if err := svc.QueryAuditLogs(ctx, opt); err != nil {
		return nil, err
	}

	out := make([]*domain.EmailLog, 0, len(opt.Result))
	for _, entry := range opt.Result {
		view := &domain.EmailLog{
			ID:      entry.ID.Hex(),
			Level:   entry.Level,
			Message: entry.Message,
			SentAt:  entry.CreatedTime,
		}
		view.Recipient, _ = entry.Details["recipient"].(string)
		view.Subject, _ = entry.Details["subject"].(string)
		view.Status, _ = entry.Details["status"].(string)
		view.ErrorMessage, _ = entry.Details["error"].(string)
		out = append(out, view)
	}
	return out, nil
}

// PurgeExpiredAuditLogs runs one retention sweep and records the outcome as
// a system event.
func (svc *Service) PurgeExpiredAuditLogs(ctx context.Context) (int64, error) {
	deleted, err := svc.Repo.PurgeExpiredAuditLogs(ctx, time.Now().UnixMilli())
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		svc.LogSystemEvent(ctx, domain.SystemEvent{
			Level:   domain.LevelInfo,
			Message: fmt.Sprintf("Retention sweep removed %d expired audit entries", deleted),
			Module:  "audit",
			Details: domain.Details{"deleted": deleted, "action": domain.ActionRetentionSweep},
		})
	}
	return deleted, nil
}
