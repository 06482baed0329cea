package service

import (
	"context"
	"errors"
	"time"

	"github.com/cyltest/api/domain"
	"github.com/cyltest/api/pkg/logger"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// StartAuditWriter starts the bounded background writer. With a queue size
// of zero the writer stays off and every emit persists synchronously, which
// the tests rely on. Entries accepted before the goroutine starts sit in the
// queue and drain once it does.
func (svc *Service) StartAuditWriter(ctx context.Context) error {
	if svc.queue == nil {
		return nil
	}
	if svc.stopCh != nil {
		return errors.New("audit writer already started")
	}
	svc.stopCh = make(chan struct{})
	svc.doneCh = make(chan struct{})
	go svc.runWriter()
	logger.Logger(ctx).Info().Int("queue_size", svc.auditCfg.QueueSize).Msg("audit writer started")
	return nil
}

func (svc *Service) runWriter() {
	bgCtx := context.Background()
	defer close(svc.doneCh)
	for {
		select {
		case entry := <-svc.queue:
			svc.persist(bgCtx, entry)
		case <-svc.stopCh:
			// Drain what was accepted before shutdown.
			for {
				select {
				case entry := <-svc.queue:
					svc.persist(bgCtx, entry)
				default:
					return
				}
			}
		}
	}
}

func (svc *Service) StopAuditWriter(ctx context.Context) error {
	if svc.stopCh == nil {
		return nil
	}
	close(svc.stopCh)
	select {
	case <-svc.doneCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// submit finalizes an emitter-built entry and hands it to the writer. The
// returned id is the pre-assigned entry id, or "" when the entry was
// rejected or dropped. Callers treat logging as fire-and-forget; submit
// never blocks on a full queue and never surfaces an error.
func (svc *Service) submit(ctx context.Context, entry *domain.AuditLog) string {
	if !entry.LogType.Valid() {
		auditEventsDropped.WithLabelValues("invalid_log_type").Inc()
		logger.Logger(ctx).Error().Str("log_type", string(entry.LogType)).Str("action", entry.Action).
			Msg("rejecting audit entry with unknown log type")
		return ""
	}
	if !entry.Level.Valid() {
		entry.Level = domain.LevelInfo
	}
	if entry.RetentionDays == 0 {
		entry.RetentionDays = svc.auditCfg.DefaultRetentionDays
	}
	if entry.CorrelationID == "" {
		entry.CorrelationID = domain.CorrelationIDFromContext(ctx)
	}
	entry.ID = bson.NewObjectID()
	entry.CreatedTime = time.Now().UnixMilli()

	if svc.queue == nil {
		return svc.persist(ctx, entry)
	}

	select {
	case svc.queue <- entry:
		return entry.ID.Hex()
	default:
		auditEventsDropped.WithLabelValues("queue_full").Inc()
		logger.Logger(ctx).Warn().Str("action", entry.Action).Msg("audit queue full, dropping entry")
		return ""
	}
}

// persist enriches and stores one entry. Storage failures are logged to the
// operational channel and surface only as an empty id: an audit write must
// never fail the business operation that triggered it.
func (svc *Service) persist(ctx context.Context, entry *domain.AuditLog) string {
	svc.resolveIdentity(ctx, entry)
	if err := svc.Repo.CreateAuditLog(ctx, entry); err != nil {
		auditEventsDropped.WithLabelValues("storage").Inc()
		logger.Logger(ctx).Error().Err(err).
			Str("log_type", string(entry.LogType)).
			Str("action", entry.Action).
			Msg("audit write failed")
		return ""
	}
	auditEventsWritten.WithLabelValues(string(entry.LogType)).Inc()
	return entry.ID.Hex()
}
