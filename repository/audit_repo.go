package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/cyltest/api/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	mongooption "go.mongodb.org/mongo-driver/v2/mongo/options"
)

func (r *repo) CreateAuditLog(ctx context.Context, entry *domain.AuditLog) error {
	if entry == nil {
		return errors.New("nil audit log")
	}
	if entry.ID.IsZero() {
		entry.ID = bson.NewObjectID()
	}
	if entry.CreatedTime == 0 {
		entry.CreatedTime = time.Now().UnixMilli()
	}

	res, err := r.db.Collection(auditLogCollection).InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("create audit log, err: %w", err)
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		entry.ID = oid
	}
	return nil
}

func (r *repo) QueryAuditLogs(ctx context.Context, opt *domain.QueryAuditLogOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}

	filter := bson.M{}
	if len(opt.LogTypes) > 0 {
		filter["log_type"] = bson.M{"$in": opt.LogTypes}
	}
	if len(opt.Levels) > 0 {
		filter["level"] = bson.M{"$in": opt.Levels}
	}
	if len(opt.UserIDs) > 0 {
		filter["user_id"] = bson.M{"$in": opt.UserIDs}
	}
	if len(opt.Actions) > 0 {
		filter["action"] = bson.M{"$in": opt.Actions}
	}
	if len(opt.CorrelationIDs) > 0 {
		filter["correlation_id"] = bson.M{"$in": opt.CorrelationIDs}
	}

	if opt.CreatedGTE > 0 || opt.CreatedLTE > 0 {
		timeFilter := bson.M{}
		if opt.CreatedGTE > 0 {
			timeFilter["$gte"] = opt.CreatedGTE
		}
		if opt.CreatedLTE > 0 {
			timeFilter["$lte"] = opt.CreatedLTE
		}
		filter[defaultTimestampField] = timeFilter
	}

	if opt.Search != "" {
		pattern := bson.M{"$regex": regexp.QuoteMeta(opt.Search), "$options": "i"}
		if opt.SearchActorFields {
			filter["$or"] = []bson.M{
				{"message": pattern},
				{"action": pattern},
				{"user_name": pattern},
				{"user_email": pattern},
			}
		} else {
			filter["message"] = pattern
		}
	}

	findOpts := mongooption.Find().
		SetSort(bson.D{{Key: defaultTimestampField, Value: -1}, {Key: "_id", Value: -1}})
	if opt.Limit > 0 {
		findOpts = findOpts.SetLimit(opt.Limit)
	}
	if opt.Offset > 0 {
		findOpts = findOpts.SetSkip(opt.Offset)
	}

	cursor, err := r.db.Collection(auditLogCollection).Find(ctx, filter, findOpts)
	if err != nil {
		return fmt.Errorf("find audit logs, err: %w", err)
	}

	var result []*domain.AuditLog
	if err := cursor.All(ctx, &result); err != nil {
		return fmt.Errorf("decode audit logs, err: %w", err)
	}
	opt.Result = result
	return nil
}

// PurgeExpiredAuditLogs deletes non-sensitive entries whose created_time plus
// retention_days lies before now. Sensitive entries are left for compliance
// tooling.
func (r *repo) PurgeExpiredAuditLogs(ctx context.Context, now int64) (int64, error) {
	const dayMsec = int64(24 * time.Hour / time.Millisecond)

	filter := bson.M{
		"retention_days": bson.M{"$gt": 0},
		"is_sensitive":   bson.M{"$ne": true},
		"$expr": bson.M{
			"$lt": bson.A{
				bson.M{"$add": bson.A{
					"$created_time",
					bson.M{"$multiply": bson.A{"$retention_days", dayMsec}},
				}},
				now,
			},
		},
	}

	res, err := r.db.Collection(auditLogCollection).DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("purge audit logs, err: %w", err)
	}
	return res.DeletedCount, nil
}
