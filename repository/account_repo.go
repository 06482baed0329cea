package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cyltest/api/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	mongooption "go.mongodb.org/mongo-driver/v2/mongo/options"
)

func (r *repo) CreateUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}

	now := time.Now().UnixMilli()
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	if user.CreatedTime == 0 {
		user.CreatedTime = now
	}
	user.UpdatedTime = now

	res, err := r.db.Collection(userCollection).InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("create user, err: %w", err)
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *repo) UpdateUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	if user.ID.IsZero() {
		return errors.New("user id is required")
	}

	user.UpdatedTime = time.Now().UnixMilli()
	res, err := r.db.Collection(userCollection).ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return fmt.Errorf("update user, err: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) QueryUsers(ctx context.Context, opt *domain.QueryUserOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}

	filter := bson.M{}
	if len(opt.IDs) > 0 {
		filter["_id"] = bson.M{"$in": opt.IDs}
	}
	if len(opt.Emails) > 0 {
		filter["email"] = bson.M{"$in": opt.Emails}
	}

	cursor, err := r.db.Collection(userCollection).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("find users, err: %w", err)
	}

	var result []*domain.User
	if err := cursor.All(ctx, &result); err != nil {
		return fmt.Errorf("decode users, err: %w", err)
	}
	opt.Result = result
	return nil
}

func (r *repo) UpsertSetting(ctx context.Context, setting *domain.Setting) error {
	if setting == nil {
		return errors.New("nil setting")
	}

	now := time.Now().UnixMilli()
	update := bson.M{
		"$set": bson.M{
			"value":       setting.Value,
			"updatedTime": now,
			"updaterID":   setting.UpdaterID,
		},
		"$setOnInsert": bson.M{
			"category":    setting.Category,
			"key":         setting.Key,
			"createdTime": now,
		},
	}

	opts := mongooption.UpdateOne().SetUpsert(true)
	_, err := r.db.Collection(settingCollection).UpdateOne(ctx, bson.M{
		"category": setting.Category,
		"key":      setting.Key,
	}, update, opts)
	if err != nil {
		return fmt.Errorf("upsert setting, err: %w", err)
	}
	return nil
}

func (r *repo) QuerySettings(ctx context.Context, opt *domain.QuerySettingOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}

	filter := bson.M{}
	if len(opt.Categories) > 0 {
		filter["category"] = bson.M{"$in": opt.Categories}
	}
	if len(opt.Keys) > 0 {
		filter["key"] = bson.M{"$in": opt.Keys}
	}

	cursor, err := r.db.Collection(settingCollection).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("find settings, err: %w", err)
	}

	var result []*domain.Setting
	if err := cursor.All(ctx, &result); err != nil {
		return fmt.Errorf("decode settings, err: %w", err)
	}
	opt.Result = result
	return nil
}
