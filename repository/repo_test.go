package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cyltest/api/config"
	"github.com/cyltest/api/domain"
	"github.com/cyltest/api/pkg/container"
	"github.com/cyltest/api/pkg/logger"
	"github.com/cyltest/api/pkg/util"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

type RepositoryTestSuite struct {
	suite.Suite
	ctx            context.Context
	repo           *repo
	containerBuild *container.ContainerBuilder
	mongoCfg       config.MongoDBConfig
}

func (suite *RepositoryTestSuite) SetupSuite() {
	logger.InitLogger()
	suite.ctx = context.Background()

	builder, err := container.NewContainerBuilder("")
	suite.Require().NoError(err, "init container builder")
	suite.containerBuild = builder

	cfg, err := config.InitAPIConfig("api_config.test", config.GetAbsPath("config"))
	suite.Require().NoError(err, "load test config")

	conn, err := container.RunMongoContainer(builder, "cyltest_repo_test_mongo", container.MongoContainerOptions{
		Username: cfg.MongoDB.User,
		Password: string(cfg.MongoDB.Password),
		Database: cfg.MongoDB.Database,
		Port:     cfg.MongoDB.Port,
	})
	suite.Require().NoError(err, "start mongo container")

	cfg.MongoDB.Host = conn.Host
	cfg.MongoDB.Port = conn.Port
	cfg.MongoDB.User = conn.Username
	cfg.MongoDB.Password = config.SecretValue(conn.Password)
	cfg.MongoDB.Database = conn.Database
	suite.mongoCfg = cfg.MongoDB

	repoInst, err := NewRepository(Params{MongoConfig: cfg.MongoDB})
	suite.Require().NoError(err, "init repository")

	r, ok := repoInst.(*repo)
	suite.Require().True(ok, "repository type assertion")
	suite.repo = r
}

func (suite *RepositoryTestSuite) TearDownSuite() {
	if suite.containerBuild != nil {
		err := suite.containerBuild.PruneAll()
		suite.Require().NoError(err, "prune containers")
	}
}

func (suite *RepositoryTestSuite) SetupTest() {
	suite.Require().NotNil(suite.repo, "repository not initialized")
	err := util.MongoCleanup(suite.repo.client, suite.mongoCfg.Database)
	suite.Require().NoError(err, "cleanup database")
}

func (suite *RepositoryTestSuite) createAuditLog(entry *domain.AuditLog) {
	err := suite.repo.CreateAuditLog(suite.ctx, entry)
	suite.Require().NoError(err, "create audit log")
}

func (suite *RepositoryTestSuite) TestCreateAuditLogAssignsIDAndTime() {
	entry := &domain.AuditLog{
		LogType: domain.LogTypeSystem,
		Level:   domain.LevelInfo,
		Message: "startup",
	}
	suite.createAuditLog(entry)
	suite.False(entry.ID.IsZero(), "id should be assigned")
	suite.NotZero(entry.CreatedTime, "created time should be assigned")
}

func (suite *RepositoryTestSuite) TestQueryAuditLogsByLogType() {
	suite.createAuditLog(&domain.AuditLog{LogType: domain.LogTypeAuth, Level: domain.LevelInfo, Action: domain.ActionLogin, Message: "login"})
	suite.createAuditLog(&domain.AuditLog{LogType: domain.LogTypeEmail, Level: domain.LevelInfo, Action: domain.ActionEmailSend, Message: "mail"})
	suite.createAuditLog(&domain.AuditLog{LogType: domain.LogTypeAuth, Level: domain.LevelWarning, Action: domain.ActionLoginFailed, Message: "failed"})

	opts := &domain.QueryAuditLogOptions{LogTypes: []domain.LogType{domain.LogTypeAuth}}
	err := suite.repo.QueryAuditLogs(suite.ctx, opts)
	suite.Require().NoError(err, "query audit logs")
	suite.Len(opts.Result, 2, "expect only auth entries")
	for _, entry := range opts.Result {
		suite.Equal(domain.LogTypeAuth, entry.LogType)
	}
}

func (suite *RepositoryTestSuite) TestQueryAuditLogsByLevelAndAction() {
	suite.createAuditLog(&domain.AuditLog{LogType: domain.LogTypeAuth, Level: domain.LevelWarning, Action: domain.ActionLoginFailed, Message: "failed"})
	suite.createAuditLog(&domain.AuditLog{LogType: domain.LogTypeAuth, Level: domain.LevelInfo, Action: domain.ActionLogin, Message: "ok"})

	opts := &domain.QueryAuditLogOptions{Levels: []domain.Level{domain.LevelWarning}}
	err := suite.repo.QueryAuditLogs(suite.ctx, opts)
	suite.Require().NoError(err, "query by level")
	suite.Len(opts.Result, 1, "expect one warning entry")

	opts = &domain.QueryAuditLogOptions{Actions: []string{domain.ActionLogin}}
	err = suite.repo.QueryAuditLogs(suite.ctx, opts)
	suite.Require().NoError(err, "query by action")
	suite.Len(opts.Result, 1, "expect one login entry")
	suite.Equal(domain.ActionLogin, opts.Result[0].Action)
}

func (suite *RepositoryTestSuite) TestQueryAuditLogsPagination() {
	base := time.Now().UnixMilli()
	for i := 0; i < 120; i++ {
		suite.createAuditLog(&domain.AuditLog{
			LogType:     domain.LogTypeUserActivity,
			Level:       domain.LevelInfo,
			Action:      domain.ActionUserUpdate,
			Message:     fmt.Sprintf("entry %03d", i),
			CreatedTime: base + int64(i),
		})
	}

	first := &domain.QueryAuditLogOptions{Limit: 50}
	err := suite.repo.QueryAuditLogs(suite.ctx, first)
	suite.Require().NoError(err, "first page")
	suite.Len(first.Result, 50, "first page size")

	second := &domain.QueryAuditLogOptions{Limit: 50, Offset: 50}
	err = suite.repo.QueryAuditLogs(suite.ctx, second)
	suite.Require().NoError(err, "second page")
	suite.Len(second.Result, 50, "second page size")

	// newest first, pages must not overlap
	suite.Equal("entry 119", first.Result[0].Message, "newest entry first")
	seen := map[string]bool{}
	for _, entry := range first.Result {
		seen[entry.Message] = true
	}
	for _, entry := range second.Result {
		suite.False(seen[entry.Message], "pages should not overlap: %s", entry.Message)
	}
}

func (suite *RepositoryTestSuite) TestQueryAuditLogsByCorrelationID() {
	corrID := domain.NewCorrelationID()
	suite.createAuditLog(&domain.AuditLog{LogType: domain.LogTypeAuth, Level: domain.LevelInfo, Message: "step 1", CorrelationID: corrID})
	suite.createAuditLog(&domain.AuditLog{LogType: domain.LogTypeUserActivity, Level: domain.LevelInfo, Message: "step 2", CorrelationID: corrID})
	suite.createAuditLog(&domain.AuditLog{LogType: domain.LogTypeAuth, Level: domain.LevelInfo, Message: "other", CorrelationID: domain.NewCorrelationID()})

	opts := &domain.QueryAuditLogOptions{CorrelationIDs: []string{corrID}}
	err := suite.repo.QueryAuditLogs(suite.ctx, opts)
	suite.Require().NoError(err, "query by correlation id")
	suite.Len(opts.Result, 2, "expect the correlated pair")
}

func (suite *RepositoryTestSuite) TestQueryAuditLogsSearch() {
	suite.createAuditLog(&domain.AuditLog{LogType: domain.LogTypeUserActivity, Level: domain.LevelInfo, Message: "Certificate 1042 issued"})
	suite.createAuditLog(&domain.AuditLog{LogType: domain.LogTypeUserActivity, Level: domain.LevelInfo, Message: "Login", UserName: "Certificate Clerk"})
	suite.createAuditLog(&domain.AuditLog{LogType: domain.LogTypeUserActivity, Level: domain.LevelInfo, Message: "unrelated"})

	opts := &domain.QueryAuditLogOptions{Search: "certificate"}
	err := suite.repo.QueryAuditLogs(suite.ctx, opts)
	suite.Require().NoError(err, "message search")
	suite.Len(opts.Result, 1, "message-only search is case-insensitive")

	opts = &domain.QueryAuditLogOptions{Search: "certificate", SearchActorFields: true}
	err = suite.repo.QueryAuditLogs(suite.ctx, opts)
	suite.Require().NoError(err, "actor search")
	suite.Len(opts.Result, 2, "actor search also matches user_name")
}

func (suite *RepositoryTestSuite) TestQueryAuditLogsTimeRange() {
	base := time.Now().UnixMilli()
	suite.createAuditLog(&domain.AuditLog{LogType: domain.LogTypeSystem, Level: domain.LevelInfo, Message: "old", CreatedTime: base - 10_000})
	suite.createAuditLog(&domain.AuditLog{LogType: domain.LogTypeSystem, Level: domain.LevelInfo, Message: "recent", CreatedTime: base})

	opts := &domain.QueryAuditLogOptions{CreatedGTE: base - 5_000}
	err := suite.repo.QueryAuditLogs(suite.ctx, opts)
	suite.Require().NoError(err, "query by time range")
	suite.Len(opts.Result, 1, "expect only the recent entry")
	suite.Equal("recent", opts.Result[0].Message)
}

func (suite *RepositoryTestSuite) TestPurgeExpiredAuditLogs() {
	now := time.Now().UnixMilli()
	dayMsec := int64(24 * time.Hour / time.Millisecond)

	// expired, 30-day horizon passed 40 days ago
	suite.createAuditLog(&domain.AuditLog{
		LogType: domain.LogTypeSystem, Level: domain.LevelInfo, Message: "expired",
		CreatedTime: now - 40*dayMsec, RetentionDays: 30,
	})
	// expired but sensitive, must survive
	suite.createAuditLog(&domain.AuditLog{
		LogType: domain.LogTypeSecurity, Level: domain.LevelWarning, Message: "sensitive",
		CreatedTime: now - 40*dayMsec, RetentionDays: 30, IsSensitive: true,
	})
	// inside its horizon
	suite.createAuditLog(&domain.AuditLog{
		LogType: domain.LogTypeSystem, Level: domain.LevelInfo, Message: "fresh",
		CreatedTime: now - 1*dayMsec, RetentionDays: 30,
	})
	// no horizon set, never purged
	suite.createAuditLog(&domain.AuditLog{
		LogType: domain.LogTypeSystem, Level: domain.LevelInfo, Message: "keeper",
		CreatedTime: now - 400*dayMsec,
	})

	deleted, err := suite.repo.PurgeExpiredAuditLogs(suite.ctx, now)
	suite.Require().NoError(err, "purge expired")
	suite.EqualValues(1, deleted, "only the expired non-sensitive entry goes")

	opts := &domain.QueryAuditLogOptions{}
	err = suite.repo.QueryAuditLogs(suite.ctx, opts)
	suite.Require().NoError(err, "query remaining")
	suite.Len(opts.Result, 3, "the other entries survive")
}

func (suite *RepositoryTestSuite) TestCreateAndQueryUser() {
	user := &domain.User{
		Email:    "inspector@cyltest.local",
		Name:     "Inspector",
		Role:     domain.InspectorRole,
		Password: domain.EncryptedPassword("secret"),
		Status:   domain.UserStatusActive,
	}
	err := suite.repo.CreateUser(suite.ctx, user)
	suite.Require().NoError(err, "create user")
	suite.NotZero(user.ID, "user id should be assigned")

	opts := &domain.QueryUserOptions{Emails: []string{user.Email}}
	err = suite.repo.QueryUsers(suite.ctx, opts)
	suite.Require().NoError(err, "query users")
	suite.Len(opts.Result, 1, "expect one user")
	suite.Equal(user.Email, opts.Result[0].Email, "email should match")

	ok, err := opts.Result[0].Password.Cmp("secret")
	suite.Require().NoError(err, "compare password")
	suite.True(ok, "stored password hash should verify")
}

func (suite *RepositoryTestSuite) TestUpdateUserStatus() {
	user := &domain.User{
		Email:    "update@cyltest.local",
		Password: domain.EncryptedPassword("secret"),
		Status:   domain.UserStatusActive,
	}
	err := suite.repo.CreateUser(suite.ctx, user)
	suite.Require().NoError(err, "create user")

	user.Status = domain.UserStatusInactive
	err = suite.repo.UpdateUser(suite.ctx, user)
	suite.Require().NoError(err, "update user")

	opts := &domain.QueryUserOptions{IDs: []bson.ObjectID{user.ID}}
	err = suite.repo.QueryUsers(suite.ctx, opts)
	suite.Require().NoError(err, "query users by id")
	suite.Len(opts.Result, 1, "expect one user after update")
	suite.Equal(domain.UserStatusInactive, opts.Result[0].Status, "status should be updated")

	missing := &domain.User{BaseEntity: domain.BaseEntity{ID: bson.NewObjectID()}}
	err = suite.repo.UpdateUser(suite.ctx, missing)
	suite.ErrorIs(err, domain.ErrNotFound, "updating a missing user fails")
}

func (suite *RepositoryTestSuite) TestUpsertAndQuerySetting() {
	setting := &domain.Setting{Category: "email", Key: "smtp_port", Value: "25"}
	err := suite.repo.UpsertSetting(suite.ctx, setting)
	suite.Require().NoError(err, "insert setting")

	setting.Value = "587"
	err = suite.repo.UpsertSetting(suite.ctx, setting)
	suite.Require().NoError(err, "update setting")

	opts := &domain.QuerySettingOptions{Categories: []string{"email"}, Keys: []string{"smtp_port"}}
	err = suite.repo.QuerySettings(suite.ctx, opts)
	suite.Require().NoError(err, "query settings")
	suite.Len(opts.Result, 1, "upsert should not duplicate")
	suite.Equal("587", opts.Result[0].Value, "latest value wins")
}
