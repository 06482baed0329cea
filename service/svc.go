package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"time"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/cyltest/api/config"
	"github.com/cyltest/api/domain"
	"github.com/cyltest/api/pkg/logger"
	"go.uber.org/fx"
)

type Params struct {
	fx.In
	Repo        domain.Repository
	KeyConfig   config.KeyConfig
	AuditConfig config.AuditConfig
}

// identity is the cached projection of a user's display fields used by the
// audit enricher.
type identity struct {
	email string
	name  string
	role  string
}

type Service struct {
	Repo          domain.Repository
	jwtPrivateKey *rsa.PrivateKey

	auditCfg      config.AuditConfig
	identityCache *cache.Cache[string, identity]
	identityTTL   time.Duration

	queue  chan *domain.AuditLog
	stopCh chan struct{}
	doneCh chan struct{}
}

func NewService(params Params) (domain.Service, error) {
	jwtPrivateKey, err := initRSAPrivateKey(string(params.KeyConfig.RsaPrivateKeyPem))
	if err != nil {
		return nil, fmt.Errorf("initialize RSA private key: %w", err)
	}

	ttl := time.Duration(params.AuditConfig.IdentityCacheTTLSec) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	svc := &Service{
		Repo:          params.Repo,
		jwtPrivateKey: jwtPrivateKey,
		auditCfg:      params.AuditConfig,
		identityCache: cache.New[string, identity](),
		identityTTL:   ttl,
	}
	// The queue is fixed at construction so emitters never observe it
	// changing; StartAuditWriter only starts the draining goroutine.
	if params.AuditConfig.QueueSize > 0 {
		svc.queue = make(chan *domain.AuditLog, params.AuditConfig.QueueSize)
	}

	return svc, nil
}

func initRSAPrivateKey(pemStr string) (*rsa.PrivateKey, error) {
	if pemStr == "" {
		// No key configured: issue tokens with an ephemeral key. They stop
		// verifying across restarts, which is fine outside production.
		logger.Logger(context.Background()).Warn().Msg("no RSA private key configured, generating an ephemeral one")
		return rsa.GenerateKey(rand.Reader, 2048)
	}

	block, _ := pem.Decode([]byte(pemStr))
	if block == nil {
		return nil, fmt.Errorf("failed to decode PEM block containing private key")
	}

	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		// Try PKCS8 format
		keyInterface, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %v", err)
		}
		var ok bool
		key, ok = keyInterface.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("private key is not RSA")
		}
	}
	return key, nil
}
