package service

import (
	"context"
	"net/http"
	"strings"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/cyltest/api/domain"
	"github.com/cyltest/api/pkg/logger"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ipHeaderPriority is the fixed order proxy headers are consulted in when
// deriving the client IP. The first non-empty value that is not "unknown"
// wins.
var ipHeaderPriority = []string{
	"x-forwarded-for",
	"x-real-ip",
	"cf-connecting-ip",
	"x-client-ip",
	"x-forwarded",
	"forwarded-for",
	"forwarded",
}

// headerDenylist names request headers never copied into an audit entry.
var headerDenylist = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
	"x-api-key":     {},
}

// RequestMetadata derives the network context of an inbound request. It is
// called synchronously at emit time; the returned value is safe to retain
// after the handler returns.
func RequestMetadata(r *http.Request) *domain.RequestMeta {
	if r == nil {
		return nil
	}
	return &domain.RequestMeta{
		IPAddress: clientIP(r),
		UserAgent: r.Header.Get("User-Agent"),
		Method:    r.Method,
		Path:      r.URL.Path,
		Headers:   sanitizedHeaders(r.Header),
	}
}

func clientIP(r *http.Request) string {
	for _, name := range ipHeaderPriority {
		value := strings.TrimSpace(r.Header.Get(name))
		if name == "x-forwarded-for" && value != "" {
			// First hop of the comma-separated chain is the client.
			value = strings.TrimSpace(strings.Split(value, ",")[0])
		}
		if value == "" || strings.EqualFold(value, "unknown") {
			continue
		}
		return value
	}
	return ""
}

func sanitizedHeaders(h http.Header) map[string]string {
	if len(h) == 0 {
		return nil
	}
	out := make(map[string]string, len(h))
	for name, values := range h {
		if _, denied := headerDenylist[strings.ToLower(name)]; denied {
			continue
		}
		out[strings.ToLower(name)] = strings.Join(values, ", ")
	}
	return out
}

// applyRequestMeta merges derived network fields into the entry. Explicit
// values set by the emitter win over derived ones.
func applyRequestMeta(entry *domain.AuditLog, meta *domain.RequestMeta) {
	if meta == nil {
		return
	}
	if entry.IPAddress == "" {
		entry.IPAddress = meta.IPAddress
	}
	if entry.UserAgent == "" {
		entry.UserAgent = meta.UserAgent
	}
	if entry.RequestMethod == "" {
		entry.RequestMethod = meta.Method
	}
	if entry.RequestPath == "" {
		entry.RequestPath = meta.Path
	}
	if entry.RequestHeaders == nil {
		entry.RequestHeaders = meta.Headers
	}
}

// resolveIdentity fills the actor display fields from the user projection,
// via a TTL cache. Lookup failures leave the fields empty; enrichment never
// fails a write.
func (svc *Service) resolveIdentity(ctx context.Context, entry *domain.AuditLog) {
	if entry.UserID.IsZero() {
		return
	}
	if entry.UserEmail != "" && entry.UserName != "" && entry.UserRole != "" {
		return
	}

	uid := entry.UserID.Hex()
	id, ok := svc.identityCache.Get(uid)
	if !ok {
		opts := &domain.QueryUserOptions{IDs: []bson.ObjectID{entry.UserID}}
		if err := svc.Repo.QueryUsers(ctx, opts); err != nil {
			logger.Logger(ctx).Debug().Err(err).Str("user_id", uid).Msg("audit identity lookup failed")
			return
		}
		if len(opts.Result) == 0 {
			return
		}
		user := opts.Result[0]
		id = identity{email: user.Email, name: user.Name, role: user.Role}
		svc.identityCache.Set(uid, id, cache.WithExpiration(svc.identityTTL))
	}

	if entry.UserEmail == "" {
		entry.UserEmail = id.email
	}
	if entry.UserName == "" {
		entry.UserName = id.name
	}
	if entry.UserRole == "" {
		entry.UserRole = id.role
	}
}
