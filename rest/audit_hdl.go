package rest

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cyltest/api/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// AuditLogEntry is the REST projection of one audit entry.
type AuditLogEntry struct {
	ID             string            `json:"id"`
	CreatedTime    int64             `json:"createdTime"`
	LogType        string            `json:"logType"`
	Level          string            `json:"level"`
	Action         string            `json:"action,omitempty"`
	Message        string            `json:"message"`
	UserID         string            `json:"userId,omitempty"`
	UserEmail      string            `json:"userEmail,omitempty"`
	UserName       string            `json:"userName,omitempty"`
	UserRole       string            `json:"userRole,omitempty"`
	SessionID      string            `json:"sessionId,omitempty"`
	IPAddress      string            `json:"ipAddress,omitempty"`
	UserAgent      string            `json:"userAgent,omitempty"`
	RequestMethod  string            `json:"requestMethod,omitempty"`
	RequestPath    string            `json:"requestPath,omitempty"`
	ResourceType   string            `json:"resourceType,omitempty"`
	ResourceID     string            `json:"resourceId,omitempty"`
	ResourceName   string            `json:"resourceName,omitempty"`
	Details        domain.Details    `json:"details,omitempty"`
	Module         string            `json:"module,omitempty"`
	CorrelationID  string            `json:"correlationId,omitempty"`
	RequestHeaders map[string]string `json:"requestHeaders,omitempty"`
}

type QueryAuditLogsResponse struct {
	Logs   []*AuditLogEntry `json:"logs"`
	Limit  int64            `json:"limit"`
	Offset int64            `json:"offset"`
}

// parseAuditQuery translates query string parameters into query options.
// Unknown filter values are rejected up front so a typo does not silently
// return an unfiltered page.
func parseAuditQuery(values url.Values) (*domain.QueryAuditLogOptions, error) {
	opt := &domain.QueryAuditLogOptions{}

	for _, raw := range values["log_type"] {
		lt := domain.LogType(raw)
		if !lt.Valid() {
			return nil, domain.ErrInvalidLogType
		}
		opt.LogTypes = append(opt.LogTypes, lt)
	}
	for _, raw := range values["level"] {
		lvl := domain.Level(raw)
		if !lvl.Valid() {
			return nil, domain.ErrInvalidLevel
		}
		opt.Levels = append(opt.Levels, lvl)
	}
	for _, raw := range values["user_id"] {
		uid, err := bson.ObjectIDFromHex(raw)
		if err != nil {
			return nil, err
		}
		opt.UserIDs = append(opt.UserIDs, uid)
	}
	opt.Actions = values["action"]
	opt.CorrelationIDs = values["correlation_id"]

	if raw := values.Get("start_date"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, err
		}
		opt.CreatedGTE = t.UnixMilli()
	}
	if raw := values.Get("end_date"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, err
		}
		opt.CreatedLTE = t.UnixMilli()
	}

	opt.Search = values.Get("search")
	// administrative views search actor fields too
	opt.SearchActorFields = true

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		opt.Limit = limit
	}
	if raw := values.Get("offset"); raw != "" {
		offset, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		opt.Offset = offset
	}
	return opt, nil
}

func (h *Handler) QueryAuditLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	opt, err := parseAuditQuery(r.URL.Query())
	if err != nil {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	if err := h.Svc.QueryAuditLogs(ctx, opt); err != nil {
		h.HandleError(ctx, w, err)
		return
	}

	resp := QueryAuditLogsResponse{
		Logs:   make([]*AuditLogEntry, len(opt.Result)),
		Limit:  opt.Limit,
		Offset: opt.Offset,
	}
	for i, entry := range opt.Result {
		resp.Logs[i] = convertAuditLogToEntry(entry)
	}
	response := NewSuccessResponse(&resp)
	h.JSONResponse(ctx, w, http.StatusOK, response)
}

// QuerySystemLogs is the system-entry convenience view.
func (h *Handler) QuerySystemLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	opt, err := parseAuditQuery(r.URL.Query())
	if err != nil {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}
	opt.LogTypes = []domain.LogType{domain.LogTypeSystem}

	if err := h.Svc.QueryAuditLogs(ctx, opt); err != nil {
		h.HandleError(ctx, w, err)
		return
	}

	resp := QueryAuditLogsResponse{
		Logs:   make([]*AuditLogEntry, len(opt.Result)),
		Limit:  opt.Limit,
		Offset: opt.Offset,
	}
	for i, entry := range opt.Result {
		resp.Logs[i] = convertAuditLogToEntry(entry)
	}
	response := NewSuccessResponse(&resp)
	h.JSONResponse(ctx, w, http.StatusOK, response)
}

type EmailLogEntry struct {
	ID           string `json:"id"`
	Recipient    string `json:"recipient"`
	Subject      string `json:"subject"`
	Status       string `json:"status"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	Level        string `json:"level"`
	Message      string `json:"message"`
	SentAt       int64  `json:"sentAt"`
}

type QueryEmailLogsResponse struct {
	Logs []*EmailLogEntry `json:"logs"`
}

func (h *Handler) QueryEmailLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	opt, err := parseAuditQuery(r.URL.Query())
	if err != nil {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	emailLogs, err := h.Svc.QueryEmailLogs(ctx, opt)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}

	resp := QueryEmailLogsResponse{
		Logs: make([]*EmailLogEntry, len(emailLogs)),
	}
	for i, entry := range emailLogs {
		resp.Logs[i] = &EmailLogEntry{
			ID:           entry.ID,
			Recipient:    entry.Recipient,
			Subject:      entry.Subject,
			Status:       entry.Status,
			ErrorMessage: entry.ErrorMessage,
			Level:        string(entry.Level),
			Message:      entry.Message,
			SentAt:       entry.SentAt,
		}
	}
	response := NewSuccessResponse(&resp)
	h.JSONResponse(ctx, w, http.StatusOK, response)
}

func convertAuditLogToEntry(entry *domain.AuditLog) *AuditLogEntry {
	out := &AuditLogEntry{
		ID:             entry.ID.Hex(),
		CreatedTime:    entry.CreatedTime,
		LogType:        string(entry.LogType),
		Level:          string(entry.Level),
		Action:         entry.Action,
		Message:        entry.Message,
		UserEmail:      entry.UserEmail,
		UserName:       entry.UserName,
		UserRole:       entry.UserRole,
		SessionID:      entry.SessionID,
		IPAddress:      entry.IPAddress,
		UserAgent:      entry.UserAgent,
		RequestMethod:  entry.RequestMethod,
		RequestPath:    entry.RequestPath,
		ResourceType:   entry.ResourceType,
		ResourceID:     entry.ResourceID,
		ResourceName:   entry.ResourceName,
		Details:        entry.Details,
		Module:         entry.Module,
		CorrelationID:  entry.CorrelationID,
		RequestHeaders: entry.RequestHeaders,
	}
	if !entry.UserID.IsZero() {
		out.UserID = entry.UserID.Hex()
	}
	return out
}
