package domain

import "strconv"

// Details is the open key/value payload stored with an entry. Category
// emitters build it from one of the typed payloads below; the raw map form
// remains available as an escape hatch for forward-compatible extension keys.
type Details map[string]any

// Merge returns d with the extra keys copied in. Existing keys are kept.
func (d Details) Merge(extra Details) Details {
	if len(extra) == 0 {
		return d
	}
	if d == nil {
		d = Details{}
	}
	for k, v := range extra {
		if _, ok := d[k]; !ok {
			d[k] = v
		}
	}
	return d
}

// EmailDetails is the payload shape for email events.
type EmailDetails struct {
	Recipient    string
	Subject      string
	Status       string
	ErrorMessage string
}

func (p EmailDetails) Details() Details {
	d := Details{
		"recipient": p.Recipient,
		"subject":   p.Subject,
		"status":    p.Status,
	}
	if p.ErrorMessage != "" {
		d["error"] = p.ErrorMessage
	}
	return d
}

// FileDetails is the payload shape for file operations.
type FileDetails struct {
	FileName string
	FileSize int64
	FileType string
	FilePath string
}

func (p FileDetails) Details() Details {
	d := Details{"file_name": p.FileName}
	if p.FileSize > 0 {
		d["file_size"] = strconv.FormatInt(p.FileSize, 10)
	}
	if p.FileType != "" {
		d["file_type"] = p.FileType
	}
	if p.FilePath != "" {
		d["file_path"] = p.FilePath
	}
	return d
}

// SettingsDetails captures a before/after pair for one settings key.
type SettingsDetails struct {
	Category string
	Key      string
	OldValue string
	NewValue string
}

func (p SettingsDetails) Details() Details {
	return Details{
		"category":  p.Category,
		"key":       p.Key,
		"old_value": p.OldValue,
		"new_value": p.NewValue,
	}
}

// ResourceID is the conventional "<category>.<key>" form used as the
// resource identifier of settings-update entries.
func (p SettingsDetails) ResourceID() string {
	return p.Category + "." + p.Key
}
