package logger

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"
)

type Fields map[string]any

// Tax identifiers are personal data and must never reach the log output.
var sensitiveKeys = map[string]struct{}{
	"taxid":  {},
	"tax_id": {},
	"cpf":    {},
}

var base = zap.NewNop()

// Init replaces the package logger. Called once from main; tests and
// library consumers keep the no-op default.
func Init(l *zap.Logger) {
	if l != nil {
		base = l
	}
}

func Info(message string, fields Fields) {
	base.Info(message, zapFields(fields)...)
}

func Error(message string, err error, fields Fields) {
	merged := Fields{}
	for k, v := range fields {
		merged[k] = v
	}
	if err != nil {
		merged["error"] = err.Error()
	}

	base.Error(message, zapFields(merged)...)
}

func SanitizePayload(payload any) any {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "<unavailable>"
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return "<unavailable>"
	}

	return sanitizeValue(data)
}

func zapFields(fields Fields) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		if isSensitiveKey(key) {
			out = append(out, zap.String(key, "******"))
			continue
		}
		out = append(out, zap.Any(key, sanitizeValue(value)))
	}
	return out
}

func sanitizeValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, inner := range typed {
			if isSensitiveKey(key) {
				out[key] = "******"
				continue
			}
			out[key] = sanitizeValue(inner)
		}
		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, sanitizeValue(item))
		}
		return out
	default:
		return value
	}
}

func isSensitiveKey(key string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), "-", ""))
	_, ok := sensitiveKeys[normalized]
	return ok
}
