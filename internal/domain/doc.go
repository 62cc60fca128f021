package domain

// Decoding helpers shared by the document model factories. Documents written
// by the legacy console are loosely typed, so every field read is defensive.

func docString(data map[string]any, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}

func docStringPtr(data map[string]any, key string) *string {
	if s, ok := data[key].(string); ok && s != "" {
		return &s
	}
	return nil
}

func docInt64(data map[string]any, key string, fallback int64) int64 {
	switch n := data[key].(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return fallback
	}
}

func docBool(data map[string]any, key string, fallback bool) bool {
	if b, ok := data[key].(bool); ok {
		return b
	}
	return fallback
}
