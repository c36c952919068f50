package graph

import "time"

// Argument helpers. Presence in the args map is what drives partial updates:
// an omitted argument keeps the stored value, a supplied one is applied even
// when it is the zero value. An explicit null counts as omitted.

func stringArg(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

func intArg(args map[string]interface{}, key string) int {
	i, _ := args[key].(int)
	return i
}

func floatArg(args map[string]interface{}, key string) float64 {
	switch v := args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func timeArg(args map[string]interface{}, key string) time.Time {
	t, _ := args[key].(time.Time)
	return t
}

func optString(args map[string]interface{}, key string) *string {
	if v, ok := args[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return &s
		}
	}
	return nil
}

func optInt(args map[string]interface{}, key string) *int {
	if v, ok := args[key]; ok && v != nil {
		if i, ok := v.(int); ok {
			return &i
		}
	}
	return nil
}

func optFloat(args map[string]interface{}, key string) *float64 {
	if v, ok := args[key]; ok && v != nil {
		switch n := v.(type) {
		case float64:
			return &n
		case int:
			f := float64(n)
			return &f
		}
	}
	return nil
}

func optBool(args map[string]interface{}, key string) *bool {
	if v, ok := args[key]; ok && v != nil {
		if b, ok := v.(bool); ok {
			return &b
		}
	}
	return nil
}

func optTime(args map[string]interface{}, key string) *time.Time {
	if v, ok := args[key]; ok && v != nil {
		if t, ok := v.(time.Time); ok {
			return &t
		}
	}
	return nil
}
