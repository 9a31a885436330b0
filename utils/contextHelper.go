package utils

import "context"

type contextKey string

const correlationIdKey contextKey = "correlationId"

func SetCorrelationIdInContext(ctx context.Context, correlationId string) context.Context {
	return context.WithValue(ctx, correlationIdKey, correlationId)
}

func GetCorrelationIdFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(correlationIdKey).(string); ok {
		return v
	}
	return ""
}
