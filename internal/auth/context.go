package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc/metadata"
)

type contextKey string

const (
	companyIDKey contextKey = "company_id"
	languageKey  contextKey = "language"

	CompanyIDHeader = "x-company-id"
	LanguageHeader  = "accept-language"
)

// WithCompanyID stores the tenant for the rest of the call chain.
func WithCompanyID(ctx context.Context, companyID string) context.Context {
	return context.WithValue(ctx, companyIDKey, companyID)
}

func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageKey, lang)
}

// GetCompanyID reads the tenant set by the interceptor, falling back to metadata.
func GetCompanyID(ctx context.Context) string {
	if val, ok := ctx.Value(companyIDKey).(string); ok && val != "" {
		return val
	}
	return fromMetadata(ctx, CompanyIDHeader)
}

// GetLanguages returns the caller's preferred languages, most preferred first, as
// sent in accept-language ("fr-CA,fr;q=0.9,en;q=0.8").
func GetLanguages(ctx context.Context) []string {
	raw, ok := ctx.Value(languageKey).(string)
	if !ok || raw == "" {
		raw = fromMetadata(ctx, LanguageHeader)
	}
	if raw == "" {
		return nil
	}
	return []string{raw}
}

func fromMetadata(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if val := md.Get(key); len(val) > 0 {
		return strings.TrimSpace(val[0])
	}
	return ""
}
