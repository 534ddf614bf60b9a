package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/metadata"
)

func TestGetCompanyID(t *testing.T) {
	assert.Empty(t, GetCompanyID(context.Background()))

	md := metadata.Pairs(CompanyIDHeader, " acme ")
	ctx := metadata.NewIncomingContext(context.Background(), md)
	assert.Equal(t, "acme", GetCompanyID(ctx))

	ctx = WithCompanyID(ctx, "override")
	assert.Equal(t, "override", GetCompanyID(ctx))
}

func TestGetLanguages(t *testing.T) {
	assert.Nil(t, GetLanguages(context.Background()))

	md := metadata.Pairs(LanguageHeader, "fr-CA,fr;q=0.9")
	ctx := metadata.NewIncomingContext(context.Background(), md)
	assert.Equal(t, []string{"fr-CA,fr;q=0.9"}, GetLanguages(ctx))

	assert.Equal(t, []string{"en"}, GetLanguages(WithLanguage(ctx, "en")))
}
