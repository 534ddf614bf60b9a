package attribute

import (
	"strings"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

func ValidateKind(kind model.AttributeKind) error {
	if !kind.Valid() {
		return apperror.InvalidArgument("attribute.invalid_kind",
			map[string]interface{}{"Kind": string(kind)}, "invalid attribute kind %q", kind)
	}
	return nil
}

// Validate checks the fields callers must always supply. Both language variants are
// mandatory; nothing is inferred.
func Validate(a *model.Attribute) error {
	if strings.TrimSpace(a.NameEn) == "" || strings.TrimSpace(a.NameFr) == "" || strings.TrimSpace(a.AttributeType) == "" {
		return apperror.InvalidArgument("attribute.invalid", nil, "attribute requires name_en, name_fr and attribute_type")
	}
	return nil
}
