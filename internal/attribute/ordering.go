package attribute

import (
	"cmp"
	"slices"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

// Compare orders attributes for display: rows with a sort order come first,
// ascending; equal sort orders and all unordered rows fall back to the English name.
func Compare(a, b model.Attribute) int {
	switch {
	case a.SortOrder != nil && b.SortOrder == nil:
		return -1
	case a.SortOrder == nil && b.SortOrder != nil:
		return 1
	case a.SortOrder != nil && b.SortOrder != nil:
		if c := cmp.Compare(*a.SortOrder, *b.SortOrder); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.NameEn, b.NameEn)
}

// Sort orders attrs in place using Compare. The sort is stable.
func Sort(attrs []model.Attribute) {
	slices.SortStableFunc(attrs, Compare)
}

// OrderBy is the SQL rendition of Compare.
const OrderBy = "(sort_order IS NULL) ASC, sort_order ASC, name_en ASC"
