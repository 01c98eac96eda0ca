package core

// IconKey is a symbolic reference into the presentation layer's icon
// catalog. The ledger only stores and looks up keys, never glyphs.
type IconKey string

const (
	IconUtensils     IconKey = "utensils"
	IconBus          IconKey = "bus"
	IconShoppingCart IconKey = "shopping-cart"
	IconFilm         IconKey = "film"
	IconDollarSign   IconKey = "dollar-sign"
	IconMore         IconKey = "more-horizontal"
)

// IconFallback is assigned when a category has no known icon.
const IconFallback = IconMore

func (k IconKey) Valid() bool {
	switch k {
	case IconUtensils, IconBus, IconShoppingCart, IconFilm, IconDollarSign, IconMore:
		return true
	default:
		return false
	}
}

// categoryIcons maps the suggested category names to their icons.
// Thai names come from the original category set; the English aliases
// map to the same keys.
var categoryIcons = map[string]IconKey{
	"อาหาร":    IconUtensils,
	"เดินทาง":  IconBus,
	"ชอปปิง":   IconShoppingCart,
	"บันเทิง":  IconFilm,
	"เงินเดือน": IconDollarSign,
	"อื่นๆ":    IconMore,

	"Food":          IconUtensils,
	"Transport":     IconBus,
	"Shopping":      IconShoppingCart,
	"Entertainment": IconFilm,
	"Salary":        IconDollarSign,
	"Other":         IconMore,
}

// IconForCategory returns the icon key for a category name, falling
// back to the generic icon for unrecognized categories.
func IconForCategory(name string) IconKey {
	if k, ok := categoryIcons[name]; ok {
		return k
	}
	return IconFallback
}

// CategorySuggestion pairs a suggested category name with its icon.
type CategorySuggestion struct {
	Name string
	Icon IconKey
}

// SuggestedCategories returns the fixed category suggestion list in
// display order.
func SuggestedCategories() []CategorySuggestion {
	return []CategorySuggestion{
		{Name: "อาหาร", Icon: IconUtensils},
		{Name: "เดินทาง", Icon: IconBus},
		{Name: "ชอปปิง", Icon: IconShoppingCart},
		{Name: "บันเทิง", Icon: IconFilm},
		{Name: "เงินเดือน", Icon: IconDollarSign},
		{Name: "อื่นๆ", Icon: IconMore},
	}
}
