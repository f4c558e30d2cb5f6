package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Render turns the backend's raw product list into the plaintext catalog
// resource. The product schema is owned by the backend; only the fields named
// below are read, everything else is ignored.
func Render(products json.RawMessage) string {
	var b strings.Builder
	b.WriteString("=== CATALOGUE ECCBC ===\n\n")

	parsed := gjson.ParseBytes(products)
	if !parsed.IsArray() {
		return b.String()
	}

	parsed.ForEach(func(_, product gjson.Result) bool {
		fmt.Fprintf(&b, "• %s (Code: %s)\n",
			stringOr(product, "name", "N/A"),
			stringOr(product, "code", "N/A"))
		if nameAr := product.Get("name_ar"); nameAr.Exists() && nameAr.String() != "" {
			fmt.Fprintf(&b, "  العربية: %s\n", nameAr.String())
		}
		fmt.Fprintf(&b, "  Prix: %s MAD\n", stringOr(product, "price", "0"))
		fmt.Fprintf(&b, "  Stock: %s %s\n",
			stringOr(product, "available_quantity", "0"),
			stringOr(product, "unit_type", "unités"))
		fmt.Fprintf(&b, "  Format: %s\n\n", stringOr(product, "unit_size", "Standard"))
		return true
	})

	return b.String()
}

func stringOr(product gjson.Result, key, fallback string) string {
	value := product.Get(key)
	if !value.Exists() || value.Type == gjson.Null || value.String() == "" {
		return fallback
	}
	return value.String()
}
