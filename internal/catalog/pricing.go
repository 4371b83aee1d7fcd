// internal/catalog/pricing.go
package catalog

// KoinPackage maps a purchasable koin amount to the payment provider's
// product. PriceUSD is informational; the provider holds the real price.
type KoinPackage struct {
	Koins     int     `json:"koins"`
	ProductID string  `json:"product_id"`
	PriceUSD  float64 `json:"price_usd"`
}

// PricingTable lists every purchasable koin package, smallest first.
var PricingTable = []KoinPackage{
	{Koins: 10, ProductID: "prod_TO1NsHrmXfJJzZ", PriceUSD: 0.5},
	{Koins: 50, ProductID: "prod_TJrJHiNKtOkEXR", PriceUSD: 1},
	{Koins: 500, ProductID: "prod_TO1ONHgzSs53ZN", PriceUSD: 2},
	{Koins: 1000, ProductID: "prod_TO1OM2V3SgrILk", PriceUSD: 3},
	{Koins: 5000, ProductID: "prod_TO1NZJ9gUDsymC", PriceUSD: 10},
}

// KoinsForProduct resolves a provider product id back to the koin amount it
// grants. The second return is false for unknown products.
func KoinsForProduct(productID string) (int, bool) {
	for _, pkg := range PricingTable {
		if pkg.ProductID == productID {
			return pkg.Koins, true
		}
	}
	return 0, false
}
