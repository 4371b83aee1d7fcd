// internal/catalog/shop.go
package catalog

// AccessoryItem is a cosmetic the monster can wear. Color and category are
// rendering hints passed through to clients untouched.
type AccessoryItem struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Color       string `json:"color"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// BackgroundItem is a scene a monster can be displayed against.
type BackgroundItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
}

// XPBoostItem is a consumable that grants a monster XP immediately.
type XPBoostItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	XPAmount    int    `json:"xp_amount"`
	Description string `json:"description"`
}

// AccessoryCatalog is the full accessory shop.
var AccessoryCatalog = []AccessoryItem{
	{ID: "hat-red", Type: "hat", Name: "Chapeau Rouge", Price: 150, Color: "#e53e3e", Category: "hat", Description: "Un élégant chapeau rouge"},
	{ID: "hat-blue", Type: "hat", Name: "Chapeau Bleu", Price: 180, Color: "#3182ce", Category: "hat", Description: "Chapeau bleu océan"},
	{ID: "hat-purple", Type: "hat", Name: "Chapeau Violet", Price: 200, Color: "#805ad5", Category: "hat", Description: "Chapeau violet royal"},

	{ID: "glasses-black", Type: "glasses", Name: "Lunettes Noires", Price: 100, Color: "#2d3748", Category: "glasses", Description: "Lunettes de soleil stylées"},
	{ID: "glasses-gold", Type: "glasses", Name: "Lunettes Dorées", Price: 250, Color: "#d69e2e", Category: "glasses", Description: "Lunettes dorées de luxe"},
	{ID: "glasses-pink", Type: "glasses", Name: "Lunettes Roses", Price: 120, Color: "#ed64a6", Category: "glasses", Description: "Lunettes roses tendance"},

	{ID: "shoes-red", Type: "shoes", Name: "Chaussures Rouges", Price: 80, Color: "#e53e3e", Category: "footwear", Description: "Chaussures classiques rouges"},
	{ID: "shoes-green", Type: "shoes", Name: "Chaussures Vertes", Price: 85, Color: "#38a169", Category: "footwear", Description: "Chaussures vertes écologiques"},
	{ID: "shoes-purple", Type: "shoes", Name: "Chaussures Violettes", Price: 110, Color: "#805ad5", Category: "footwear", Description: "Chaussures violettes chic"},

	{ID: "sneakers-white", Type: "sneakers", Name: "Baskets Blanches", Price: 95, Color: "#ffffff", Category: "footwear", Description: "Baskets de sport blanches"},
	{ID: "sneakers-blue", Type: "sneakers", Name: "Baskets Bleues", Price: 105, Color: "#3182ce", Category: "footwear", Description: "Baskets sportives bleues"},

	{ID: "boots-brown", Type: "boots", Name: "Bottes Marron", Price: 150, Color: "#8b4513", Category: "footwear", Description: "Bottes robustes marron"},
	{ID: "boots-black", Type: "boots", Name: "Bottes Noires", Price: 160, Color: "#2d3748", Category: "footwear", Description: "Bottes noires élégantes"},

	{ID: "slippers-pink", Type: "slippers", Name: "Pantoufles Roses", Price: 60, Color: "#ed64a6", Category: "footwear", Description: "Pantoufles confortables roses"},
	{ID: "slippers-gray", Type: "slippers", Name: "Pantoufles Grises", Price: 65, Color: "#718096", Category: "footwear", Description: "Pantoufles douillettes grises"},
}

// BackgroundCatalog is the full background shop.
var BackgroundCatalog = []BackgroundItem{
	{ID: "bg-forest", Name: "Forêt Enchantée", Price: 250, ImageURL: "/assets/backgrounds/forest.png", Description: "Une forêt magique avec des lumières scintillantes"},
	{ID: "bg-watercolor", Name: "Aquarelle Kawaii", Price: 200, ImageURL: "/assets/backgrounds/watercolor.jpg", Description: "Fond aquarelle coloré et mignon"},
	{ID: "bg-abstract", Name: "Abstrait Coloré", Price: 220, ImageURL: "/assets/backgrounds/abstract.jpg", Description: "Design abstrait vibrant et moderne"},
	{ID: "bg-pastel", Name: "Pastel Doux", Price: 210, ImageURL: "/assets/backgrounds/pastel.jpg", Description: "Fond pastel doux et apaisant"},
}

// XPBoostCatalog is the XP boost shop.
var XPBoostCatalog = []XPBoostItem{
	{ID: "boost-small", Name: "Petit Boost", Price: 50, XPAmount: 50, Description: "Un petit coup de pouce d'expérience"},
	{ID: "boost-medium", Name: "Boost Moyen", Price: 90, XPAmount: 100, Description: "Une bonne dose d'expérience"},
	{ID: "boost-large", Name: "Grand Boost", Price: 160, XPAmount: 200, Description: "Un énorme gain d'expérience"},
}

// GetAccessory looks up an accessory by id.
func GetAccessory(id string) (AccessoryItem, bool) {
	for _, item := range AccessoryCatalog {
		if item.ID == id {
			return item, true
		}
	}
	return AccessoryItem{}, false
}

// GetBackground looks up a background by id.
func GetBackground(id string) (BackgroundItem, bool) {
	for _, item := range BackgroundCatalog {
		if item.ID == id {
			return item, true
		}
	}
	return BackgroundItem{}, false
}

// GetXPBoost looks up an XP boost by id.
func GetXPBoost(id string) (XPBoostItem, bool) {
	for _, item := range XPBoostCatalog {
		if item.ID == id {
			return item, true
		}
	}
	return XPBoostItem{}, false
}
