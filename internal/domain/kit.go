package domain

// KitItem is the denormalized name snapshot kept for display.
type KitItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Kit is a named, fixed-price bundle of inventory items. Price is flat, not
// the sum of member item prices.
type Kit struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	ItemIDs    []string  `json:"item_ids"`
	Items      []KitItem `json:"items"`
}

// Contains reports whether the kit bundles the given inventory item.
func (k *Kit) Contains(itemID string) bool {
	for _, id := range k.ItemIDs {
		if id == itemID {
			return true
		}
	}
	return false
}
