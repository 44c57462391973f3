package domain

// BudState is the lifecycle state of harvested product
type BudState string

const (
	BudWet    BudState = "wet"
	BudDrying BudState = "drying"
	BudDried  BudState = "dried"
)

// BudItem is harvested product, wet until dried on a rack
type BudItem struct {
	ID             string   `json:"id"`
	Strain         string   `json:"strain"`
	Rarity         Rarity   `json:"rarity"`
	Grams          int      `json:"grams"`
	Quality        int      `json:"quality"`
	State          BudState `json:"state"`
	DryingProgress float64  `json:"drying_progress"`
}

// FindBud returns the index of the bud with the given id in items, or -1
func FindBud(items []BudItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

// RemoveBud removes the bud at index i, preserving order
func RemoveBud(items []BudItem, i int) []BudItem {
	return append(items[:i], items[i+1:]...)
}

// DriedGrams sums the grams of every dried bud in items
func DriedGrams(items []BudItem) int {
	total := 0
	for _, b := range items {
		if b.State == BudDried {
			total += b.Grams
		}
	}
	return total
}
