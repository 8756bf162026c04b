package fitting

import (
	"strconv"
	"sync"

	"github.com/BruksfildServices01/lahermandad/internal/models"
)

// Key identifies one product/size pair in a room.
func Key(productID uint, size string) string {
	return strconv.FormatUint(uint64(productID), 10) + ":" + size
}

// Room is one browsing session's fitting room. Items keep insertion order
// and never contain two entries with the same product/size key.
type Room struct {
	mu         sync.Mutex
	items      []models.FittingItem
	submitting bool
}

func NewRoom() *Room {
	return &Room{}
}

// Add appends product in the given size unless that pair is already in the
// room. It never fails.
func (r *Room) Add(p models.Product, size string) models.FittingItem {
	key := Key(p.ID, size)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.items {
		if it.FittingID == key {
			return it
		}
	}

	item := models.FittingItem{
		FittingID:    key,
		ProductID:    p.ID,
		Name:         p.Name,
		Brand:        p.Brand,
		Price:        p.Price,
		ImageURL:     p.ImageURL,
		Category:     p.Category,
		SelectedSize: size,
	}
	r.items = append(r.items, item)
	return item
}

func (r *Room) Remove(fittingID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.FittingID == fittingID {
			r.items = append(r.items[:i:i], r.items[i+1:]...)
			return
		}
	}
}

func (r *Room) Clear() {
	r.mu.Lock()
	r.items = nil
	r.mu.Unlock()
}

// Items returns a copy of the current list.
func (r *Room) Items() []models.FittingItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.FittingItem, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Room) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// BeginSubmit marks the room as having a submission in flight. It returns
// false when one is already running.
func (r *Room) BeginSubmit() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.submitting {
		return false
	}
	r.submitting = true
	return true
}

func (r *Room) EndSubmit() {
	r.mu.Lock()
	r.submitting = false
	r.mu.Unlock()
}
