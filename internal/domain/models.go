package domain

import "strconv"

type Category struct {
	CatID *int   `json:"catId"` // assigned by the store
	Name  string `json:"name"`
}

type Product struct {
	PrdID       *int      `json:"prdId"` // assigned by the store
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    *Category `json:"category"`
}

// CategoryID returns the id of the referenced category, or nil when the
// product carries no category reference.
func (p *Product) CategoryID() *int {
	if p.Category == nil {
		return nil
	}
	return p.Category.CatID
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}

// FormatID renders an optional identifier for log lines.
func FormatID(id *int) string {
	if id == nil {
		return "<nil>"
	}
	return strconv.Itoa(*id)
}
