package model

// Category is a node in the user's folder tree.
// ParentID is nil for root-level categories.
type Category struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parentId"`
	Icon     string  `json:"icon,omitempty"`
	Order    int     `json:"order"`
}

// Ref returns a parent reference to id. An empty id is the root (nil).
func Ref(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

// Deref returns the parent id, or "" for root.
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// SameParent reports whether two parent references point at the same node.
func SameParent(a, b *string) bool {
	return Deref(a) == Deref(b)
}

// IsRoot reports whether the category sits at the top level.
func (c Category) IsRoot() bool {
	return c.ParentID == nil
}

// CloneCategories returns a deep copy, including parent references.
func CloneCategories(in []Category) []Category {
	if in == nil {
		return nil
	}
	out := make([]Category, len(in))
	for i, c := range in {
		c.ParentID = Ref(Deref(c.ParentID))
		out[i] = c
	}
	return out
}
