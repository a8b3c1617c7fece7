package layout

import "github.com/alexanderramin/lifemap/internal/domain"

// FindNodeAt returns the first goal, depth-first with each goal checked
// before its children, whose box contains (x, y). Box edges count as inside.
// It returns nil when nothing is hit.
func FindNodeAt(root *domain.Goal, x, y float64) *domain.Goal {
	if root == nil {
		return nil
	}
	if root.Box.Contains(x, y) {
		return root
	}
	for _, c := range root.Children() {
		if found := FindNodeAt(c, x, y); found != nil {
			return found
		}
	}
	return nil
}
