package geometry

import (
	"sort"

	"placement-service/internal/fitcheck/models"

	"github.com/dhconnelly/rtreego"
)

// ============================================================
// Neighbour index
// ============================================================

const pointTolerance = 0.01

type indexedItem struct {
	index  int
	center rtreego.Point
}

// Bounds implements the rtreego.Spatial interface
func (e *indexedItem) Bounds() rtreego.Rect {
	return e.center.ToRect(pointTolerance)
}

// Index answers "which items are centred within r of this one" without
// comparing every pair.
type Index struct {
	tree  *rtreego.Rtree
	items []models.FurnitureItem
}

func NewIndex(items []models.FurnitureItem) *Index {
	tree := rtreego.NewTree(2, 4, 16)
	for i, item := range items {
		tree.Insert(&indexedItem{
			index:  i,
			center: rtreego.Point{item.Position.X, item.Position.Y},
		})
	}
	return &Index{tree: tree, items: items}
}

// Within returns the positions of items other than i whose centres are strictly
// closer than radius to item i's centre, in ascending order.
func (x *Index) Within(i int, radius float64) []int {
	if i < 0 || i >= len(x.items) || radius <= 0 {
		return nil
	}

	item := x.items[i]
	search, err := rtreego.NewRect(
		rtreego.Point{item.Position.X - radius, item.Position.Y - radius},
		[]float64{2 * radius, 2 * radius},
	)
	if err != nil {
		return nil
	}

	var out []int
	for _, hit := range x.tree.SearchIntersect(search) {
		j := hit.(*indexedItem).index
		if j == i {
			continue
		}
		if Distance(item, x.items[j]) < radius {
			out = append(out, j)
		}
	}
	sort.Ints(out)
	return out
}
