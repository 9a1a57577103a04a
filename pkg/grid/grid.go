// Package grid converts a flat index into row/column coordinates for laying
// out fixed-width text grids, used by cmd/inspector to position its pane
// tabs.
package grid

// GetGridCoords returns the (x, y) column/row position of the cell at the
// given flat index in a grid with cols columns, counting left-to-right then
// top-to-bottom.
func GetGridCoords(index, cols int) (x, y int) {
	return index % cols, index / cols
}
