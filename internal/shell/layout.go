package shell

import "fyne.io/fyne/v2"

// TileSize is the footprint of one desktop icon.
var TileSize = fyne.NewSize(72, 72)

// fixedPositionLayout places each object at a pinned position regardless
// of the container size. Objects beyond the position list are hidden.
type fixedPositionLayout struct {
	positions []fyne.Position
	tile      fyne.Size
}

func newFixedPositionLayout(positions []fyne.Position, tile fyne.Size) *fixedPositionLayout {
	return &fixedPositionLayout{positions: positions, tile: tile}
}

func (l *fixedPositionLayout) Layout(objects []fyne.CanvasObject, _ fyne.Size) {
	for i, obj := range objects {
		if i >= len(l.positions) {
			obj.Hide()
			continue
		}
		obj.Resize(l.tile)
		obj.Move(l.positions[i])
	}
}

func (l *fixedPositionLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var size fyne.Size
	for i := range objects {
		if i >= len(l.positions) {
			break
		}
		p := l.positions[i]
		size = size.Max(fyne.NewSize(p.X+l.tile.Width, p.Y+l.tile.Height))
	}
	return size
}
