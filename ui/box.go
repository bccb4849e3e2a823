package ui

import "math"

// Box is a container placing its children in a row or a column.
type Box struct {
	Base
	vertical bool
	gap      int
	flexes   map[Widget]int
}

func NewBox(vertical bool, children ...Widget) *Box {
	box := &Box{vertical: vertical}
	box.Init(box, KindBox)
	box.SetAlign(AlignLeft | AlignTop)
	for _, child := range children {
		box.AddChild(child)
	}
	return box
}

// Column is a vertical box.
func Column(children ...Widget) *Box {
	return NewBox(true, children...)
}

// Row is a horizontal box.
func Row(children ...Widget) *Box {
	return NewBox(false, children...)
}

// SetGap sets the number of empty cells between children.
func (b *Box) SetGap(gap int) *Box {
	b.gap = gap
	b.Invalidate()
	return b
}

// SetFlex makes child share the space left over after preferred sizes.
func (b *Box) SetFlex(child Widget, flex int) *Box {
	if b.flexes == nil {
		b.flexes = map[Widget]int{}
	}
	b.flexes[child] = flex
	return b
}

func (b *Box) OnRemoveChild(child Widget) {
	delete(b.flexes, child)
}

func (b *Box) OnPreferredSize(ev *PreferredSizeEvent) {
	main, cross := 0, 0
	for i, child := range b.children {
		size := PreferredSize(child)
		childMain, childCross := b.axes(size)
		main += childMain
		if i > 0 {
			main += b.gap
		}
		if cross < childCross {
			cross = childCross
		}
	}
	if b.vertical {
		ev.SetPreferredSize(Size{Width: cross + b.border.Horizontal(), Height: main + b.border.Vertical()})
	} else {
		ev.SetPreferredSize(Size{Width: main + b.border.Horizontal(), Height: cross + b.border.Vertical()})
	}
}

func (b *Box) Layout() {
	if len(b.children) == 0 {
		return
	}
	client := b.ClientBounds()
	target, crossLimit := client.Width, client.Height
	if b.vertical {
		target, crossLimit = client.Height, client.Width
	}
	target -= b.gap * (len(b.children) - 1)
	if target < 0 {
		target = 0
	}

	sizes := make([]int, len(b.children))
	crosses := make([]int, len(b.children))
	flexes := make([]int, len(b.children))
	for i, child := range b.children {
		sizes[i], crosses[i] = b.axes(PreferredSize(child))
		flexes[i] = b.flexes[child]
		if crosses[i] > crossLimit {
			crosses[i] = crossLimit
		}
	}

	offset := 0
	for i, size := range calcSizes(target, sizes, flexes) {
		bounds := Rect{X: client.X + offset, Y: client.Y, Width: size, Height: crosses[i]}
		if b.vertical {
			bounds = Rect{X: client.X, Y: client.Y + offset, Width: crosses[i], Height: size}
		}
		SetBounds(b.children[i], bounds)
		offset += size + b.gap
	}
}

func (b *Box) axes(size Size) (main, cross int) {
	if b.vertical {
		return size.Height, size.Width
	}
	return size.Width, size.Height
}

func calcSizes(targetSize int, sizes []int, flexes []int) []int {
	result := make([]int, len(sizes))
	totalSize, totalFlex := 0, 0
	for i, size := range sizes {
		result[i] = size
		totalSize += size
		totalFlex += flexes[i]
	}
	for totalSize > targetSize {
		idx := 0
		maxSize := result[0]
		for i, size := range result {
			if maxSize < size {
				maxSize = size
				idx = i
			}
		}
		result[idx]--
		totalSize--
	}

	if totalFlex == 0 {
		return result
	}

	if totalSize < targetSize {
		diff := targetSize - totalSize
		for i, flex := range flexes {
			result[i] += int(math.Floor(float64(diff*flex) / float64(totalFlex)))
		}
		totalSize := 0
		for _, size := range result {
			totalSize += size
		}
		for i := range result {
			if totalSize == targetSize {
				break
			}
			if flexes[i] > 0 {
				result[i]++
				totalSize++
			}
		}
		for i := range result {
			if totalSize == targetSize {
				break
			}
			if flexes[i] == 0 {
				result[i]++
				totalSize++
			}
		}
	}

	return result
}
