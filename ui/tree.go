package ui

// BreadthFirst returns root and all of its descendants, level by level.
func BreadthFirst(root Widget) []Widget {
	if root == nil {
		return nil
	}
	result := []Widget{root}
	for i := 0; i < len(result); i++ {
		result = append(result, result[i].base().children...)
	}
	return result
}

// IsAncestor reports whether ancestor is w or one of its parents.
func IsAncestor(ancestor, w Widget) bool {
	for w != nil {
		if w == ancestor {
			return true
		}
		w = w.base().parent
	}
	return false
}

// DepthFirst returns root and all of its descendants in pre-order, which is
// the reading order of a laid out tree.
func DepthFirst(root Widget) []Widget {
	if root == nil {
		return nil
	}
	result := []Widget{root}
	for _, child := range root.base().children {
		result = append(result, DepthFirst(child)...)
	}
	return result
}
