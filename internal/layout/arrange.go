package layout

// Arrange visits roots and their descendants in pre-order and, for every
// flex or grid container, overwrites the boxes of its direct children.
// It reads sizes produced by Resolve and must run after it; it never
// resolves declarations itself apart from container gaps.
func Arrange(t *Tree, ctx Context, roots ...NodeID) {
	for _, root := range roots {
		t.Walk(root, func(id NodeID) bool {
			switch c := t.nodes[id].style.Container.(type) {
			case *Flex:
				if c != nil {
					t.arrangeFlex(ctx, id, c)
				}
			case *Grid:
				if c != nil {
					t.arrangeGrid(ctx, id, c)
				}
			}
			return true
		})
	}
}
