// Package layout implements the layout core of an in-game UI toolkit.
//
// Size declarations are written as a [Length]: a bare pixel [Number], a
// unit-tagged [Dimension] (px, %, vw, vh, rem, em) or an arithmetic
// [Expression] over either. A [Tree] holds nodes in an arena addressed by
// [NodeID]; each node carries a [Style] and, after a pass, a resolved
// [Layout].
//
// A frame is two passes. [Resolve] walks every root top-down and converts
// each declaration to pixels against the parent's resolved box and font size.
// [Arrange] then visits every node whose style carries a [Flex] or [Grid]
// container and overwrites the boxes of its direct children. [Calculate] runs
// both. Nothing is cached between frames.
//
// Types are re-exported through the root uilayout package for public use.
package layout
