// Package uilayout computes screen boxes for in-game UI trees.
//
// Users import this single package for the public API: length
// declarations, styles, the node tree and the Engine that runs frames.
// Markup loading, PNG snapshots and the Fyne preview host live in
// internal packages used by the uilayout command.
package uilayout
