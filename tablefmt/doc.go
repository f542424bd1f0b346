// Package tablefmt formats tabular values as indented text blocks for
// inclusion in log messages.
//
// Rendering is delegated to a registered Renderer so the table-drawing
// library remains optional. Blank-import the render subpackage to get
// the default one:
//
//	import _ "github.com/cartoworks/geolog/tablefmt/render"
//
// Without a registered renderer, Format fails with ErrMissingRenderer.
package tablefmt
