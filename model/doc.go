// Package model provides the value types shared by the layout engine and
// the renderers.
//
// # Geometry
//
// Coordinates are PDF user space: the origin is the bottom-left corner of
// the page and y grows upward. Distances are in points (1/72 inch).
//
//   - [BBox] - a rectangle anchored at its bottom-left corner
//   - [Page] - page size plus margins; [Page.Content] is the usable area
//
// # Styles
//
// Text styling is keyed by semantic [Role] (name, section heading, body,
// bullet, meta, ...). A [StyleSheet] maps each role to a [TextStyle], so the
// same layout renders with different themes by swapping the sheet:
//
//	ss := model.StyleSheet{
//	    model.RoleBody: {Family: "Helvetica", Size: 10, Leading: 14},
//	}
//	body := ss.Style(model.RoleBody)
//
// Colors are parsed from hex notation or SVG color names:
//
//	c, err := model.ParseColor("#0A4D68")
//	c, err = model.ParseColor("teal")
package model
