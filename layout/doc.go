// Package layout places self-measuring content blocks on a page.
//
// # Blocks
//
// A [Block] can report its height for a given width ([Block.Measure]) and
// draw itself with its bottom-left corner at a point ([Block.Draw]). The
// package provides:
//
//   - [Paragraph] - inline markup wrapped with the Unicode line breaking rules
//   - [List] - bulleted list of paragraphs
//   - [Rule] - zero-height horizontal line
//   - [Spacer] - empty vertical space
//
// # Column Flow
//
// [Place] measures a block, draws it so its top edge is at the cursor, and
// returns the cursor moved down by the block height. [Flow] folds Place over
// a list of [Entry] values, subtracting each entry's gap after its block:
//
//	left, right, err := layout.SplitColumns(page.Content(), 0.36, 18)
//	yLeft, err := layout.Flow(surface, left, y0, leftEntries)
//	yRight, err := layout.Flow(surface, right, y0, rightEntries)
//
// Columns are independent: nothing compares their final cursors and nothing
// checks them against the bottom margin, so content that is too long runs
// past it.
//
// # Surfaces
//
// Blocks draw on a [Surface]. The render package provides a PDF surface;
// [Recorder] captures draw calls for dry runs and tests.
package layout
