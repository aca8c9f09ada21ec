// Package document holds the editor's document session: the raw body and its
// compiled, render-ready form.
//
// # Invariant
//
// A Session's Compiled value is always Compile(Body) for the latest body.
// SetBody recompiles synchronously before notifying subscribers, so neither
// callers nor subscribers can observe a body paired with a stale compiled form.
//
// # Markup
//
// Compile understands the AsciiDoc subset a scratch document needs:
//
//	= Title                   document title (level 0 heading)
//	== Section … ======       section headings (markdown # also accepted)
//	* item / ** nested        unordered list items (- also accepted)
//	. item / 1. item          ordered list items
//	[source,go] + ----        listing blocks with an optional language
//	____                      quote blocks
//	'''                       horizontal rule
//	NOTE: / TIP: / WARNING:   admonitions
//	// comment, ////          comments (dropped)
//
// Inline markup (*bold*, _italic_, `code`, links) is kept in block text and
// styled by the preview.
package document
