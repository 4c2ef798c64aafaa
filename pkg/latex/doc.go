// Package latex builds LaTeX documents programmatically.
//
// A document is assembled from typed nodes (sections, paragraphs, lists,
// tables, equation groups) through fluent Push-style builders, then rendered
// to LaTeX source by a visitor-based printer:
//
//	doc := latex.NewDocument(latex.Article)
//	doc.Preamble.Title("My Fancy Document").Author("Jane Doe")
//
//	doc.Push(latex.TitlePage()).
//		Push(latex.ClearPage()).
//		Push(latex.TableOfContents()).
//		Push(latex.ClearPage())
//
//	sec := latex.NewSection("Introduction")
//	sec.Push("lorem ipsum...")
//	doc.Push(sec)
//
//	rendered, err := latex.Print(doc)
//
// Push accepts anything convertible into an Element: a raw string becomes a
// single-run paragraph, typed sub-builders are taken as-is.
//
// The traversal contract is public: implement Visitor (delegating to the
// Walk* helpers for the kinds you do not care about) to target a different
// output dialect or to collect statistics over the same tree.
//
// The package only constructs and serializes the tree. Writing the rendered
// source to disk and invoking a TeX toolchain are the caller's concern.
package latex
