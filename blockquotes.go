package main

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// enhanceBlockquotes marks blockquotes authored with class="quoted" so they
// render as pull quotes. Photo essays keep every quote plain.
func enhanceBlockquotes(doc ContentDocument) ContentDocument {
	if doc.Format.Design == photoEssayDesign {
		return doc
	}
	return mapElements(doc, func(elements []Element) []Element {
		out := make([]Element, 0, len(elements))
		for _, el := range elements {
			if bq, ok := el.(BlockquoteElement); ok && isQuotedBlockquote(bq.HTML) {
				bq.Quoted = true
				el = bq
			}
			out = append(out, el)
		}
		return out
	})
}

// fragmentRoots parses markup and returns its top-level elements.
func fragmentRoots(markup string) *goquery.Selection {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}
	return doc.Find("body").Children()
}

func isQuotedBlockquote(markup string) bool {
	roots := fragmentRoots(markup)
	if roots == nil {
		return false
	}
	return roots.First().Is("blockquote.quoted")
}
