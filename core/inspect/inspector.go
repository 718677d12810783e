// Package inspect reads back an assembled page with goquery: the document
// title and how many cards actually landed in it.
package inspect

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CardSelector matches one rendered card.
const CardSelector = "li.cards__item"

// Summary describes an assembled page.
type Summary struct {
	Title string
	Cards int
	// Names holds the card titles in document order; cards without a title
	// block are not listed.
	Names []string
}

// PageInspector parses HTML documents.
type PageInspector struct{}

// New creates a PageInspector.
func New() *PageInspector {
	return &PageInspector{}
}

// Inspect parses the document and summarizes it.
func (p *PageInspector) Inspect(html string) (Summary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Summary{}, fmt.Errorf("parsing HTML: %w", err)
	}

	summary := Summary{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	cards := doc.Find(CardSelector)
	summary.Cards = cards.Length()
	cards.Find(".card__title").Each(func(_ int, s *goquery.Selection) {
		summary.Names = append(summary.Names, strings.TrimSpace(s.Text()))
	})

	return summary, nil
}
