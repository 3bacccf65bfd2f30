// Package opalhtml adapts the Opal activity page markup to the travel
// document ports. Selectors mirror the class names the page's Angular
// components render with.
package opalhtml

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"opaltrack/internal/travel"
)

const (
	dateGroupSelector = "div.activity-by-date-container"
	dateLabelSelector = "div.activity-date"
	activitySelector  = "li.ng-star-inserted"
	timeSelector      = "div.date"
	startSelector     = "span.from"
	endSelector       = "span.to"
	fareSelector      = "div.amount span"
)

// Document is a parsed travel-activity fragment.
type Document struct {
	doc *goquery.Document
}

var _ travel.Document = (*Document)(nil)

// Parse reads the scraped outer HTML of the activity container.
func Parse(fragment string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parse travel fragment: %w", err)
	}
	return &Document{doc: doc}, nil
}

func (d *Document) DateGroups() []travel.DateGroup {
	var groups []travel.DateGroup
	d.doc.Find(dateGroupSelector).Each(func(_ int, sel *goquery.Selection) {
		groups = append(groups, group{sel: sel})
	})
	return groups
}

type group struct {
	sel *goquery.Selection
}

func (g group) DateLabel() string {
	return strings.TrimSpace(g.sel.Find(dateLabelSelector).First().Text())
}

func (g group) Activities() []travel.ActivityNode {
	var nodes []travel.ActivityNode
	g.sel.Find(activitySelector).Each(func(_ int, sel *goquery.Selection) {
		nodes = append(nodes, node{sel: sel})
	})
	return nodes
}

type node struct {
	sel *goquery.Selection
}

func (n node) TimeLabel() (string, bool)  { return text(n.sel, timeSelector) }
func (n node) StartLabel() (string, bool) { return text(n.sel, startSelector) }
func (n node) EndLabel() (string, bool)   { return text(n.sel, endSelector) }
func (n node) FareLabel() (string, bool)  { return text(n.sel, fareSelector) }

func text(sel *goquery.Selection, selector string) (string, bool) {
	found := sel.Find(selector)
	if found.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(found.First().Text()), true
}
