// Package memory provides an in-memory travel document. It backs the
// extraction tests and doubles as a seedable stand-in when no scraped
// page is available.
package memory

import "opaltrack/internal/travel"

type (
	// Document is a literal travel document.
	Document struct {
		Groups []Group
	}

	// Group is one date section.
	Group struct {
		Label   string
		Entries []Entry
	}

	// Entry holds the raw field labels of one activity. Unset fields are
	// reported as absent to the extractor.
	Entry struct {
		Time  Field
		Start Field
		End   Field
		Fare  Field
	}

	// Field is an optional raw label.
	Field struct {
		Text string
		Set  bool
	}
)

// F marks a field as present with the given text.
func F(s string) Field {
	return Field{Text: s, Set: true}
}

var _ travel.Document = (*Document)(nil)

func (d *Document) DateGroups() []travel.DateGroup {
	groups := make([]travel.DateGroup, len(d.Groups))
	for i := range d.Groups {
		groups[i] = d.Groups[i]
	}
	return groups
}

func (g Group) DateLabel() string {
	return g.Label
}

func (g Group) Activities() []travel.ActivityNode {
	nodes := make([]travel.ActivityNode, len(g.Entries))
	for i := range g.Entries {
		nodes[i] = g.Entries[i]
	}
	return nodes
}

func (e Entry) TimeLabel() (string, bool)  { return e.Time.Text, e.Time.Set }
func (e Entry) StartLabel() (string, bool) { return e.Start.Text, e.Start.Set }
func (e Entry) EndLabel() (string, bool)   { return e.End.Text, e.End.Set }
func (e Entry) FareLabel() (string, bool)  { return e.Fare.Text, e.Fare.Set }
