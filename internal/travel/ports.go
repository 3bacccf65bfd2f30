// Package travel turns a scraped activity document into per-date
// activity groups. The document is abstracted behind small query ports
// so the extraction rules stay independent of the markup library that
// backs them.
package travel

// Ports for inbound documents.
type (
	// Document is one scraped travel-activity fragment.
	Document interface {
		DateGroups() []DateGroup
	}

	// DateGroup is one date section with its activity nodes in document
	// order.
	DateGroup interface {
		// DateLabel returns the section's raw date label text.
		DateLabel() string
		Activities() []ActivityNode
	}

	// ActivityNode exposes the four raw field labels of one activity. The
	// boolean reports whether the field is present in the markup at all;
	// extraction substitutes defaults when it is not.
	ActivityNode interface {
		TimeLabel() (string, bool)
		StartLabel() (string, bool)
		EndLabel() (string, bool)
		FareLabel() (string, bool)
	}
)
