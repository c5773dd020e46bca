package demolint

import "time"

// RelatedType classifies the target of a related-content link.
type RelatedType string

const (
	RelatedDemonstration RelatedType = "demonstration"
	RelatedPaper         RelatedType = "paper"
	RelatedApp           RelatedType = "app"
)

// AuthorRef points at an author record maintained outside the corpus.
// Only the shape is validated unless an author directory is supplied.
type AuthorRef struct {
	ID string `json:"id"`
}

// PreviewImage is one entry of a record's previewImages list.
type PreviewImage struct {
	Type string `json:"type"`
	URI  string `json:"uri"`
}

// Reference is one bibliographic entry in a record's reference list.
// All fields except ID are optional, but a reference consisting of an
// ID alone is rejected by the validator.
type Reference struct {
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	Authors   string `json:"authors,omitempty"`
	Year      string `json:"year,omitempty"`
	Journal   string `json:"journal,omitempty"`
	Publisher string `json:"publisher,omitempty"`
	DOI       string `json:"doi,omitempty"`
	URL       string `json:"url,omitempty"`
}

// RelatedRef links a record to another piece of content for ranking
// on the published page. Weight must be positive.
type RelatedRef struct {
	Type   RelatedType `json:"type"`
	ID     string      `json:"id"`
	Weight float64     `json:"weight"`
}

// DemoRecord is one tutorial's metadata entry, as decoded from its
// per-demo JSON file. Slug is derived from the file basename and is the
// identity other records use in demonstration-typed related links.
type DemoRecord struct {
	Slug       string `json:"-"`
	SourcePath string `json:"-"`

	Title                  string         `json:"title"`
	Authors                []AuthorRef    `json:"authors"`
	DateOfPublication      time.Time      `json:"dateOfPublication"`
	DateOfLastModification time.Time      `json:"dateOfLastModification"`
	Categories             []string       `json:"categories"`
	Tags                   []string       `json:"tags"`
	PreviewImages          []PreviewImage `json:"previewImages"`
	SEODescription         string         `json:"seoDescription"`
	DOI                    string         `json:"doi"`
	CanonicalURL           string         `json:"canonicalURL"`
	References             []Reference    `json:"references"`
	BasedOnPapers          []string       `json:"basedOnPapers"`
	ReferencedByPapers     []string       `json:"referencedByPapers"`
	RelatedContent         []RelatedRef   `json:"relatedContent"`
}

// StringSet is a lookup set for controlled vocabularies and id
// directories. A nil StringSet means "not supplied": checks against it
// are skipped rather than failed.
type StringSet map[string]struct{}

// NewStringSet builds a StringSet from the given values.
func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Contains reports whether v is in the set. Returns false on a nil set.
func (s StringSet) Contains(v string) bool {
	_, ok := s[v]
	return ok
}

// Rules carries the externally-configured inputs the validator needs:
// the controlled vocabularies and the optional id directories.
type Rules struct {
	// Categories is the controlled vocabulary for the categories field.
	Categories StringSet

	// PreviewImageTypes is the allowed set of previewImages type values.
	PreviewImageTypes StringSet

	// SEODescriptionMaxLength bounds seoDescription, in characters.
	// Zero means DefaultSEODescriptionMaxLength.
	SEODescriptionMaxLength int

	// Authors, Papers and Apps are optional directories for resolving
	// author ids and paper/app related-content links. A nil directory
	// disables that resolution check.
	Authors StringSet
	Papers  StringSet
	Apps    StringSet
}

// SEOMaxLength returns the effective seoDescription bound.
func (r Rules) SEOMaxLength() int {
	if r.SEODescriptionMaxLength > 0 {
		return r.SEODescriptionMaxLength
	}
	return DefaultSEODescriptionMaxLength
}
