package validator

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/qdocs/demolint/pkg/demolint"
)

// dateLayouts are the accepted dateOfPublication / dateOfLastModification
// formats, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// Record performs single-record shape validation: required fields present
// and correctly typed, date ordering, non-empty title/categories, URI
// well-formedness for preview images, reference-id uniqueness. It needs
// no corpus context and accumulates every violation it finds; it never
// stops at the first.
func Record(raw demolint.RawRecord, rules demolint.Rules) []demolint.Violation {
	_, violations := checkRecord(raw, rules)
	return violations
}

// checkRecord runs the single-record checks and also returns the
// best-effort typed record for the cross-record pass. Fields that failed
// their shape check are left at their zero value; slice fields keep one
// entry per source element so violation indexes stay aligned.
func checkRecord(raw demolint.RawRecord, rules demolint.Rules) (demolint.DemoRecord, []demolint.Violation) {
	c := &recordChecker{raw: raw, rules: rules}
	c.rec.Slug = raw.Slug
	c.rec.SourcePath = raw.Path

	c.checkTitle()
	c.checkAuthors()
	c.checkDates()
	c.checkCategories()
	c.checkTags()
	c.checkPreviewImages()
	c.checkSEODescription()
	c.checkDOI()
	c.checkCanonicalURL()
	c.checkReferences()
	c.checkPaperList("basedOnPapers", &c.rec.BasedOnPapers)
	c.checkPaperList("referencedByPapers", &c.rec.ReferencedByPapers)
	c.checkRelatedContent()

	return c.rec, c.violations
}

type recordChecker struct {
	raw        demolint.RawRecord
	rules      demolint.Rules
	rec        demolint.DemoRecord
	violations []demolint.Violation
}

func (c *recordChecker) add(field string, kind demolint.Kind, format string, args ...interface{}) {
	c.violations = append(c.violations, demolint.Violation{
		Record:  c.raw.Slug,
		Field:   field,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
}

// requiredString fetches a required top-level string field, reporting
// MissingField or WrongType as appropriate. The second return is false
// when no usable value was found.
func (c *recordChecker) requiredString(field string) (string, bool) {
	value, present := c.raw.Object[field]
	if !present {
		c.add(field, demolint.KindMissingField, "required field is missing")
		return "", false
	}
	s, ok := value.(string)
	if !ok {
		c.add(field, demolint.KindWrongType, "expected a string, got %s", jsonTypeName(value))
		return "", false
	}
	return s, true
}

func (c *recordChecker) checkTitle() {
	title, ok := c.requiredString("title")
	if !ok {
		return
	}
	if strings.TrimSpace(title) == "" {
		c.add("title", demolint.KindEmptyValue, "title must not be empty")
		return
	}
	c.rec.Title = title
}

func (c *recordChecker) checkAuthors() {
	value, present := c.raw.Object["authors"]
	if !present {
		c.add("authors", demolint.KindMissingField, "required field is missing")
		return
	}
	list, ok := value.([]any)
	if !ok {
		c.add("authors", demolint.KindWrongType, "expected an array, got %s", jsonTypeName(value))
		return
	}
	if len(list) == 0 {
		c.add("authors", demolint.KindEmptyValue, "at least one author is required")
		return
	}

	c.rec.Authors = make([]demolint.AuthorRef, len(list))
	for i, elem := range list {
		field := fmt.Sprintf("authors[%d]", i)
		obj, ok := elem.(map[string]any)
		if !ok {
			c.add(field, demolint.KindWrongType, "expected an object, got %s", jsonTypeName(elem))
			continue
		}
		idValue, present := obj["id"]
		if !present {
			c.add(field+".id", demolint.KindMissingField, "author id is required")
			continue
		}
		id, ok := idValue.(string)
		if !ok {
			c.add(field+".id", demolint.KindWrongType, "expected a string, got %s", jsonTypeName(idValue))
			continue
		}
		if strings.TrimSpace(id) == "" {
			c.add(field+".id", demolint.KindEmptyValue, "author id must not be empty")
			continue
		}
		c.rec.Authors[i] = demolint.AuthorRef{ID: id}
	}
}

func (c *recordChecker) checkDates() {
	published, pubOK := c.checkDate("dateOfPublication")
	modified, modOK := c.checkDate("dateOfLastModification")

	c.rec.DateOfPublication = published
	c.rec.DateOfLastModification = modified

	if pubOK && modOK && modified.Before(published) {
		c.add("dateOfLastModification", demolint.KindDateOrderViolation,
			"last modification (%s) predates publication (%s)",
			modified.Format(time.RFC3339), published.Format(time.RFC3339))
	}
}

func (c *recordChecker) checkDate(field string) (time.Time, bool) {
	s, ok := c.requiredString(field)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	c.add(field, demolint.KindWrongType, "%q is not an ISO-8601 date-time", s)
	return time.Time{}, false
}

func (c *recordChecker) checkCategories() {
	value, present := c.raw.Object["categories"]
	if !present {
		c.add("categories", demolint.KindMissingField, "required field is missing")
		return
	}
	list, ok := value.([]any)
	if !ok {
		c.add("categories", demolint.KindWrongType, "expected an array, got %s", jsonTypeName(value))
		return
	}
	if len(list) == 0 {
		c.add("categories", demolint.KindEmptyValue, "at least one category is required")
		return
	}

	for i, elem := range list {
		field := fmt.Sprintf("categories[%d]", i)
		cat, ok := elem.(string)
		if !ok {
			c.add(field, demolint.KindWrongType, "expected a string, got %s", jsonTypeName(elem))
			continue
		}
		if !c.rules.Categories.Contains(cat) {
			c.add(field, demolint.KindUnknownCategory, "%q is not in the category vocabulary", cat)
			continue
		}
		c.rec.Categories = append(c.rec.Categories, cat)
	}
}

func (c *recordChecker) checkTags() {
	value, present := c.raw.Object["tags"]
	if !present {
		return
	}
	list, ok := value.([]any)
	if !ok {
		c.add("tags", demolint.KindWrongType, "expected an array, got %s", jsonTypeName(value))
		return
	}
	for i, elem := range list {
		tag, ok := elem.(string)
		if !ok {
			c.add(fmt.Sprintf("tags[%d]", i), demolint.KindWrongType, "expected a string, got %s", jsonTypeName(elem))
			continue
		}
		c.rec.Tags = append(c.rec.Tags, tag)
	}
}

func (c *recordChecker) checkPreviewImages() {
	value, present := c.raw.Object["previewImages"]
	if !present {
		return
	}
	list, ok := value.([]any)
	if !ok {
		c.add("previewImages", demolint.KindWrongType, "expected an array, got %s", jsonTypeName(value))
		return
	}

	c.rec.PreviewImages = make([]demolint.PreviewImage, len(list))
	for i, elem := range list {
		field := fmt.Sprintf("previewImages[%d]", i)
		obj, ok := elem.(map[string]any)
		if !ok {
			c.add(field, demolint.KindWrongType, "expected an object, got %s", jsonTypeName(elem))
			continue
		}

		var image demolint.PreviewImage

		typeValue, present := obj["type"]
		if !present {
			c.add(field+".type", demolint.KindMissingField, "image type is required")
		} else if imageType, ok := typeValue.(string); !ok {
			c.add(field+".type", demolint.KindWrongType, "expected a string, got %s", jsonTypeName(typeValue))
		} else if !c.rules.PreviewImageTypes.Contains(imageType) {
			c.add(field+".type", demolint.KindUnknownCategory, "%q is not an allowed image type", imageType)
		} else {
			image.Type = imageType
		}

		uriValue, present := obj["uri"]
		if !present {
			c.add(field+".uri", demolint.KindMissingField, "image uri is required")
		} else if uri, ok := uriValue.(string); !ok {
			c.add(field+".uri", demolint.KindWrongType, "expected a string, got %s", jsonTypeName(uriValue))
		} else if strings.TrimSpace(uri) == "" {
			c.add(field+".uri", demolint.KindEmptyValue, "image uri must not be empty")
		} else if !isWellFormedURI(uri) {
			c.add(field+".uri", demolint.KindWrongType, "%q is not a valid http(s) or path URI", uri)
		} else {
			image.URI = uri
		}

		c.rec.PreviewImages[i] = image
	}
}

func (c *recordChecker) checkSEODescription() {
	description, ok := c.requiredString("seoDescription")
	if !ok {
		return
	}
	if strings.TrimSpace(description) == "" {
		c.add("seoDescription", demolint.KindEmptyValue, "seoDescription must not be empty")
		return
	}
	if length := utf8.RuneCountInString(description); length > c.rules.SEOMaxLength() {
		c.add("seoDescription", demolint.KindWrongType,
			"seoDescription is %d characters, the bound is %d", length, c.rules.SEOMaxLength())
		return
	}
	c.rec.SEODescription = description
}

func (c *recordChecker) checkDOI() {
	value, present := c.raw.Object["doi"]
	if !present {
		return
	}
	doi, ok := value.(string)
	if !ok {
		c.add("doi", demolint.KindWrongType, "expected a string, got %s", jsonTypeName(value))
		return
	}
	// An empty DOI is allowed: not every demo has one.
	c.rec.DOI = doi
}

func (c *recordChecker) checkCanonicalURL() {
	canonical, ok := c.requiredString("canonicalURL")
	if !ok {
		return
	}
	if strings.TrimSpace(canonical) == "" {
		c.add("canonicalURL", demolint.KindEmptyValue, "canonicalURL must not be empty")
		return
	}
	if !strings.HasPrefix(canonical, "/") {
		c.add("canonicalURL", demolint.KindWrongType, "%q must be an absolute path starting with /", canonical)
		return
	}
	c.rec.CanonicalURL = canonical
}

// referenceBibFields are the optional bibliographic fields of a
// reference entry. A reference must carry at least one of them.
var referenceBibFields = []string{"title", "authors", "year", "journal", "publisher", "doi", "url"}

func (c *recordChecker) checkReferences() {
	value, present := c.raw.Object["references"]
	if !present {
		return
	}
	list, ok := value.([]any)
	if !ok {
		c.add("references", demolint.KindWrongType, "expected an array, got %s", jsonTypeName(value))
		return
	}

	seen := make(map[string]int, len(list))
	c.rec.References = make([]demolint.Reference, len(list))
	for i, elem := range list {
		field := fmt.Sprintf("references[%d]", i)
		obj, ok := elem.(map[string]any)
		if !ok {
			c.add(field, demolint.KindWrongType, "expected an object, got %s", jsonTypeName(elem))
			continue
		}

		var ref demolint.Reference

		idValue, present := obj["id"]
		if !present {
			c.add(field+".id", demolint.KindMissingField, "reference id is required")
		} else if id, ok := idValue.(string); !ok {
			c.add(field+".id", demolint.KindWrongType, "expected a string, got %s", jsonTypeName(idValue))
		} else if strings.TrimSpace(id) == "" {
			c.add(field+".id", demolint.KindEmptyValue, "reference id must not be empty")
		} else if first, dup := seen[id]; dup {
			c.add(field+".id", demolint.KindDuplicateKey,
				"reference id %q is already used by references[%d]", id, first)
		} else {
			seen[id] = i
			ref.ID = id
		}

		populated := 0
		for _, bib := range referenceBibFields {
			bibValue, present := obj[bib]
			if !present {
				continue
			}
			s, ok := bibString(bibValue)
			if !ok {
				c.add(field+"."+bib, demolint.KindWrongType, "expected a string, got %s", jsonTypeName(bibValue))
				continue
			}
			if strings.TrimSpace(s) != "" {
				populated++
			}
			switch bib {
			case "title":
				ref.Title = s
			case "authors":
				ref.Authors = s
			case "year":
				ref.Year = s
			case "journal":
				ref.Journal = s
			case "publisher":
				ref.Publisher = s
			case "doi":
				ref.DOI = s
			case "url":
				ref.URL = s
			}
		}

		if ref.ID != "" && populated == 0 {
			c.add(field, demolint.KindEmptyValue, "reference carries an id but no bibliographic fields")
		}

		c.rec.References[i] = ref
	}
}

func (c *recordChecker) checkPaperList(field string, target *[]string) {
	value, present := c.raw.Object[field]
	if !present {
		return
	}
	list, ok := value.([]any)
	if !ok {
		c.add(field, demolint.KindWrongType, "expected an array, got %s", jsonTypeName(value))
		return
	}
	for i, elem := range list {
		id, ok := elem.(string)
		if !ok {
			c.add(fmt.Sprintf("%s[%d]", field, i), demolint.KindWrongType, "expected a string, got %s", jsonTypeName(elem))
			continue
		}
		*target = append(*target, id)
	}
}

func (c *recordChecker) checkRelatedContent() {
	value, present := c.raw.Object["relatedContent"]
	if !present {
		return
	}
	list, ok := value.([]any)
	if !ok {
		c.add("relatedContent", demolint.KindWrongType, "expected an array, got %s", jsonTypeName(value))
		return
	}

	c.rec.RelatedContent = make([]demolint.RelatedRef, len(list))
	for i, elem := range list {
		field := fmt.Sprintf("relatedContent[%d]", i)
		obj, ok := elem.(map[string]any)
		if !ok {
			c.add(field, demolint.KindWrongType, "expected an object, got %s", jsonTypeName(elem))
			continue
		}

		var rel demolint.RelatedRef

		typeValue, present := obj["type"]
		if !present {
			c.add(field+".type", demolint.KindMissingField, "related-content type is required")
		} else if relType, ok := typeValue.(string); !ok {
			c.add(field+".type", demolint.KindWrongType, "expected a string, got %s", jsonTypeName(typeValue))
		} else {
			switch demolint.RelatedType(relType) {
			case demolint.RelatedDemonstration, demolint.RelatedPaper, demolint.RelatedApp:
				rel.Type = demolint.RelatedType(relType)
			default:
				c.add(field+".type", demolint.KindUnknownCategory,
					"%q is not a related-content type (demonstration, paper, app)", relType)
			}
		}

		idValue, present := obj["id"]
		if !present {
			c.add(field+".id", demolint.KindMissingField, "related-content id is required")
		} else if id, ok := idValue.(string); !ok {
			c.add(field+".id", demolint.KindWrongType, "expected a string, got %s", jsonTypeName(idValue))
		} else if strings.TrimSpace(id) == "" {
			c.add(field+".id", demolint.KindEmptyValue, "related-content id must not be empty")
		} else {
			rel.ID = id
		}

		weightValue, present := obj["weight"]
		if !present {
			c.add(field+".weight", demolint.KindMissingField, "related-content weight is required")
		} else if weight, ok := weightValue.(float64); !ok {
			c.add(field+".weight", demolint.KindWrongType, "expected a number, got %s", jsonTypeName(weightValue))
		} else if weight <= 0 {
			c.add(field+".weight", demolint.KindEmptyValue, "weight must be greater than zero, got %v", weight)
		} else {
			rel.Weight = weight
		}

		c.rec.RelatedContent[i] = rel
	}
}

// bibString accepts strings and whole numbers for bibliographic fields;
// years in particular are commonly written unquoted.
func bibString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10), true
		}
		return "", false
	default:
		return "", false
	}
}

// isWellFormedURI accepts http(s) URLs and site-relative paths.
func isWellFormedURI(uri string) bool {
	parsed, err := url.Parse(uri)
	if err != nil {
		return false
	}
	if parsed.Scheme == "" {
		return true
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}

// jsonTypeName names a decoded JSON value's type for error messages.
func jsonTypeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
