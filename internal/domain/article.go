package domain

// RawArticle is the provider-agnostic shape of a fetched news article.
// Published timestamps are carried verbatim because the providers disagree
// on formats; the pipeline never orders by them.
type RawArticle struct {
	Title       string
	Description string
	Content     string
	PublishedAt string
	URL         string
	Image       string
	SourceName  string
}

// CanonicalArticle is a RawArticle that survived normalization and dedup.
// Title and Body are guaranteed non-empty.
type CanonicalArticle struct {
	Title       string
	Body        string
	PublishedAt string
	URL         string
	Image       string
	SourceName  string
}

// Entity labels produced by NER tagging.
const (
	LabelOrg   = "ORG"
	LabelPlace = "GPE"
)

// Entity is a single tagged span, listed in order of appearance in the text.
type Entity struct {
	Text  string
	Label string
}
