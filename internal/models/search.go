package models

// Collection names one of the independently embedded data sets searched per query
type Collection string

const (
	CollectionQuestion    Collection = "question"
	CollectionTranslation Collection = "translation"
	CollectionCommentary  Collection = "commentary"
)

// Collections lists the Gita collections in merge order. On equal distance the
// earlier collection wins.
var Collections = []Collection{
	CollectionQuestion,
	CollectionTranslation,
	CollectionCommentary,
}

// SearchHit is one nearest-neighbour result from a single collection
type SearchHit struct {
	ChapterNo int        `json:"chapter_no" db:"chapter_no"`
	VerseNo   int        `json:"verse_no" db:"verse_no"`
	Distance  float64    `json:"distance" db:"distance"`
	Source    Collection `json:"source" db:"-"`
}

// Verse is a Bhagavad Gita verse without its embedding columns
type Verse struct {
	ChapterNo     int    `json:"chapter_no" db:"chapter_no"`
	VerseNo       int    `json:"verse_no" db:"verse_no"`
	SanskritVerse string `json:"sanskrit_verse" db:"sanskrit_verse"`
	Speaker       string `json:"speaker" db:"speaker_name"`
	Translation   string `json:"translation" db:"english_translations"`
	Commentary    string `json:"commentary" db:"commentary"`
}

// Chapter holds the descriptive header of a Gita chapter
type Chapter struct {
	ChapterNo   int    `json:"chapter_no" db:"chapter_no"`
	Heading     string `json:"chapter_heading" db:"chapter_heading"`
	DescHeading string `json:"chapter_desc_heading" db:"chapter_desc_heading"`
	Intro       string `json:"chapter_intro" db:"chapter_intro"`
}

// PYSMatch is a Patanjali Yoga Sutra matched through its question pairing
type PYSMatch struct {
	ChapterNo   int    `json:"chapter_no" db:"chapter_no"`
	VerseNo     int    `json:"verse_no" db:"verse_no"`
	Sanskrit    string `json:"sanskrit" db:"sanskrit"`
	Translation string `json:"translation" db:"translation"`
}

// SummaryStatus tells whether a summary came from the model or is the fixed fallback
type SummaryStatus string

const (
	SummaryGenerated SummaryStatus = "generated"
	SummaryFallback  SummaryStatus = "fallback"
)

// Summary is the outcome of a summarization attempt. Err is set only on fallback
// and is never sent to clients.
type Summary struct {
	Text   string
	Status SummaryStatus
	Err    error
}

// Degraded reports whether the fallback text was substituted
func (s Summary) Degraded() bool {
	return s.Status == SummaryFallback
}

// VerseMatch is the best verse for a query along with how it matched
type VerseMatch struct {
	Verse
	SimilarityScore float64    `json:"similarity_score"`
	MatchSource     Collection `json:"match_source"`
	Summary         string     `json:"summary"`

	SummaryStatus SummaryStatus `json:"-"`
}

// SearchRequest is the request body for both search endpoints
type SearchRequest struct {
	Query string `json:"query"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}
