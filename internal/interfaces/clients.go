// Package interfaces defines the client contract for the qbreader API
package interfaces

import (
	"context"

	"github.com/qbreader/go-qbreader/internal/models"
)

// QuestionClient provides access to the qbreader question API
type QuestionClient interface {
	// Query searches the question database
	Query(ctx context.Context, opts ...QueryOption) (*models.QueryResponse, error)

	// RandomTossups retrieves random tossups
	RandomTossups(ctx context.Context, opts ...RandomOption) ([]*models.Tossup, error)

	// RandomBonuses retrieves random bonuses
	RandomBonuses(ctx context.Context, opts ...RandomOption) ([]*models.Bonus, error)

	// RandomName retrieves a random adjective-noun player name
	RandomName(ctx context.Context) (string, error)

	// Packet retrieves all questions of one packet
	Packet(ctx context.Context, setName string, packetNumber int) (*models.Packet, error)

	// PacketTossups retrieves only a packet's tossups
	PacketTossups(ctx context.Context, setName string, packetNumber int) ([]*models.Tossup, error)

	// PacketBonuses retrieves only a packet's bonuses
	PacketBonuses(ctx context.Context, setName string, packetNumber int) ([]*models.Bonus, error)

	// NumPackets retrieves the number of packets in a set
	NumPackets(ctx context.Context, setName string) (int, error)

	// SetList retrieves the names of all question sets
	SetList(ctx context.Context) ([]string, error)

	// CheckAnswer judges a given answer against an answer line
	CheckAnswer(ctx context.Context, answerline, givenAnswer string) (*models.AnswerCheck, error)
}

// QuestionType selects which question kind a query searches.
type QuestionType string

const (
	QuestionTypeTossup QuestionType = "tossup"
	QuestionTypeBonus  QuestionType = "bonus"
	QuestionTypeAll    QuestionType = "all"
)

// SearchType selects which question text a query matches against.
type SearchType string

const (
	SearchTypeQuestion SearchType = "question"
	SearchTypeAnswer   SearchType = "answer"
	SearchTypeAll      SearchType = "all"
)

// QueryOption configures a Query request
type QueryOption func(*QueryParams)

// QueryParams holds /query parameters
type QueryParams struct {
	QuestionType     QuestionType
	SearchType       SearchType
	QueryString      string
	ExactPhrase      bool
	IgnoreDiacritics bool
	Regex            bool
	Randomize        bool
	SetName          string
	Difficulties     []models.Difficulty
	Categories       []models.Category
	Subcategories    []models.Subcategory
	MaxReturnLength  int
	TossupPagination int
	BonusPagination  int
}

// WithQuestionType restricts the query to tossups or bonuses
func WithQuestionType(questionType QuestionType) QueryOption {
	return func(p *QueryParams) {
		p.QuestionType = questionType
	}
}

// WithSearchType restricts matching to question or answer text
func WithSearchType(searchType SearchType) QueryOption {
	return func(p *QueryParams) {
		p.SearchType = searchType
	}
}

// WithQueryString sets the text to search for
func WithQueryString(queryString string) QueryOption {
	return func(p *QueryParams) {
		p.QueryString = queryString
	}
}

// WithExactPhrase requires the query string to match as an exact phrase
func WithExactPhrase(exact bool) QueryOption {
	return func(p *QueryParams) {
		p.ExactPhrase = exact
	}
}

// WithIgnoreDiacritics transliterates diacritical marks before matching
func WithIgnoreDiacritics(ignore bool) QueryOption {
	return func(p *QueryParams) {
		p.IgnoreDiacritics = ignore
	}
}

// WithRegex treats the query string as a regular expression
func WithRegex(regex bool) QueryOption {
	return func(p *QueryParams) {
		p.Regex = regex
	}
}

// WithRandomize randomizes the order of the returned questions
func WithRandomize(randomize bool) QueryOption {
	return func(p *QueryParams) {
		p.Randomize = randomize
	}
}

// WithSetName limits the query to one question set
func WithSetName(setName string) QueryOption {
	return func(p *QueryParams) {
		p.SetName = setName
	}
}

// WithDifficulties limits the query to the given difficulties
func WithDifficulties(difficulties ...models.Difficulty) QueryOption {
	return func(p *QueryParams) {
		p.Difficulties = difficulties
	}
}

// WithCategories limits the query to the given categories
func WithCategories(categories ...models.Category) QueryOption {
	return func(p *QueryParams) {
		p.Categories = categories
	}
}

// WithSubcategories limits the query to the given subcategories.
// The API does not check consistency between categories and subcategories.
func WithSubcategories(subcategories ...models.Subcategory) QueryOption {
	return func(p *QueryParams) {
		p.Subcategories = subcategories
	}
}

// WithMaxReturnLength caps the number of questions returned per kind
func WithMaxReturnLength(max int) QueryOption {
	return func(p *QueryParams) {
		p.MaxReturnLength = max
	}
}

// WithPagination selects the page of tossups and bonuses to return
func WithPagination(tossupPage, bonusPage int) QueryOption {
	return func(p *QueryParams) {
		p.TossupPagination = tossupPage
		p.BonusPagination = bonusPage
	}
}

// RandomOption configures RandomTossups and RandomBonuses requests
type RandomOption func(*RandomParams)

// RandomParams holds /random-tossup and /random-bonus parameters
type RandomParams struct {
	Difficulties     []models.Difficulty
	Categories       []models.Category
	Subcategories    []models.Subcategory
	Number           int
	MinYear          int
	MaxYear          int
	ThreePartBonuses bool // only consulted by RandomBonuses
}

// WithRandomDifficulties limits random questions to the given difficulties
func WithRandomDifficulties(difficulties ...models.Difficulty) RandomOption {
	return func(p *RandomParams) {
		p.Difficulties = difficulties
	}
}

// WithRandomCategories limits random questions to the given categories
func WithRandomCategories(categories ...models.Category) RandomOption {
	return func(p *RandomParams) {
		p.Categories = categories
	}
}

// WithRandomSubcategories limits random questions to the given subcategories
func WithRandomSubcategories(subcategories ...models.Subcategory) RandomOption {
	return func(p *RandomParams) {
		p.Subcategories = subcategories
	}
}

// WithNumber sets how many questions to return
func WithNumber(number int) RandomOption {
	return func(p *RandomParams) {
		p.Number = number
	}
}

// WithYearRange limits random questions to sets from the given years
func WithYearRange(minYear, maxYear int) RandomOption {
	return func(p *RandomParams) {
		p.MinYear = minYear
		p.MaxYear = maxYear
	}
}

// WithThreePartBonuses restricts random bonuses to three-part bonuses
func WithThreePartBonuses(threeParts bool) RandomOption {
	return func(p *RandomParams) {
		p.ThreePartBonuses = threeParts
	}
}
