// Package models defines the typed data model for the qbreader API: the
// closed subject/difficulty taxonomies, the two question entities, and the
// aggregates the query endpoints return. Construction happens once, from the
// decoded JSON record; every value is immutable after that and safe to share
// across goroutines.
package models

import "strings"

// Tossup is a single question with one scored answer.
type Tossup struct {
	Question        string      `json:"question"`
	Answer          string      `json:"answer"`
	FormattedAnswer string      `json:"formatted_answer"` // never empty when Answer is non-empty
	Category        Category    `json:"category"`
	Subcategory     Subcategory `json:"subcategory"`
	Set             string      `json:"set"`
	Year            int         `json:"year"`
	PacketNumber    int         `json:"packet_number"`
	QuestionNumber  int         `json:"question_number"`
	Difficulty      Difficulty  `json:"difficulty"`
}

// TossupFromJSON builds a Tossup from a decoded question record.
// See https://www.qbreader.org/api-docs/schemas#tossups for the schema.
//
// question and answer are required. formatted_answer falls back to answer
// when absent or empty, so display code never has to special-case it. The
// schema's setName/setYear/packetNumber/questionNumber are renamed to
// Set/Year/PacketNumber/QuestionNumber; values pass through unchanged.
func TossupFromJSON(obj map[string]any) (*Tossup, error) {
	question, err := stringField(obj, "question")
	if err != nil {
		return nil, err
	}
	answer, err := stringField(obj, "answer")
	if err != nil {
		return nil, err
	}
	formatted, err := optionalStringField(obj, "formatted_answer")
	if err != nil {
		return nil, err
	}
	if formatted == "" {
		formatted = answer
	}

	category, subcategory, difficulty, err := taxonomyFields(obj)
	if err != nil {
		return nil, err
	}

	set, err := stringField(obj, "setName")
	if err != nil {
		return nil, err
	}
	year, err := intField(obj, "setYear")
	if err != nil {
		return nil, err
	}
	packetNumber, err := intField(obj, "packetNumber")
	if err != nil {
		return nil, err
	}
	questionNumber, err := intField(obj, "questionNumber")
	if err != nil {
		return nil, err
	}

	return &Tossup{
		Question:        question,
		Answer:          answer,
		FormattedAnswer: formatted,
		Category:        category,
		Subcategory:     subcategory,
		Set:             set,
		Year:            year,
		PacketNumber:    packetNumber,
		QuestionNumber:  questionNumber,
		Difficulty:      difficulty,
	}, nil
}

// String returns the question text.
func (t *Tossup) String() string {
	return t.Question
}

// Bonus is a multi-part question: one leadin and N parts, each part paired
// positionally with the answer at the same index. The three sequences keep
// their source order; they are never re-sorted or deduplicated.
type Bonus struct {
	Leadin           string      `json:"leadin"`
	Parts            []string    `json:"parts"`
	Answers          []string    `json:"answers"`
	FormattedAnswers []string    `json:"formatted_answers"` // same length as Parts and Answers
	Category         Category    `json:"category"`
	Subcategory      Subcategory `json:"subcategory"`
	Set              string      `json:"set"`
	Year             int         `json:"year"`
	PacketNumber     int         `json:"packet_number"`
	QuestionNumber   int         `json:"question_number"`
	Difficulty       Difficulty  `json:"difficulty"`
}

// BonusFromJSON builds a Bonus from a decoded question record.
// See https://www.qbreader.org/api-docs/schemas#bonus for the schema.
//
// leadin, parts, and answers are required. formatted_answers falls back
// wholesale to answers when absent or empty (not element-wise). parts,
// answers, and formatted_answers must be the same length; a mismatch is a
// MalformedRecordError.
func BonusFromJSON(obj map[string]any) (*Bonus, error) {
	leadin, err := stringField(obj, "leadin")
	if err != nil {
		return nil, err
	}
	parts, err := stringSliceField(obj, "parts")
	if err != nil {
		return nil, err
	}
	answers, err := stringSliceField(obj, "answers")
	if err != nil {
		return nil, err
	}
	formatted, err := optionalStringSliceField(obj, "formatted_answers")
	if err != nil {
		return nil, err
	}
	if len(formatted) == 0 {
		formatted = append([]string(nil), answers...)
	}
	if len(parts) != len(answers) || len(answers) != len(formatted) {
		return nil, &MalformedRecordError{
			Field:  "answers",
			Reason: "parts, answers, and formatted_answers must have equal length",
		}
	}

	category, subcategory, difficulty, err := taxonomyFields(obj)
	if err != nil {
		return nil, err
	}

	set, err := stringField(obj, "setName")
	if err != nil {
		return nil, err
	}
	year, err := intField(obj, "setYear")
	if err != nil {
		return nil, err
	}
	packetNumber, err := intField(obj, "packetNumber")
	if err != nil {
		return nil, err
	}
	questionNumber, err := intField(obj, "questionNumber")
	if err != nil {
		return nil, err
	}

	return &Bonus{
		Leadin:           leadin,
		Parts:            parts,
		Answers:          answers,
		FormattedAnswers: formatted,
		Category:         category,
		Subcategory:      subcategory,
		Set:              set,
		Year:             year,
		PacketNumber:     packetNumber,
		QuestionNumber:   questionNumber,
		Difficulty:       difficulty,
	}, nil
}

// String returns the part texts, one per line.
func (b *Bonus) String() string {
	return strings.Join(b.Parts, "\n")
}

// taxonomyFields parses the three enum fields shared by tossups and bonuses.
// A parse failure fails the whole record; no entity is built from a record
// with an unknown category, subcategory, or difficulty.
func taxonomyFields(obj map[string]any) (Category, Subcategory, Difficulty, error) {
	rawCategory, err := stringField(obj, "category")
	if err != nil {
		return "", "", "", err
	}
	category, err := ParseCategory(rawCategory)
	if err != nil {
		return "", "", "", err
	}

	rawSubcategory, err := stringField(obj, "subcategory")
	if err != nil {
		return "", "", "", err
	}
	subcategory, err := ParseSubcategory(rawSubcategory)
	if err != nil {
		return "", "", "", err
	}

	v, ok := obj["difficulty"]
	if !ok {
		return "", "", "", &MissingFieldError{Field: "difficulty"}
	}
	difficulty, err := difficultyFromJSON(v)
	if err != nil {
		return "", "", "", err
	}

	return category, subcategory, difficulty, nil
}
