package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Category is a question's top-level subject classification. The set of
// values is owned by the qbreader service and treated as a closed, versioned
// vocabulary; parsing matches canonical strings exactly.
type Category string

const (
	CategoryLiterature    Category = "Literature"
	CategoryHistory       Category = "History"
	CategoryScience       Category = "Science"
	CategoryFineArts      Category = "Fine Arts"
	CategoryReligion      Category = "Religion"
	CategoryMythology     Category = "Mythology"
	CategoryPhilosophy    Category = "Philosophy"
	CategorySocialScience Category = "Social Science"
	CategoryCurrentEvents Category = "Current Events"
	CategoryGeography     Category = "Geography"
	CategoryOtherAcademic Category = "Other Academic"
	CategoryTrash         Category = "Trash"
)

// Categories lists every category in canonical order.
var Categories = []Category{
	CategoryLiterature,
	CategoryHistory,
	CategoryScience,
	CategoryFineArts,
	CategoryReligion,
	CategoryMythology,
	CategoryPhilosophy,
	CategorySocialScience,
	CategoryCurrentEvents,
	CategoryGeography,
	CategoryOtherAcademic,
	CategoryTrash,
}

func (c Category) String() string { return string(c) }

// ParseCategory maps a category name exactly as returned by the service to
// its Category value.
func ParseCategory(raw string) (Category, error) {
	for _, c := range Categories {
		if raw == string(c) {
			return c, nil
		}
	}
	return "", &InvalidEnumValueError{Enum: "category", Value: raw}
}

// Subcategory is the second level of the subject taxonomy.
type Subcategory string

const (
	SubcategoryAmericanLiterature  Subcategory = "American Literature"
	SubcategoryBritishLiterature   Subcategory = "British Literature"
	SubcategoryClassicalLiterature Subcategory = "Classical Literature"
	SubcategoryEuropeanLiterature  Subcategory = "European Literature"
	SubcategoryWorldLiterature     Subcategory = "World Literature"
	SubcategoryOtherLiterature     Subcategory = "Other Literature"

	SubcategoryAmericanHistory Subcategory = "American History"
	SubcategoryAncientHistory  Subcategory = "Ancient History"
	SubcategoryEuropeanHistory Subcategory = "European History"
	SubcategoryWorldHistory    Subcategory = "World History"
	SubcategoryOtherHistory    Subcategory = "Other History"

	SubcategoryBiology      Subcategory = "Biology"
	SubcategoryChemistry    Subcategory = "Chemistry"
	SubcategoryPhysics      Subcategory = "Physics"
	SubcategoryMath         Subcategory = "Math"
	SubcategoryOtherScience Subcategory = "Other Science"

	SubcategoryVisualFineArts   Subcategory = "Visual Fine Arts"
	SubcategoryAuditoryFineArts Subcategory = "Auditory Fine Arts"
	SubcategoryOtherFineArts    Subcategory = "Other Fine Arts"
)

// Subcategories lists every subcategory in canonical order.
var Subcategories = []Subcategory{
	SubcategoryAmericanLiterature,
	SubcategoryBritishLiterature,
	SubcategoryClassicalLiterature,
	SubcategoryEuropeanLiterature,
	SubcategoryWorldLiterature,
	SubcategoryOtherLiterature,
	SubcategoryAmericanHistory,
	SubcategoryAncientHistory,
	SubcategoryEuropeanHistory,
	SubcategoryWorldHistory,
	SubcategoryOtherHistory,
	SubcategoryBiology,
	SubcategoryChemistry,
	SubcategoryPhysics,
	SubcategoryMath,
	SubcategoryOtherScience,
	SubcategoryVisualFineArts,
	SubcategoryAuditoryFineArts,
	SubcategoryOtherFineArts,
}

func (s Subcategory) String() string { return string(s) }

// ParseSubcategory maps a subcategory name exactly as returned by the
// service to its Subcategory value.
func ParseSubcategory(raw string) (Subcategory, error) {
	for _, s := range Subcategories {
		if raw == string(s) {
			return s, nil
		}
	}
	return "", &InvalidEnumValueError{Enum: "subcategory", Value: raw}
}

// Difficulty is the ordinal skill scale used by the service. The canonical
// form is a numeric string ("0".."10") because the service stores difficulty
// as an integer level; the JSON may carry it as either a number or a string.
type Difficulty string

const (
	DifficultyUnrated         Difficulty = "0"
	DifficultyMiddleSchool    Difficulty = "1"
	DifficultyHSEasy          Difficulty = "2"
	DifficultyHSRegular       Difficulty = "3"
	DifficultyHSHard          Difficulty = "4"
	DifficultyHSNationals     Difficulty = "5"
	DifficultyCollegeOneDot   Difficulty = "6"
	DifficultyCollegeTwoDot   Difficulty = "7"
	DifficultyCollegeThreeDot Difficulty = "8"
	DifficultyCollegeFourDot  Difficulty = "9"
	DifficultyOpen            Difficulty = "10"
)

// Difficulties lists every difficulty from easiest bracket to hardest.
var Difficulties = []Difficulty{
	DifficultyUnrated,
	DifficultyMiddleSchool,
	DifficultyHSEasy,
	DifficultyHSRegular,
	DifficultyHSHard,
	DifficultyHSNationals,
	DifficultyCollegeOneDot,
	DifficultyCollegeTwoDot,
	DifficultyCollegeThreeDot,
	DifficultyCollegeFourDot,
	DifficultyOpen,
}

func (d Difficulty) String() string { return string(d) }

// Level returns the difficulty as its integer level.
func (d Difficulty) Level() int {
	n, _ := strconv.Atoi(string(d))
	return n
}

// ParseDifficulty maps a numeric-string difficulty level ("0".."10") to its
// Difficulty value.
func ParseDifficulty(raw string) (Difficulty, error) {
	for _, d := range Difficulties {
		if raw == string(d) {
			return d, nil
		}
	}
	return "", &InvalidEnumValueError{Enum: "difficulty", Value: raw}
}

// difficultyFromJSON coerces a decoded JSON difficulty, which the service
// emits as either a number or a numeric string, into a Difficulty.
func difficultyFromJSON(v any) (Difficulty, error) {
	switch n := v.(type) {
	case string:
		return ParseDifficulty(n)
	case float64:
		return ParseDifficulty(strconv.Itoa(int(n)))
	case int:
		return ParseDifficulty(strconv.Itoa(n))
	case json.Number:
		return ParseDifficulty(n.String())
	default:
		return "", &InvalidEnumValueError{Enum: "difficulty", Value: fmt.Sprintf("%v", v)}
	}
}
