package qbreader

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/qbreader/go-qbreader/internal/interfaces"
	"github.com/qbreader/go-qbreader/internal/models"
)

// Query-parameter rendering for the qbreader API: enum filters become
// comma-separated values, booleans become "true"/"false", and empty filters
// are omitted entirely.

func validateQueryParams(p *interfaces.QueryParams) error {
	switch p.QuestionType {
	case interfaces.QuestionTypeTossup, interfaces.QuestionTypeBonus, interfaces.QuestionTypeAll:
	default:
		return fmt.Errorf("questionType must be either 'tossup', 'bonus', or 'all', got %q", p.QuestionType)
	}

	switch p.SearchType {
	case interfaces.SearchTypeQuestion, interfaces.SearchTypeAnswer, interfaces.SearchTypeAll:
	default:
		return fmt.Errorf("searchType must be either 'question', 'answer', or 'all', got %q", p.SearchType)
	}

	if p.MaxReturnLength < 1 {
		return fmt.Errorf("maxReturnLength must be at least 1, got %d", p.MaxReturnLength)
	}
	if p.TossupPagination < 1 {
		return fmt.Errorf("tossupPagination must be at least 1, got %d", p.TossupPagination)
	}
	if p.BonusPagination < 1 {
		return fmt.Errorf("bonusPagination must be at least 1, got %d", p.BonusPagination)
	}
	return nil
}

func validateRandomParams(p *interfaces.RandomParams) error {
	if p.Number < 1 {
		return fmt.Errorf("number must be at least 1, got %d", p.Number)
	}
	if p.MinYear < 1 {
		return fmt.Errorf("minYear must be at least 1, got %d", p.MinYear)
	}
	if p.MaxYear < 1 {
		return fmt.Errorf("maxYear must be at least 1, got %d", p.MaxYear)
	}
	return nil
}

func queryValues(p *interfaces.QueryParams) url.Values {
	params := url.Values{}
	params.Set("questionType", string(p.QuestionType))
	params.Set("searchType", string(p.SearchType))
	params.Set("queryString", p.QueryString)
	params.Set("exactPhrase", boolParam(p.ExactPhrase))
	params.Set("ignoreDiacritics", boolParam(p.IgnoreDiacritics))
	params.Set("regex", boolParam(p.Regex))
	params.Set("randomize", boolParam(p.Randomize))
	params.Set("maxReturnLength", strconv.Itoa(p.MaxReturnLength))
	params.Set("tossupPagination", strconv.Itoa(p.TossupPagination))
	params.Set("bonusPagination", strconv.Itoa(p.BonusPagination))

	if p.SetName != "" {
		params.Set("setName", p.SetName)
	}
	setFilterValues(params, p.Difficulties, p.Categories, p.Subcategories)

	return params
}

func randomValues(p *interfaces.RandomParams, bonuses bool) url.Values {
	params := url.Values{}
	params.Set("number", strconv.Itoa(p.Number))
	params.Set("min_year", strconv.Itoa(p.MinYear))
	params.Set("max_year", strconv.Itoa(p.MaxYear))
	if bonuses && p.ThreePartBonuses {
		params.Set("threePartBonuses", boolParam(p.ThreePartBonuses))
	}
	setFilterValues(params, p.Difficulties, p.Categories, p.Subcategories)
	return params
}

func setFilterValues(params url.Values, difficulties []models.Difficulty, categories []models.Category, subcategories []models.Subcategory) {
	if len(difficulties) > 0 {
		params.Set("difficulties", joinDifficulties(difficulties))
	}
	if len(categories) > 0 {
		params.Set("categories", joinCategories(categories))
	}
	if len(subcategories) > 0 {
		params.Set("subcategories", joinSubcategories(subcategories))
	}
}

func joinDifficulties(difficulties []models.Difficulty) string {
	strs := make([]string, len(difficulties))
	for i, d := range difficulties {
		strs[i] = string(d)
	}
	return strings.Join(strs, ",")
}

func joinCategories(categories []models.Category) string {
	strs := make([]string, len(categories))
	for i, c := range categories {
		strs[i] = string(c)
	}
	return strings.Join(strs, ",")
}

func joinSubcategories(subcategories []models.Subcategory) string {
	strs := make([]string, len(subcategories))
	for i, s := range subcategories {
		strs[i] = string(s)
	}
	return strings.Join(strs, ",")
}

func boolParam(b bool) string {
	return strconv.FormatBool(b)
}
