package models

import (
	"fmt"
	"strings"
)

// QueryResponse bundles the results of one /query call. TossupsFound and
// BonusesFound are the total match counts, which exceed the lengths of
// Tossups and Bonuses when the service returns only one page of the match
// set. QueryString is the submitted search text echoed back by the service;
// it is kept for display and debugging, not re-validated.
type QueryResponse struct {
	Tossups      []*Tossup `json:"tossups"`
	Bonuses      []*Bonus  `json:"bonuses"`
	TossupsFound int       `json:"tossups_found"`
	BonusesFound int       `json:"bonuses_found"`
	QueryString  string    `json:"query_string"`
}

// QueryResponseFromJSON builds a QueryResponse from the decoded top-level
// /query payload. Construction is all-or-nothing: the first question record
// that fails to parse aborts the whole response, so a caller never receives
// a silently truncated result set.
// See https://www.qbreader.org/api-docs/query#returns for the schema.
func QueryResponseFromJSON(obj map[string]any) (*QueryResponse, error) {
	tossupsObj, err := objectField(obj, "tossups")
	if err != nil {
		return nil, err
	}
	bonusesObj, err := objectField(obj, "bonuses")
	if err != nil {
		return nil, err
	}

	tossupRecords, err := recordArrayField(tossupsObj, "questionArray")
	if err != nil {
		return nil, err
	}
	tossups := make([]*Tossup, len(tossupRecords))
	for i, record := range tossupRecords {
		if tossups[i], err = TossupFromJSON(record); err != nil {
			return nil, fmt.Errorf("tossup %d: %w", i, err)
		}
	}

	bonusRecords, err := recordArrayField(bonusesObj, "questionArray")
	if err != nil {
		return nil, err
	}
	bonuses := make([]*Bonus, len(bonusRecords))
	for i, record := range bonusRecords {
		if bonuses[i], err = BonusFromJSON(record); err != nil {
			return nil, fmt.Errorf("bonus %d: %w", i, err)
		}
	}

	tossupsFound, err := intField(tossupsObj, "count")
	if err != nil {
		return nil, err
	}
	bonusesFound, err := intField(bonusesObj, "count")
	if err != nil {
		return nil, err
	}
	queryString, err := stringField(obj, "queryString")
	if err != nil {
		return nil, err
	}

	return &QueryResponse{
		Tossups:      tossups,
		Bonuses:      bonuses,
		TossupsFound: tossupsFound,
		BonusesFound: bonusesFound,
		QueryString:  queryString,
	}, nil
}

// String renders every tossup text, then every bonus, for quick inspection.
// Tossups are separated by blank lines, as are bonuses; the two sections are
// separated by two blank lines. Not a stable serialization format.
func (r *QueryResponse) String() string {
	tossups := make([]string, len(r.Tossups))
	for i, t := range r.Tossups {
		tossups[i] = t.String()
	}
	bonuses := make([]string, len(r.Bonuses))
	for i, b := range r.Bonuses {
		bonuses[i] = b.String()
	}
	return strings.Join(tossups, "\n\n") + "\n\n\n" + strings.Join(bonuses, "\n\n")
}

// Packet holds every question of one packet, tossups first, in packet order.
type Packet struct {
	Tossups []*Tossup `json:"tossups"`
	Bonuses []*Bonus  `json:"bonuses"`
}

// PacketFromJSON builds a Packet from the decoded /packet payload. Like
// QueryResponseFromJSON, the first failing record aborts the whole packet.
func PacketFromJSON(obj map[string]any) (*Packet, error) {
	tossupRecords, err := recordArrayField(obj, "tossups")
	if err != nil {
		return nil, err
	}
	tossups := make([]*Tossup, len(tossupRecords))
	for i, record := range tossupRecords {
		if tossups[i], err = TossupFromJSON(record); err != nil {
			return nil, fmt.Errorf("tossup %d: %w", i, err)
		}
	}

	bonusRecords, err := recordArrayField(obj, "bonuses")
	if err != nil {
		return nil, err
	}
	bonuses := make([]*Bonus, len(bonusRecords))
	for i, record := range bonusRecords {
		if bonuses[i], err = BonusFromJSON(record); err != nil {
			return nil, fmt.Errorf("bonus %d: %w", i, err)
		}
	}

	return &Packet{Tossups: tossups, Bonuses: bonuses}, nil
}

// AnswerCheck is the judgement returned by /check-answer for one guess
// against an answer line.
type AnswerCheck struct {
	Directive      string `json:"directive"`      // "accept", "prompt", or "reject"
	DirectedPrompt string `json:"directedPrompt"` // follow-up prompt text, when Directive is "prompt"
}

// AnswerCheckFromJSON builds an AnswerCheck from the decoded /check-answer
// payload, a two-element array of [directive, directedPrompt].
func AnswerCheckFromJSON(arr []any) (*AnswerCheck, error) {
	if len(arr) == 0 {
		return nil, &MalformedRecordError{Field: "directive", Reason: "empty check-answer result"}
	}
	directive, ok := arr[0].(string)
	if !ok {
		return nil, &MalformedRecordError{Field: "directive", Reason: fmt.Sprintf("expected string, got %T", arr[0])}
	}
	check := &AnswerCheck{Directive: directive}
	if len(arr) > 1 && arr[1] != nil {
		prompt, ok := arr[1].(string)
		if !ok {
			return nil, &MalformedRecordError{Field: "directedPrompt", Reason: fmt.Sprintf("expected string, got %T", arr[1])}
		}
		check.DirectedPrompt = prompt
	}
	return check, nil
}
