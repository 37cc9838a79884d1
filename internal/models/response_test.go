package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryPayload(tossups, bonuses []any, tossupCount, bonusCount int, queryString string) map[string]any {
	return map[string]any{
		"tossups": map[string]any{
			"questionArray": tossups,
			"count":         float64(tossupCount),
		},
		"bonuses": map[string]any{
			"questionArray": bonuses,
			"count":         float64(bonusCount),
		},
		"queryString": queryString,
	}
}

func TestQueryResponseFromJSON(t *testing.T) {
	payload := queryPayload(
		[]any{tossupRecord(), tossupRecord()},
		[]any{bonusRecord()},
		57, 12, "spacecraft",
	)

	response, err := QueryResponseFromJSON(payload)
	require.NoError(t, err)

	assert.Len(t, response.Tossups, 2)
	assert.Len(t, response.Bonuses, 1)
	assert.Equal(t, "spacecraft", response.QueryString)
}

func TestQueryResponseFromJSON_PaginatedCounts(t *testing.T) {
	// The service reports total matches; the page may hold fewer.
	payload := queryPayload([]any{tossupRecord(), tossupRecord()}, []any{}, 57, 0, "spacecraft")

	response, err := QueryResponseFromJSON(payload)
	require.NoError(t, err)

	assert.Len(t, response.Tossups, 2)
	assert.Equal(t, 57, response.TossupsFound)
	assert.Equal(t, 0, response.BonusesFound)
}

func TestQueryResponseFromJSON_FirstFailureAborts(t *testing.T) {
	bad := tossupRecord()
	delete(bad, "question")
	payload := queryPayload([]any{tossupRecord(), bad}, []any{}, 2, 0, "spacecraft")

	response, err := QueryResponseFromJSON(payload)
	require.Error(t, err)
	assert.Nil(t, response)

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "question", missing.Field)
}

func TestQueryResponseFromJSON_MissingSection(t *testing.T) {
	payload := queryPayload([]any{}, []any{}, 0, 0, "spacecraft")
	delete(payload, "bonuses")

	_, err := QueryResponseFromJSON(payload)
	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "bonuses", missing.Field)
}

func TestQueryResponseString(t *testing.T) {
	record := map[string]any{
		"question":       "What force, for 10 points, did Newton describe?",
		"answer":         "gravity",
		"category":       "Science",
		"subcategory":    "Physics",
		"setName":        "2021 Set",
		"setYear":        float64(2021),
		"packetNumber":   float64(1),
		"questionNumber": float64(1),
		"difficulty":     float64(3),
	}
	payload := queryPayload([]any{record}, []any{}, 1, 0, "gravity")

	response, err := QueryResponseFromJSON(payload)
	require.NoError(t, err)

	// One tossup, zero bonuses: the question text, the section separator,
	// then an empty bonus section.
	assert.Equal(t, "What force, for 10 points, did Newton describe?\n\n\n", response.String())
}

func TestPacketFromJSON(t *testing.T) {
	packet, err := PacketFromJSON(map[string]any{
		"tossups": []any{tossupRecord()},
		"bonuses": []any{bonusRecord()},
	})
	require.NoError(t, err)
	assert.Len(t, packet.Tossups, 1)
	assert.Len(t, packet.Bonuses, 1)
}

func TestPacketFromJSON_FirstFailureAborts(t *testing.T) {
	bad := bonusRecord()
	bad["subcategory"] = "Geology"

	_, err := PacketFromJSON(map[string]any{
		"tossups": []any{},
		"bonuses": []any{bad},
	})
	var enumErr *InvalidEnumValueError
	require.True(t, errors.As(err, &enumErr))
}

func TestAnswerCheckFromJSON(t *testing.T) {
	check, err := AnswerCheckFromJSON([]any{"accept", nil})
	require.NoError(t, err)
	assert.Equal(t, "accept", check.Directive)
	assert.Empty(t, check.DirectedPrompt)

	check, err = AnswerCheckFromJSON([]any{"prompt", "what kind?"})
	require.NoError(t, err)
	assert.Equal(t, "prompt", check.Directive)
	assert.Equal(t, "what kind?", check.DirectedPrompt)
}

func TestAnswerCheckFromJSON_Empty(t *testing.T) {
	_, err := AnswerCheckFromJSON(nil)
	var malformed *MalformedRecordError
	require.True(t, errors.As(err, &malformed))
}
