package qbreader

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbreader/go-qbreader/internal/interfaces"
	"github.com/qbreader/go-qbreader/internal/models"
)

const tossupJSON = `{
	"question": "What force, for 10 points, did Newton describe?",
	"answer": "gravity",
	"category": "Science",
	"subcategory": "Physics",
	"setName": "2021 Set",
	"setYear": 2021,
	"packetNumber": 1,
	"questionNumber": 1,
	"difficulty": 3
}`

const bonusJSON = `{
	"leadin": "Answer the following about orbital mechanics, for 10 points each:",
	"parts": ["Name the effect.", "Name the transfer."],
	"answers": ["Oberth effect", "Hohmann transfer"],
	"category": "Science",
	"subcategory": "Physics",
	"setName": "2021 Set",
	"setYear": 2021,
	"packetNumber": 2,
	"questionNumber": 4,
	"difficulty": "7"
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(WithBaseURL(server.URL), WithRateLimit(1000))
}

func TestQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/query", r.URL.Path)
		assert.Equal(t, "tossup", r.URL.Query().Get("questionType"))
		assert.Equal(t, "all", r.URL.Query().Get("searchType"))
		assert.Equal(t, "newton", r.URL.Query().Get("queryString"))
		assert.Equal(t, "false", r.URL.Query().Get("exactPhrase"))
		assert.Equal(t, "3,7", r.URL.Query().Get("difficulties"))
		assert.Equal(t, "Science", r.URL.Query().Get("categories"))
		assert.Equal(t, "25", r.URL.Query().Get("maxReturnLength"))
		assert.Equal(t, "1", r.URL.Query().Get("tossupPagination"))

		fmt.Fprintf(w, `{
			"tossups": {"questionArray": [%s], "count": 57},
			"bonuses": {"questionArray": [], "count": 0},
			"queryString": "newton"
		}`, tossupJSON)
	})

	response, err := client.Query(context.Background(),
		interfaces.WithQuestionType(interfaces.QuestionTypeTossup),
		interfaces.WithQueryString("newton"),
		interfaces.WithDifficulties(models.DifficultyHSRegular, models.DifficultyCollegeTwoDot),
		interfaces.WithCategories(models.CategoryScience),
	)
	require.NoError(t, err)

	require.Len(t, response.Tossups, 1)
	assert.Equal(t, 57, response.TossupsFound)
	assert.Equal(t, "newton", response.QueryString)
	assert.Equal(t, models.DifficultyHSRegular, response.Tossups[0].Difficulty)
	assert.Equal(t, "gravity", response.Tossups[0].FormattedAnswer)
}

func TestQuery_OmitsEmptyFilters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("difficulties"))
		assert.False(t, r.URL.Query().Has("categories"))
		assert.False(t, r.URL.Query().Has("subcategories"))
		assert.False(t, r.URL.Query().Has("setName"))

		fmt.Fprint(w, `{
			"tossups": {"questionArray": [], "count": 0},
			"bonuses": {"questionArray": [], "count": 0},
			"queryString": ""
		}`)
	})

	_, err := client.Query(context.Background())
	require.NoError(t, err)
}

func TestQuery_InvalidParams(t *testing.T) {
	client := NewClient()

	_, err := client.Query(context.Background(), interfaces.WithMaxReturnLength(0))
	assert.ErrorContains(t, err, "maxReturnLength")

	_, err = client.Query(context.Background(), interfaces.WithQuestionType("both"))
	assert.ErrorContains(t, err, "questionType")

	_, err = client.Query(context.Background(), interfaces.WithPagination(0, 1))
	assert.ErrorContains(t, err, "tossupPagination")
}

func TestQuery_MalformedRecordPropagates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"tossups": {"questionArray": [{"answer": "gravity"}], "count": 1},
			"bonuses": {"questionArray": [], "count": 0},
			"queryString": "newton"
		}`)
	})

	_, err := client.Query(context.Background())
	var missing *models.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "question", missing.Field)
}

func TestRandomTossups(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/random-tossup", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("number"))
		assert.Equal(t, "2010", r.URL.Query().Get("min_year"))
		assert.Equal(t, "2023", r.URL.Query().Get("max_year"))

		fmt.Fprintf(w, `{"tossups": [%s, %s]}`, tossupJSON, tossupJSON)
	})

	tossups, err := client.RandomTossups(context.Background(), interfaces.WithNumber(2))
	require.NoError(t, err)
	require.Len(t, tossups, 2)
	assert.Equal(t, "2021 Set", tossups[0].Set)
}

func TestRandomTossups_InvalidNumber(t *testing.T) {
	client := NewClient()
	_, err := client.RandomTossups(context.Background(), interfaces.WithNumber(0))
	assert.ErrorContains(t, err, "number must be at least 1")
}

func TestRandomBonuses(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/random-bonus", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("threePartBonuses"))

		fmt.Fprintf(w, `{"bonuses": [%s]}`, bonusJSON)
	})

	bonuses, err := client.RandomBonuses(context.Background(), interfaces.WithThreePartBonuses(true))
	require.NoError(t, err)
	require.Len(t, bonuses, 1)

	bonus := bonuses[0]
	assert.Len(t, bonus.Parts, 2)
	// difficulty arrives as a JSON string here; same variant either way
	assert.Equal(t, models.DifficultyCollegeTwoDot, bonus.Difficulty)
	// no formatted_answers in the payload: falls back to answers
	assert.Equal(t, bonus.Answers, bonus.FormattedAnswers)
}

func TestPacket(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/packet", r.URL.Path)
		assert.Equal(t, "2023 MRNA", r.URL.Query().Get("setName"))
		assert.Equal(t, "5", r.URL.Query().Get("packetNumber"))

		fmt.Fprintf(w, `{"tossups": [%s], "bonuses": [%s]}`, tossupJSON, bonusJSON)
	})

	packet, err := client.Packet(context.Background(), "2023 MRNA", 5)
	require.NoError(t, err)
	assert.Len(t, packet.Tossups, 1)
	assert.Len(t, packet.Bonuses, 1)
}

func TestNumPackets(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/num-packets", r.URL.Path)
		fmt.Fprint(w, `{"numPackets": 11}`)
	})

	n, err := client.NumPackets(context.Background(), "2023 MRNA")
	require.NoError(t, err)
	assert.Equal(t, 11, n)
}

func TestSetList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"setList": ["2023 PACE NSC", "2023 MRNA"]}`)
	})

	sets, err := client.SetList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2023 PACE NSC", "2023 MRNA"}, sets)
}

func TestRandomName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"randomName": "brave-walrus"}`)
	})

	name, err := client.RandomName(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "brave-walrus", name)
}

func TestCheckAnswer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/check-answer", r.URL.Path)
		assert.Equal(t, "spacecraft", r.URL.Query().Get("answerline"))
		assert.Equal(t, "space ship", r.URL.Query().Get("givenAnswer"))
		fmt.Fprint(w, `["prompt", "what kind of craft?"]`)
	})

	check, err := client.CheckAnswer(context.Background(), "spacecraft", "space ship")
	require.NoError(t, err)
	assert.Equal(t, "prompt", check.Directive)
	assert.Equal(t, "what kind of craft?", check.DirectedPrompt)
}

func TestAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	})

	_, err := client.SetList(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "/set-list", apiErr.Endpoint)
}

func TestContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"setList": []}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.SetList(ctx)
	require.Error(t, err)
}
