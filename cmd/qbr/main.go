// Command qbr queries the qbreader question database from the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/qbreader/go-qbreader/internal/clients/qbreader"
	"github.com/qbreader/go-qbreader/internal/common"
	"github.com/qbreader/go-qbreader/internal/interfaces"
	"github.com/qbreader/go-qbreader/internal/models"
)

const usage = `Usage: qbr <command> [flags]

Commands:
  query          Search the question database
  random-tossup  Fetch random tossups
  random-bonus   Fetch random bonuses
  packet         Fetch one packet of a set
  num-packets    Count the packets in a set
  sets           List all question sets
  check          Check an answer against an answer line
  name           Fetch a random player name
  version        Print version information
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if os.Args[1] == "version" {
		fmt.Println(common.GetFullVersion())
		return
	}

	cfg, err := common.LoadConfig(os.Getenv("QBR_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := common.NewLogger(cfg.Logging.Level)
	client := qbreader.NewClient(
		qbreader.WithBaseURL(cfg.Client.BaseURL),
		qbreader.WithRateLimit(cfg.Client.RateLimit),
		qbreader.WithTimeout(cfg.Client.GetTimeout()),
		qbreader.WithLogger(logger),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, client, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "qbr: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client *qbreader.Client, command string, args []string) error {
	switch command {
	case "query":
		return runQuery(ctx, client, args)
	case "random-tossup":
		return runRandomTossup(ctx, client, args)
	case "random-bonus":
		return runRandomBonus(ctx, client, args)
	case "packet":
		return runPacket(ctx, client, args)
	case "num-packets":
		return runNumPackets(ctx, client, args)
	case "sets":
		return runSets(ctx, client)
	case "check":
		return runCheck(ctx, client, args)
	case "name":
		return runName(ctx, client)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func runQuery(ctx context.Context, client *qbreader.Client, args []string) error {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	questionType := fs.String("type", "all", "question type: tossup, bonus, or all")
	searchType := fs.String("search", "all", "search in: question, answer, or all")
	setName := fs.String("set", "", "limit to one question set")
	difficulties := fs.String("difficulties", "", "comma-separated difficulty levels (0-10)")
	categories := fs.String("categories", "", "comma-separated category names")
	exact := fs.Bool("exact", false, "match the query as an exact phrase")
	regex := fs.Bool("regex", false, "treat the query as a regular expression")
	randomize := fs.Bool("randomize", false, "randomize result order")
	limit := fs.Int("limit", 25, "maximum questions returned per kind")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := []interfaces.QueryOption{
		interfaces.WithQuestionType(interfaces.QuestionType(*questionType)),
		interfaces.WithSearchType(interfaces.SearchType(*searchType)),
		interfaces.WithQueryString(strings.Join(fs.Args(), " ")),
		interfaces.WithExactPhrase(*exact),
		interfaces.WithRegex(*regex),
		interfaces.WithRandomize(*randomize),
		interfaces.WithMaxReturnLength(*limit),
	}
	if *setName != "" {
		opts = append(opts, interfaces.WithSetName(*setName))
	}
	if *difficulties != "" {
		parsed, err := parseDifficulties(*difficulties)
		if err != nil {
			return err
		}
		opts = append(opts, interfaces.WithDifficulties(parsed...))
	}
	if *categories != "" {
		parsed, err := parseCategories(*categories)
		if err != nil {
			return err
		}
		opts = append(opts, interfaces.WithCategories(parsed...))
	}

	response, err := client.Query(ctx, opts...)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d tossups, %d bonuses for %q\n\n", response.TossupsFound, response.BonusesFound, response.QueryString)
	fmt.Println(response)
	return nil
}

func runRandomTossup(ctx context.Context, client *qbreader.Client, args []string) error {
	fs := flag.NewFlagSet("random-tossup", flag.ExitOnError)
	number := fs.Int("n", 1, "number of tossups")
	difficulties := fs.String("difficulties", "", "comma-separated difficulty levels (0-10)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := []interfaces.RandomOption{interfaces.WithNumber(*number)}
	if *difficulties != "" {
		parsed, err := parseDifficulties(*difficulties)
		if err != nil {
			return err
		}
		opts = append(opts, interfaces.WithRandomDifficulties(parsed...))
	}

	tossups, err := client.RandomTossups(ctx, opts...)
	if err != nil {
		return err
	}

	for _, tossup := range tossups {
		fmt.Printf("%s\nANSWER: %s\n\n", tossup, tossup.Answer)
	}
	return nil
}

func runRandomBonus(ctx context.Context, client *qbreader.Client, args []string) error {
	fs := flag.NewFlagSet("random-bonus", flag.ExitOnError)
	number := fs.Int("n", 1, "number of bonuses")
	threeParts := fs.Bool("three-parts", false, "only three-part bonuses")
	if err := fs.Parse(args); err != nil {
		return err
	}

	bonuses, err := client.RandomBonuses(ctx,
		interfaces.WithNumber(*number),
		interfaces.WithThreePartBonuses(*threeParts),
	)
	if err != nil {
		return err
	}

	for _, bonus := range bonuses {
		fmt.Println(bonus.Leadin)
		for i, part := range bonus.Parts {
			fmt.Printf("%s\nANSWER: %s\n", part, bonus.Answers[i])
		}
		fmt.Println()
	}
	return nil
}

func runPacket(ctx context.Context, client *qbreader.Client, args []string) error {
	fs := flag.NewFlagSet("packet", flag.ExitOnError)
	setName := fs.String("set", "", "question set name (required)")
	number := fs.Int("number", 1, "packet number")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *setName == "" {
		return fmt.Errorf("packet: -set is required")
	}

	packet, err := client.Packet(ctx, *setName, *number)
	if err != nil {
		return err
	}

	fmt.Printf("%s packet %d: %d tossups, %d bonuses\n", *setName, *number, len(packet.Tossups), len(packet.Bonuses))
	for _, tossup := range packet.Tossups {
		fmt.Printf("\n%d. %s\nANSWER: %s\n", tossup.QuestionNumber, tossup.Question, tossup.Answer)
	}
	return nil
}

func runNumPackets(ctx context.Context, client *qbreader.Client, args []string) error {
	fs := flag.NewFlagSet("num-packets", flag.ExitOnError)
	setName := fs.String("set", "", "question set name (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *setName == "" {
		return fmt.Errorf("num-packets: -set is required")
	}

	n, err := client.NumPackets(ctx, *setName)
	if err != nil {
		return err
	}
	fmt.Println(n)
	return nil
}

func runSets(ctx context.Context, client *qbreader.Client) error {
	sets, err := client.SetList(ctx)
	if err != nil {
		return err
	}
	for _, set := range sets {
		fmt.Println(set)
	}
	return nil
}

func runCheck(ctx context.Context, client *qbreader.Client, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("check: expected <answerline> <given-answer>")
	}

	check, err := client.CheckAnswer(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Println(check.Directive)
	if check.DirectedPrompt != "" {
		fmt.Println(check.DirectedPrompt)
	}
	return nil
}

func runName(ctx context.Context, client *qbreader.Client) error {
	name, err := client.RandomName(ctx)
	if err != nil {
		return err
	}
	fmt.Println(name)
	return nil
}

func parseDifficulties(raw string) ([]models.Difficulty, error) {
	var out []models.Difficulty
	for _, part := range strings.Split(raw, ",") {
		d, err := models.ParseDifficulty(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func parseCategories(raw string) ([]models.Category, error) {
	var out []models.Category
	for _, part := range strings.Split(raw, ",") {
		c, err := models.ParseCategory(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
