package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"PolicyTone/internal/backtest"
	"PolicyTone/internal/lexicon"
	"PolicyTone/internal/ratehistory"
	"PolicyTone/internal/service/docs"
	"PolicyTone/internal/tone"
	applogger "PolicyTone/pkg/logger"
)

func main() {
	docsDir := flag.String("docs", "data/texts", "transcript directory")
	lexiconPath := flag.String("lexicon", "", "lexicon JSON override")
	historyPath := flag.String("history", "", "rate decision JSON override")
	start := flag.Int("start", 10, "labeled meetings reserved for initial training")
	chunk := flag.Int("chunk", 5, "chunked accuracy window size")
	verbose := flag.Bool("v", false, "log each prediction step")
	flag.Parse()

	lex, err := lexicon.LoadOrDefault(*lexiconPath)
	if err != nil {
		log.Fatalf("lexicon: %v", err)
	}
	history, err := ratehistory.LoadOrDefault(*historyPath)
	if err != nil {
		log.Fatalf("rate history: %v", err)
	}

	documents, order, err := docs.NewFileStore(*docsDir).Load()
	if err != nil {
		log.Fatalf("transcripts: %v", err)
	}
	if len(documents) == 0 {
		log.Fatalf("no transcripts found in %s", *docsDir)
	}

	records := tone.NewAnalyzer(lex).AnalyzeAll(documents, order)

	opts := []backtest.Option{backtest.WithChunkSize(*chunk)}
	if *verbose {
		l, err := applogger.New(&applogger.Config{Level: "debug", Format: "console", Output: "stderr"})
		if err != nil {
			log.Fatalf("logger: %v", err)
		}
		opts = append(opts, backtest.WithLogger(l))
	}

	bt, err := backtest.New(*start, opts...)
	if err != nil {
		log.Fatalf("backtest: %v", err)
	}
	if err := bt.Load(records, history); err != nil {
		log.Fatalf("load: %v", err)
	}
	if err := bt.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
	report, err := bt.Report()
	if err != nil {
		log.Fatalf("report: %v", err)
	}

	fmt.Printf("%-12s  %-6s  %-6s  %-7s  %-10s  %s\n",
		"date", "actual", "pred", "correct", "confidence", "tone")
	for _, rec := range report.Records {
		mark := " "
		if rec.IsCorrect {
			mark = "o"
		}
		fmt.Printf("%-12s  %-6s  %-6s  %-7s  %-10.3f  %+.4f\n",
			rec.Date, rec.Actual, rec.Predicted, mark, rec.Confidence, rec.ToneIndex)
	}

	fmt.Println()
	for _, c := range report.Chunks {
		fmt.Printf("chunk %s .. %s  %d/%d  (%.1f%%)\n",
			c.StartDate, c.EndDate, c.Correct, c.Size, c.Accuracy*100)
	}

	fmt.Println()
	fmt.Printf("overall: %d/%d correct (%.1f%%)\n",
		report.Correct, report.Total, report.Accuracy*100)

	if report.Total == 0 {
		os.Exit(1)
	}
}
