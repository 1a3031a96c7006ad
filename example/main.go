package main

import (
	"log/slog"
	"os"

	excelsummary "excel-summary"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	s := excelsummary.NewSummarizer(os.Stdout, excelsummary.WithLogger(logger))
	s.Summarize("客戶彙總表.xlsx")
	s.Summarize("訂單彙總表.xlsx")
}
