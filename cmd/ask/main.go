package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/direeo/llm-qa/internal/app"
	"github.com/direeo/llm-qa/internal/normalize"
)

func main() {
	deps := app.Build()
	if deps.LLMErr != nil {
		fmt.Fprintln(os.Stderr, "Error:", deps.LLMErr)
		os.Exit(1)
	}
	if err := run(context.Background(), deps, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run performs one prompt/answer exchange over in and out.
func run(ctx context.Context, deps app.Deps, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "--- LLM Q&A Command-Line Interface ---")
	fmt.Fprint(out, "\nEnter your question: ")

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read question: %w", err)
		}
		// EOF with nothing typed falls through as an empty question.
	}
	question := scanner.Text()

	if strings.TrimSpace(question) == "" {
		fmt.Fprintln(out, "No question entered. Exiting.")
		return nil
	}

	// The raw question goes to the model; the normalized form is display-only.
	fmt.Fprintf(out, "\nOriginal Question: %s\n", question)
	fmt.Fprintf(out, "Preprocessed Text: %s\n", normalize.Question(question))

	fmt.Fprintln(out, "\nSending question to LLM...")
	outcome := deps.QA.Answer(ctx, question)

	fmt.Fprintln(out, "\n==================================")
	fmt.Fprintln(out, "Final LLM Answer:")
	fmt.Fprintln(out, outcome.Display())
	fmt.Fprintln(out, "==================================")
	return nil
}
