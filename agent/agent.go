// Package agent implements a small conversational assistant that
// answers questions about the portfolio. It wires the engine's reports
// into Gemini function tools: the model asks for holdings, buckets or
// the summary and grounds its answers in the returned markdown.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the interactive session with the advisor expert.
type Agent struct {
	w      io.Writer
	r      *bufio.Reader
	Expert *Expert
}

// New creates an Agent speaking to the given expert, reading user input
// from r and writing responses to w.
func New(w io.Writer, r io.Reader, expert *Expert) *Agent {
	return &Agent{w: w, r: bufio.NewReader(r), Expert: expert}
}

const prompt = "advisor> "

// Run starts the interactive REPL session for the agent. Initial
// prompts, if any, are consumed before reading from the user.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := a.Expert.Start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(a.w, "Welcome to the nivesh portfolio advisor. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.Expert.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}
