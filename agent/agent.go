package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// Agent chats with the user about the dashboard. A facilitator answers and delegates the
// questions it cannot answer alone to the experts.
type Agent struct {
	w           io.Writer
	r           *bufio.Reader
	Facilitator *Expert
	Experts     []*Expert
	// Render formats an answer, which is markdown, for w. Answers are written as is when nil.
	Render func(markdown string) string
}

// New creates a new Agent whose facilitator answers with model and delegates to experts.
//
// The agent writes its answers to w (e.g., os.Stdout) and reads the user's input
// from r (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, model string, experts ...*Expert) *Agent {
	return &Agent{
		w:           w,
		r:           bufio.NewReader(r),
		Experts:     experts,
		Facilitator: newFacilitator(model, experts...),
	}
}

// Start opens the chats of the experts and of the facilitator.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.Facilitator.Start(ctx, client)
}

const prompt = "assist> "

// Run answers the prompts first, then every line read until "bye" or the end of the input.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Facilitator.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.chat(ctx, a.ask, prompts)
}

// ask sends question to the facilitator.
func (a *Agent) ask(ctx context.Context, question string) (string, error) {
	content, err := a.Facilitator.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	return text(content), nil
}

// text joins the text parts of c.
func text(c *genai.Content) string {
	if c == nil {
		return ""
	}
	var parts []string
	for _, p := range c.Parts {
		if p != nil && p.Text != "" {
			parts = append(parts, p.Text)
		}
	}
	return strings.Join(parts, "\n")
}

func (a *Agent) greeting() string {
	names := make([]string, 0, len(a.Experts))
	for _, e := range a.Experts {
		names = append(names, e.Name)
	}
	g := "wg assist. Ask about your allocation, contributions, goals, quotes or rental property."
	if len(names) > 0 {
		g += " Consulting: " + strings.Join(names, ", ") + "."
	}
	return g + " Type 'bye' to exit."
}

// chat is the conversation loop. A failed answer is reported and the chat goes on.
func (a *Agent) chat(ctx context.Context, ask func(context.Context, string) (string, error), queued []string) error {
	fmt.Fprintln(a.w, a.greeting())
	for {
		fmt.Fprint(a.w, prompt)
		input, err := a.next(&queued)
		if err == io.EOF {
			fmt.Fprintln(a.w)
			return nil // Ctrl+D
		}
		if err != nil {
			return err
		}

		switch input {
		case "":
			continue
		case "bye", "exit", "quit":
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		answer, err := ask(ctx, input)
		if err != nil {
			log.Warn().Err(err).Str("question", input).Msg("no answer")
			fmt.Fprintf(a.w, "Sorry, I could not answer: %v\n", err)
			continue
		}
		a.print(answer)
	}
}

// next returns the next queued prompt, echoed to w, or else the next line of r.
func (a *Agent) next(queued *[]string) (string, error) {
	if len(*queued) > 0 {
		input := strings.TrimSpace((*queued)[0])
		*queued = (*queued)[1:]
		fmt.Fprintln(a.w, input)
		return input, nil
	}
	line, err := a.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *Agent) print(answer string) {
	if a.Render == nil {
		fmt.Fprintln(a.w, answer)
		return
	}
	fmt.Fprint(a.w, a.Render(answer))
}
