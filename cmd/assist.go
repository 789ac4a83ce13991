package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/wealthguard/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

// Name returns the name of the command.
func (*assistCmd) Name() string { return "assist" }

// Synopsis returns a short-one line synopsis of the command.
func (*assistCmd) Synopsis() string { return "Start an interactive session with the AI assistant." }

// Usage returns a long-form usage string.
func (*assistCmd) Usage() string {
	return `wg assist [<question>]

  Start an interactive session with the AI assistant. The assistant reads the
  dashboard and can search the news. It requires GEMINI_API_KEY.
`
}

// SetFlags sets the flags for the command.
func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

// Execute executes the command.
func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	return withApp(ctx, func(a *app) error {
		if a.cfg.Agent.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  a.cfg.Agent.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return fmt.Errorf("could not initialize Gemini's client: %w", err)
		}

		model := a.cfg.Agent.Model
		if model == "" {
			model = agent.DefaultModel
		}
		tools := &agent.Tools{Source: a.store, Settings: a.settings, Options: a.renderOptions()}
		assistant := agent.New(os.Stdout, os.Stdin, model, agent.NewTrader(model), agent.NewAdvisor(model, tools))
		assistant.Render = renderMarkdown

		if err := assistant.Run(ctx, client, initialPrompt); err != nil {
			return fmt.Errorf("agent failed: %w", err)
		}
		return nil
	})
}
