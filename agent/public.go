package agent

import (
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// creates the facilitator
func newFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expected from the expert
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is a long term investor contributing every month to a handful of ETFs,
			and owning a rental property. He is here to check on his plan, not to trade.
			If he is anxious about a market fall, remind him of his strategy before anything else.

			Devise a plan of questions to ask to each experts and come up with the best response to the user's request.
			Answer in the language of the user.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewTrader returns an expert grounded on Google Search for market news.
func NewTrader(model string) *Expert {
	return &Expert{
		Name: "Trader",
		Description: `This is an expert trader,
		Very well aware of the ETFs, indices and financial institutions,
		and of the latest news about them.
		Ask the Trader whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in ETFs and index investing, you can search and find about anything related to
			financial institutions, indices, markets and funds. You Leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAdvisor returns the expert reading the user's dashboard through tools.
func NewAdvisor(model string, tools *Tools) *Expert {
	return NewExpert("Advisor",
		`This is the Advisor. He reads the user's dashboard: totals, allocation, rebalancing,
		goals, monthly contribution, quotes, transactions and the rental property ledger.`,
		model,
		`
		You are the advisor in charge of the user's wealth dashboard.
		You know how to use the Tools to extract relevant information about the user's portfolio.
		You are part of a team of experts, yours is everything about the user's figures. They might ask
		you questions about the user's portfolio, pardon their approximative language and figure out what they meant.

		Use the available tools to get information about
		  - the dashboard: totals, allocation, rebalancing actions, goals and contribution
		  - the latest quotes
		  - the transactions ledger
		  - the yearly figures of the rental property
		Never invent a figure that no tool returned.
		`,
		tools.Functions()...,
	)
}
