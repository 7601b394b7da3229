package agent

import (
	"context"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Reports is what the advisor can read: the engine's markdown reports,
// computed fresh on every call.
type Reports interface {
	HoldingsReport() (string, error)
	BucketsReport() (string, error)
	SummaryReport() (string, error)
}

// Func implements Function from a declaration and a closure.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// reportFunc wraps a report getter into a no-argument tool.
func reportFunc(name, description string, get func() (string, error)) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The report as markdown.",
			},
		},
		Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: name}
			report, err := get()
			if err != nil {
				fresp.Response = map[string]any{"error": err.Error()}
				return fresp
			}
			fresp.Response = map[string]any{"output": report}
			return fresp
		},
	}
}

// NewAdvisor creates the portfolio advisor expert, grounded in the
// engine's reports.
func NewAdvisor(reports Reports) *Expert {
	lib := []Function{
		reportFunc("get_holdings", "Current open positions: quantities, invested amount, value, gains, yield and XIRR per instrument.", reports.HoldingsReport),
		reportFunc("get_buckets", "Savings bucket goals: target, current value, progress, shortfall and weighted returns per bucket.", reports.BucketsReport),
		reportFunc("get_summary", "Portfolio-wide totals, asset allocation and top/bottom performers.", reports.SummaryReport),
	}
	return &Expert{
		Name:      "Advisor",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a personal investment portfolio advisor. The user records
			buy/sell trades and tracks progress against savings buckets.

			Use the available tools to read the user's portfolio before
			answering: holdings, bucket goal progress, and the overall summary.
			Ground every figure you mention in those reports; never invent
			numbers. Be concise and practical, and when a bucket is behind its
			goal, say by how much.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}
