// Package qa implements the answer requester: one synchronous request to a
// text-generation service per question, mapped to a typed outcome.
package qa

import (
	"context"
	"errors"
	"fmt"

	"github.com/direeo/llm-qa/internal/llm"
)

// SystemInstruction configures the service as a concise Q&A assistant and is
// sent with every request.
const SystemInstruction = "You are a helpful and concise Question-Answering system. Answer the user's question directly and professionally."

// UnavailableMessage is the fixed answer to every question when no LLM
// client was constructed at startup.
const UnavailableMessage = "ERROR: LLM Client failed to initialize. Check GEMINI_API_KEY setting."

// Status categorizes the outcome of one exchange.
type Status string

const (
	StatusOK          Status = "ok"
	StatusUnavailable Status = "unavailable"
	StatusAPIError    Status = "api_error"
	StatusError       Status = "error"
)

// Outcome is the result of one question/answer exchange.
type Outcome struct {
	Status  Status
	Answer  string // verbatim service text, set when Status is StatusOK
	Message string // human-readable failure description otherwise
}

func (o Outcome) OK() bool { return o.Status == StatusOK }

// Display returns the text shown to the user: the answer on success, the
// failure description otherwise.
func (o Outcome) Display() string {
	if o.OK() {
		return o.Answer
	}
	return o.Message
}

// Requester issues one request per question against an injected client.
type Requester struct {
	client llm.Client
}

// New wires a Requester over client. A nil client is allowed: every exchange
// then reports the fixed initialization failure without calling anything.
func New(client llm.Client) *Requester {
	return &Requester{client: client}
}

// Answer sends the question to the service and maps the result. The question
// is sent exactly as given; normalization is display-only and stays in the
// entry points. No retries, no deadline: one call, one outcome.
func (r *Requester) Answer(ctx context.Context, question string) Outcome {
	if r == nil || r.client == nil {
		return Outcome{Status: StatusUnavailable, Message: UnavailableMessage}
	}

	text, err := r.client.Generate(ctx, SystemInstruction, question)
	if err != nil {
		var apiErr *llm.APIError
		if errors.As(err, &apiErr) {
			return Outcome{Status: StatusAPIError, Message: fmt.Sprintf("An API Error occurred: %v", apiErr)}
		}
		return Outcome{Status: StatusError, Message: fmt.Sprintf("An unexpected error occurred: %v", err)}
	}
	return Outcome{Status: StatusOK, Answer: text}
}
