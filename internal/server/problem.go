package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Problem implements the RFC 9457 error shape returned by every endpoint.
type Problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`

	Extensions map[string]interface{} `json:"-"`

	// Log carries the internal cause for server-side logging only.
	Log error `json:"-"`
}

func (p *Problem) Error() string {
	return fmt.Sprintf("[%d] %s: %s", p.Status, p.Title, p.Detail)
}

// MarshalJSON flattens Extensions into the root object, as the RFC requires.
func (p *Problem) MarshalJSON() ([]byte, error) {
	type alias Problem

	data := make(map[string]interface{})
	for k, v := range p.Extensions {
		data[k] = v
	}

	std, _ := json.Marshal(alias(*p))
	_ = json.Unmarshal(std, &data)

	return json.Marshal(data)
}

func newProblem(status int, title, detail string) *Problem {
	return &Problem{
		Type:   "about:blank",
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

func badRequest(detail string) *Problem {
	return newProblem(http.StatusBadRequest, "Bad Request", detail)
}

func validationProblem(errs map[string]string) *Problem {
	p := newProblem(http.StatusBadRequest, "Validation Error", "One or more fields failed validation")
	p.Extensions = map[string]interface{}{"errors": errs}
	return p
}

func upstreamProblem(provider string, err error) *Problem {
	p := newProblem(http.StatusBadGateway, "Upstream Provider Error",
		fmt.Sprintf("the %s provider failed to complete the request", provider))
	p.Log = err
	return p
}

func internalProblem(err error) *Problem {
	p := newProblem(http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred.")
	p.Log = err
	return p
}
