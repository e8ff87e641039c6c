package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"sync"
)

// HoneypotField is the hidden input bots fill in and people never see.
const HoneypotField = "_gotcha"

const (
	SentMessage  = "Thanks! We got your request."
	ErrorMessage = "Something went wrong. Please call (469) 431-4515."
)

// State is the form's submission state.
type State int

const (
	StateIdle State = iota
	StateSending
	StateSent
	StateError
)

func (s State) String() string {
	switch s {
	case StateSending:
		return "sending"
	case StateSent:
		return "sent"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// Response is the body returned by the contact endpoint.
type Response struct {
	OK         bool    `json:"ok"`
	ID         string  `json:"id,omitempty"`
	Error      string  `json:"error,omitempty"`
	Configured *Status `json:"configured,omitempty"`
}

// Form posts field values to the contact endpoint and tracks the outcome.
// It is safe for concurrent use; only one submission runs at a time.
type Form struct {
	endpoint string
	client   *http.Client

	mu     sync.Mutex
	state  State
	values map[string]string
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithHTTPClient sets the client used for submissions.
func WithHTTPClient(c *http.Client) FormOption {
	return func(f *Form) {
		if c != nil {
			f.client = c
		}
	}
}

// NewForm creates an idle form posting to endpoint.
func NewForm(endpoint string, opts ...FormOption) *Form {
	f := &Form{
		endpoint: endpoint,
		client:   http.DefaultClient,
		values:   defaultValues(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func defaultValues() map[string]string {
	return map[string]string{"service": string(ServiceInstall)}
}

// Set stores a field value.
func (f *Form) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[field] = value
}

// Fill stores every field of sub.
func (f *Form) Fill(sub Submission) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values["name"] = sub.Name
	f.values["email"] = sub.Email
	f.values["phone"] = sub.Phone
	f.values["address"] = sub.Address
	f.values["message"] = sub.Message
	if sub.Service != "" {
		f.values["service"] = string(sub.Service)
	}
}

// Values returns a copy of the current field values.
func (f *Form) Values() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.values)
}

// State returns the current state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Message is the feedback text for the current state.
func (f *Form) Message() string {
	switch f.State() {
	case StateSent:
		return SentMessage
	case StateError:
		return ErrorMessage
	default:
		return ""
	}
}

// Submit sends the current values as one JSON POST. A second call while the
// first is pending returns ErrSubmitInFlight. The form is sent only when the
// status is 2xx and the body says ok; then the values reset. On any other
// outcome the values are kept and the returned error wraps ErrSubmitFailed.
// There is no retry.
func (f *Form) Submit(ctx context.Context) (*Response, error) {
	f.mu.Lock()
	if f.state == StateSending {
		f.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	f.state = StateSending
	payload := maps.Clone(f.values)
	f.mu.Unlock()

	resp, err := f.post(ctx, payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = StateError
		return resp, err
	}
	f.state = StateSent
	f.values = defaultValues()
	return resp, nil
}

func (f *Form) post(ctx context.Context, payload map[string]string) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %w", ErrSubmitFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	defer res.Body.Close()

	var out Response
	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrSubmitFailed, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: status %d: invalid response body", ErrSubmitFailed, res.StatusCode)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 || !out.OK {
		msg := out.Error
		if msg == "" {
			msg = http.StatusText(res.StatusCode)
		}
		return &out, fmt.Errorf("%w: status %d: %s", ErrSubmitFailed, res.StatusCode, msg)
	}
	return &out, nil
}
