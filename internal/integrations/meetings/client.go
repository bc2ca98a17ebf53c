package meetings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
)

// Logger is the narrow logging interface this client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to the calendar/notification provider: one call creates the
// calendar event, the Meet link and the attendee emails for a session.
type Client struct {
	baseURL    string
	creds      CredentialProvider
	httpClient *http.Client
	log        Logger
}

func NewClient(baseURL string, creds CredentialProvider, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		creds:   creds,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateMeeting schedules the calendar event and sends notifications.
// Downstream notification failures are reported inside MeetingResult, not
// as an error; the error return covers only credential and transport
// failures. Either way the caller treats failure as non-fatal.
func (c *Client) CreateMeeting(ctx context.Context, req *CreateMeetingRequest) (*MeetingResult, error) {
	token, err := c.creds.GetValidToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: get credentials: %v", ErrInternal, err)
	}

	if req.TimeZone == "" {
		req.TimeZone = domain.PlatformTimeZone
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/meetings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var result MeetingResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !result.Notified {
		c.log.Warn("Meeting created but notifications failed: event=%s error=%s", result.EventID, result.Error)
	}

	return &result, nil
}
