package resend

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// statusMessages maps provider HTTP statuses to fallback error text used
// when the response body carries no recognizable error message.
var statusMessages = map[int]string{
	http.StatusBadRequest:          "Bad request. Check the email payload.",
	http.StatusUnauthorized:        "Invalid API key.",
	http.StatusForbidden:           "This API key is not allowed to send email.",
	http.StatusNotFound:            "API endpoint not found.",
	http.StatusUnprocessableEntity: "Sending domain is not verified. Verify your domain in the Resend dashboard before sending.",
	http.StatusTooManyRequests:     "Rate limit exceeded. Slow down and try again.",
	http.StatusInternalServerError: "Provider server error.",
}

// extractErrorMessage turns a provider rejection into human-readable text.
// 422 always yields the domain-verification guidance whatever the body
// says; otherwise the body is inspected first and the status table is the
// fallback.
func extractErrorMessage(body []byte, status int) string {
	if status == http.StatusUnprocessableEntity {
		return statusMessages[status]
	}

	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err == nil {
		if msg := messageFromBody(parsed); msg != "" {
			return msg
		}
	}

	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return fmt.Sprintf("HTTP error %d occurred", status)
}

// messageFromBody looks for error text in the parsed body, in priority
// order: top-level "message", then "error" (string or object with a
// "message"), then the first entry of an "errors" array.
func messageFromBody(body map[string]any) string {
	if msg, ok := body["message"].(string); ok && msg != "" {
		return msg
	}

	switch e := body["error"].(type) {
	case string:
		if e != "" {
			return e
		}
	case map[string]any:
		if msg, ok := e["message"].(string); ok && msg != "" {
			return msg
		}
	}

	if errs, ok := body["errors"].([]any); ok && len(errs) > 0 {
		switch first := errs[0].(type) {
		case string:
			if first != "" {
				return first
			}
		case map[string]any:
			if msg, ok := first["message"].(string); ok && msg != "" {
				return msg
			}
		}
	}

	return ""
}

// extractMessageID pulls the provider-assigned id out of a success body.
// Returns an empty string when the body is absent or not JSON.
func extractMessageID(body []byte) string {
	var parsed struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	return parsed.ID
}
