// Package serviceclients contains the HTTP clients for the five remote
// collaborators of the order orchestration: customer records, restaurant
// menu validation, payment, delivery assignment, and customer notification.
//
// Every client makes exactly one attempt per call with a short, fixed
// timeout, and sends the correlation token in the X-Correlation-Id header.
// No client retries; classifying and reacting to failures is the caller's
// concern.
package serviceclients

import (
	"net/http"
	"time"
)

const correlationHeader = "X-Correlation-Id"

// DefaultTimeout bounds every outbound collaborator call.
const DefaultTimeout = 5 * time.Second

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
