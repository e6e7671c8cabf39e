// Package sms provides a simple client for sending notifications through
// an HTTP SMS gateway.
package sms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client represents an SMS gateway client used to send notifications.
type Client struct {
	gatewayURL string
	token      string
	client     *http.Client
}

// NewClient creates a new SMS Client for the given gateway.
func NewClient(gatewayURL, token string) *Client {
	return &Client{
		gatewayURL: gatewayURL,
		token:      token,
		client:     &http.Client{},
	}
}

// sendMessageRequest represents the gateway payload.
type sendMessageRequest struct {
	Token string `json:"token"`
	To    string `json:"to"`
	Text  string `json:"text"`
}

// Send sends a notification message to the specified phone number.
//
// It constructs the request payload, sends an HTTP POST to the gateway,
// and returns an error if the request fails or the gateway responds with
// a non-200 status.
func (c *Client) Send(to string, msg string) error {
	reqBody := sendMessageRequest{
		Token: c.token,
		To:    to,
		Text:  msg,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.client.Post(c.gatewayURL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sms gateway error: %s", resp.Status)
	}

	return nil
}
