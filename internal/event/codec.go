package event

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DecodeError reports a payload that could not be turned into an event.
// Consumers log it and drop the message; it never propagates past the
// consumer boundary.
type DecodeError struct {
	Kind   string // event kind as seen on the wire, may be empty
	Reason string
}

// Error implements error.
func (e *DecodeError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("decode event: %s", e.Reason)
	}
	return fmt.Sprintf("decode event %q: %s", e.Kind, e.Reason)
}

// envelope is the wire form of an event.
type envelope struct {
	Kind    Kind            `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// Encode serializes an event into its JSON envelope.
func Encode(ev Event) ([]byte, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("marshal event payload: %w", err)
	}

	body, err := json.Marshal(envelope{Kind: ev.Kind(), Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("marshal event envelope: %w", err)
	}

	return body, nil
}

// Decode parses a wire payload into a typed event. JSON envelopes are the
// primary format; the legacy "Kind(key=value, ...)" text form is accepted
// for compatibility with older producers. Unknown fields are ignored,
// missing fields stay zero, and an unrecognized kind yields a *DecodeError.
func Decode(body []byte) (Event, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, &DecodeError{Reason: "empty payload"}
	}

	if trimmed[0] == '{' {
		return decodeJSON(trimmed)
	}

	return decodeText(string(trimmed))
}

func decodeJSON(body []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &DecodeError{Reason: err.Error()}
	}

	var ev Event
	switch env.Kind {
	case KindWriteArticle:
		ev = &ArticleWritten{}
	case KindWriteComment:
		ev = &CommentWritten{}
	case KindSendCommentNotification:
		ev = &CommentNotify{}
	default:
		return nil, &DecodeError{Kind: string(env.Kind), Reason: "unknown event kind"}
	}

	if len(env.Payload) > 0 {
		if err := json.Unmarshal(env.Payload, ev); err != nil {
			return nil, &DecodeError{Kind: string(env.Kind), Reason: err.Error()}
		}
	}

	switch ev := ev.(type) {
	case *ArticleWritten:
		return *ev, nil
	case *CommentWritten:
		return *ev, nil
	case *CommentNotify:
		return *ev, nil
	}
	return nil, &DecodeError{Kind: string(env.Kind), Reason: "unknown event kind"}
}

// decodeText parses the legacy envelope: the kind name followed by
// "(key=value, key=value)". Pairs are split on ", ", each pair on the
// first "=", with whitespace trimmed around both tokens.
func decodeText(body string) (Event, error) {
	open := strings.Index(body, "(")
	if open <= 0 || !strings.HasSuffix(body, ")") {
		return nil, &DecodeError{Reason: "not a recognized envelope"}
	}

	kind := strings.TrimSpace(body[:open])
	fields, err := parseFields(kind, body[open+1:len(body)-1])
	if err != nil {
		return nil, err
	}

	switch Kind(kind) {
	case KindWriteArticle:
		return ArticleWritten{ArticleID: fields["articleId"], AuthorID: fields["userId"]}, nil
	case KindWriteComment:
		return CommentWritten{CommentID: fields["commentId"]}, nil
	case KindSendCommentNotification:
		return CommentNotify{CommentID: fields["commentId"], RecipientID: fields["userId"]}, nil
	}

	return nil, &DecodeError{Kind: kind, Reason: "unknown event kind"}
}

func parseFields(kind, content string) (map[string]int64, error) {
	fields := make(map[string]int64)

	for _, part := range strings.Split(content, ", ") {
		key, value, found := strings.Cut(part, "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "articleId", "commentId", "userId":
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, &DecodeError{Kind: kind, Reason: fmt.Sprintf("field %s: %v", key, err)}
			}
			fields[key] = n
		default:
			// Unknown keys (type, future additions) are ignored.
		}
	}

	return fields, nil
}
