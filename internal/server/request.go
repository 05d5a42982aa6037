package server

import (
	"fmt"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

const (
	inputKey        = "input"
	jsonContentType = "application/json"
)

// Rejection reasons, used as the metrics label.
const (
	reasonNoJSON     = "no_json"
	reasonMissingKey = "missing_key"
	reasonNullValue  = "null_value"
	reasonNotString  = "not_string"
	reasonTooLong    = "too_long"
)

// RequestError is a client error reported back as {"message": ...}.
type RequestError struct {
	Reason  string
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// readInput extracts the text to classify from a JSON body of the form
// {"input": "..."}. Checks run in a fixed order and the first failure wins.
func readInput(c *gin.Context, maxLength int) (string, *RequestError) {
	var body map[string]any
	if c.ContentType() != jsonContentType || c.ShouldBindJSON(&body) != nil || body == nil {
		return "", &RequestError{
			Reason:  reasonNoJSON,
			Message: "Missing application/json content type in request headers or None request body JSON",
		}
	}

	value, ok := body[inputKey]
	if !ok {
		return "", &RequestError{
			Reason:  reasonMissingKey,
			Message: fmt.Sprintf("POST request JSON body key %q not found", inputKey),
		}
	}
	if value == nil {
		return "", &RequestError{
			Reason:  reasonNullValue,
			Message: fmt.Sprintf("POST request JSON body %q value is null", inputKey),
		}
	}

	text, ok := value.(string)
	if !ok {
		return "", &RequestError{
			Reason:  reasonNotString,
			Message: fmt.Sprintf("POST request JSON body %q value must be a string", inputKey),
		}
	}
	if utf8.RuneCountInString(text) > maxLength {
		return "", &RequestError{
			Reason:  reasonTooLong,
			Message: fmt.Sprintf("Input text too big (max %d characters)", maxLength),
		}
	}

	return text, nil
}
