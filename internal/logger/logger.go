package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"log/slog"
	"os"
	"strings"
)

var Logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

const component = "ticketdesk"

// Error logs the failure with a fresh error id and replies with the bare
// status. The response body is left empty.
func Error(c *fiber.Ctx, status int, error error, appCode string, source ...string) error {
	errorId := uuid.NewString()

	var inputBody json.RawMessage
	if len(c.Body()) > 0 {
		var compactJSON bytes.Buffer
		if errCompact := json.Compact(&compactJSON, c.Body()); errCompact == nil {
			inputBody = compactJSON.Bytes()
		} else {
			inputBody, _ = json.Marshal(string(c.Body()))
		}
	}

	var returnedError string
	if error != nil {
		returnedError = error.Error()
	} else {
		returnedError = errors.New("error").Error()
	}

	Logger.Error("endpoint-error",
		"component", component, "source", strings.Join(source, "."), "appCode", appCode,
		"error", returnedError, "ID", errorId, "method", c.Method(), "path", c.Path(),
		"input", inputBody)

	c.Status(status)
	return nil
}

func Info(msg string, args ...any) {
	Logger.Info(msg, append([]any{"component", component}, args...)...)
}

func Fatal(msg string, err error, args ...any) {
	Logger.Error(msg, append([]any{"component", component, "error", err.Error()}, args...)...)
	os.Exit(1)
}
