package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by sending messages to a console channel
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to stdout for server logs
	fmt.Print(message)

	if wl.consoleChan == nil {
		return
	}

	level := "info"
	if strings.Contains(strings.ToLower(message), "warning") {
		level = "warning"
	}

	// Non-blocking: drop the message when the channel is full
	select {
	case wl.consoleChan <- ConsoleMessage{
		RenderID:  wl.renderID,
		Message:   message,
		Timestamp: time.Now(),
		Level:     level,
	}:
	default:
	}
}

// console buffers the log lines of a single synchronous render
type console struct {
	messages chan ConsoleMessage
}

func newConsole(capacity int) *console {
	return &console{messages: make(chan ConsoleMessage, capacity)}
}

// drain returns every buffered message without blocking
func (c *console) drain() []ConsoleMessage {
	drained := make([]ConsoleMessage, 0, len(c.messages))
	for {
		select {
		case msg := <-c.messages:
			drained = append(drained, msg)
		default:
			return drained
		}
	}
}
