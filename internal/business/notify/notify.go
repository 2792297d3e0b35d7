// Package notify turns freshly created customer requests into email
// notifications. Creation emits an event into a buffered channel; a worker
// consumes it detached from the request path, so a slow or failing relay can
// never fail or delay a submission.
package notify

import (
	"context"
	"log/slog"

	"github.com/mashtab-ss/okna-backend/internal/platform/mailer"
	"github.com/mashtab-ss/okna-backend/pkg/model"
)

// Notifier delivers one email per created request.
type Notifier struct {
	sender mailer.Sender
	to     string
	events chan model.CustomerRequest
	logger *slog.Logger
}

// New creates a notifier sending to the given recipient. buffer bounds the
// number of undelivered events held in memory.
func New(sender mailer.Sender, to string, buffer int, logger *slog.Logger) *Notifier {
	if buffer <= 0 {
		buffer = 64
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		sender: sender,
		to:     to,
		events: make(chan model.CustomerRequest, buffer),
		logger: logger,
	}
}

// RequestCreated queues a notification for req. The call never blocks: when
// the buffer is full the event is dropped with a log line, matching the
// fire-and-forget contract of request creation.
func (n *Notifier) RequestCreated(req model.CustomerRequest) {
	select {
	case n.events <- req:
	default:
		n.logger.Warn("notification buffer full, dropping event", "requestId", req.ID)
	}
}

// Run consumes queued events until ctx is cancelled. Delivery failures are
// logged and swallowed; nothing is retried.
func (n *Notifier) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-n.events:
			subject, html, err := RenderEmail(req)
			if err != nil {
				n.logger.Error("render notification", "requestId", req.ID, "error", err)
				continue
			}
			msg := mailer.Message{To: n.to, Subject: subject, HTML: html}
			if err := n.sender.Send(ctx, msg); err != nil {
				n.logger.Error("send notification", "requestId", req.ID, "error", err)
				continue
			}
			n.logger.Info("notification sent", "requestId", req.ID)
		}
	}
}
