// Package notify composes and dispatches interview invitations.
// Delivery is delegated to an external collaborator behind the Sender
// interface; the scheduler itself never touches mail.
package notify

import (
	"context"
	"fmt"

	"github.com/mr-thop/recruit-edge-api/internal/models"
)

// Sender delivers a single email
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Invitation renders the subject and body for one interview slot
func Invitation(slot models.Slot) (subject, body string) {
	subject = fmt.Sprintf("Interview Invitation - %s", slot.Start.Format("Monday, 2 January 2006"))
	body = fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your interview has been scheduled for %s from %s to %s.\n\n"+
			"Please be available a few minutes before your slot. If the time does not work for you, reply to this email to rearrange.\n\n"+
			"Best regards,\nRecruitment Team\n",
		slot.Candidate.Name,
		slot.Start.Format("Monday, 2 January 2006"),
		slot.Start.Format("15:04"),
		slot.End.Format("15:04"),
	)
	return subject, body
}

// Disabled is a Sender used when no mail credentials are configured.
// Every send reports an error so callers can log the skipped delivery.
type Disabled struct{}

// Send always fails, since no delivery channel is configured
func (Disabled) Send(ctx context.Context, to, subject, body string) error {
	return fmt.Errorf("mail delivery is not configured")
}
