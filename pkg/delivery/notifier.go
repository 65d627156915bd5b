package delivery

import (
	"FoodBridge/internal/utils/mailing"
	"fmt"
)

// Notifier delivers lifecycle notifications to donors. Implementations must
// be safe to call best-effort: callers log failures and move on.
type Notifier interface {
	DonationClaimed(donorEmail, item, receptorName string) error
}

type mailNotifier struct{}

func NewMailNotifier() Notifier {
	return &mailNotifier{}
}

func (n *mailNotifier) DonationClaimed(donorEmail, item, receptorName string) error {
	subject := "Your donation was claimed"
	body := fmt.Sprintf(
		"<p>Good news! Your donation of <b>%s</b> was claimed by <b>%s</b>.</p>"+
			"<p>A driver will be assigned shortly to pick it up.</p>",
		item, receptorName,
	)
	return mailing.SendMail(donorEmail, subject, body)
}
