// Minimal Telegram notifier for operational booking alerts.
package telegram

import (
	"fmt"
	"net/http"
	"net/url"
)

type Notifier struct {
	baseURL string
	chatID  string
}

func NewNotifier(token, chatID string) *Notifier {
	return &Notifier{
		baseURL: "https://api.telegram.org/bot" + token,
		chatID:  chatID,
	}
}

func (n *Notifier) Send(text string) error {
	endpoint := n.baseURL + "/sendMessage"

	params := url.Values{}
	params.Add("chat_id", n.chatID)
	params.Add("text", text)

	resp, err := http.PostForm(endpoint, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error: %s", resp.Status)
	}

	return nil
}

// NotifyBookingCreated posts a short summary of a fresh booking.
func (n *Notifier) NotifyBookingCreated(bookingID, offerTitle string, quantity int, totalPrice float64) error {
	text := fmt.Sprintf("New booking %s: %q x%d, total %.2f", bookingID, offerTitle, quantity, totalPrice)
	return n.Send(text)
}
