package notification

import (
	"fmt"
	"html"
	"time"
)

// Template builders for the transactional emails. Bodies are deliberately
// simple inline-styled HTML so they render in every client.

// PurchaseReceipt is the confirmation sent after tickets materialize.
func PurchaseReceipt(recipientName, eventTitle string, eventDate time.Time, quantity int, explorerURL string) Message {
	body := fmt.Sprintf(`
		<h2>You're going to %s!</h2>
		<p>Hi %s,</p>
		<p>Your purchase of %d ticket(s) is confirmed.</p>
		<p><strong>Event date:</strong> %s</p>
		<p>Your tickets are secured on-chain.
		<a href="%s">View the settlement transaction</a>.</p>
		<p>— The Eventra Team</p>`,
		html.EscapeString(eventTitle),
		html.EscapeString(recipientName),
		quantity,
		eventDate.Format("Monday, 2 January 2006 at 15:04 MST"),
		explorerURL,
	)

	return Message{
		Subject: fmt.Sprintf("Your tickets for %s", eventTitle),
		HTML:    body,
	}
}

// EventReminder is sent to ticket holders three days before the event.
func EventReminder(recipientName, eventTitle string, eventDate time.Time, location string) Message {
	body := fmt.Sprintf(`
		<h2>%s is coming up!</h2>
		<p>Hi %s,</p>
		<p>A quick reminder that the event starts in 3 days.</p>
		<p><strong>When:</strong> %s<br>
		<strong>Where:</strong> %s</p>
		<p>See you there!</p>
		<p>— The Eventra Team</p>`,
		html.EscapeString(eventTitle),
		html.EscapeString(recipientName),
		eventDate.Format("Monday, 2 January 2006 at 15:04 MST"),
		html.EscapeString(location),
	)

	return Message{
		Subject: fmt.Sprintf("Reminder: %s is in 3 days", eventTitle),
		HTML:    body,
	}
}

// CertificateIssued is sent when a certificate NFT is minted for a recipient.
func CertificateIssued(recipientName, eventTitle, role, explorerURL string) Message {
	body := fmt.Sprintf(`
		<h2>Your certificate is ready</h2>
		<p>Hi %s,</p>
		<p>An NFT certificate has been issued to you for attending
		<strong>%s</strong> as a %s.</p>
		<p><a href="%s">View your certificate on-chain</a>.</p>
		<p>— The Eventra Team</p>`,
		html.EscapeString(recipientName),
		html.EscapeString(eventTitle),
		html.EscapeString(role),
		explorerURL,
	)

	return Message{
		Subject: fmt.Sprintf("Your certificate for %s", eventTitle),
		HTML:    body,
	}
}

// Welcome is sent on first purchase together with the bonus points.
func Welcome(recipientName string, bonusPoints int64) Message {
	body := fmt.Sprintf(`
		<h2>Welcome to Eventra!</h2>
		<p>Hi %s,</p>
		<p>You just made your first purchase and earned a bonus of
		<strong>%d points</strong>. Points add up with every ticket you buy
		and unlock perks at partner events.</p>
		<p>— The Eventra Team</p>`,
		html.EscapeString(recipientName),
		bonusPoints,
	)

	return Message{
		Subject: "Welcome to Eventra — bonus points inside",
		HTML:    body,
	}
}
