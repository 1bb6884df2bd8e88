package notify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailSender delivers invitations through the Gmail API
type GmailSender struct {
	service *gmail.Service
	from    string
}

// NewGmailSender creates a Gmail-backed sender from OAuth credentials
// and a previously issued token file. The token must exist already;
// there is no interactive authorization on a server.
func NewGmailSender(ctx context.Context, credentialsPath, tokenPath, from string) (*GmailSender, error) {
	b, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file: %w", err)
	}

	config, err := google.ConfigFromJSON(b, gmail.GmailSendScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse credentials: %w", err)
	}

	tok, err := tokenFromFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("unable to load OAuth token: %w", err)
	}

	client := config.Client(ctx, tok)
	srv, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Gmail client: %w", err)
	}

	return &GmailSender{
		service: srv,
		from:    from,
	}, nil
}

// tokenFromFile retrieves a token from a local file
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}

// Send delivers one invitation as a raw RFC 822 message
func (g *GmailSender) Send(ctx context.Context, to, subject, body string) error {
	raw := buildMessage(g.from, to, subject, body)

	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}

	if _, err := g.service.Users.Messages.Send("me", msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to send message to %s: %w", to, err)
	}
	return nil
}

// buildMessage assembles a minimal plain-text RFC 822 message
func buildMessage(from, to, subject, body string) string {
	headers := ""
	if from != "" {
		headers += fmt.Sprintf("From: %s\r\n", from)
	}
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/plain; charset=\"UTF-8\"\r\n"
	return headers + "\r\n" + body
}

var _ Sender = (*GmailSender)(nil)
