package email

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) SendWithContext(_ context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email-1"}, nil
}

func newTestClient(s sender) *Client {
	logger := zerolog.Nop()
	return &Client{emails: s, logger: &logger}
}

func TestRenderPreviews(t *testing.T) {
	for name, data := range PreviewData {
		body, err := Render(name, data)
		if err != nil {
			t.Fatalf("render %s: %v", name, err)
		}
		for _, v := range data {
			if !strings.Contains(body, v) {
				t.Errorf("%s: body does not contain %q", name, v)
			}
		}
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, err := Render("missing", nil); err == nil {
		t.Fatal("expected an error for an unknown template")
	}
}

func TestSendWelcomeEmail(t *testing.T) {
	fake := &fakeSender{}
	c := newTestClient(fake)

	if err := c.SendWelcomeEmail(context.Background(), "devin@example.com", "Devin"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(fake.sent) != 1 {
		t.Fatalf("sent %d emails", len(fake.sent))
	}
	req := fake.sent[0]
	if req.From != Sender || req.To[0] != "devin@example.com" || !strings.Contains(req.Html, "Devin") {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestSendPropertyListedEmail(t *testing.T) {
	fake := &fakeSender{}
	c := newTestClient(fake)

	if err := c.SendPropertyListedEmail(context.Background(), "o@example.com", "Owner", "Cozy loft", "150.00"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if !strings.Contains(fake.sent[0].Html, "$150.00") {
		t.Fatalf("price missing from body: %s", fake.sent[0].Html)
	}
}

func TestSendEmailProviderError(t *testing.T) {
	c := newTestClient(&fakeSender{err: errors.New("rate limited")})

	err := c.SendWelcomeEmail(context.Background(), "devin@example.com", "Devin")
	if err == nil || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
}

func TestSendEmailDisabled(t *testing.T) {
	c := newTestClient(nil)
	if c.Enabled() {
		t.Fatal("client without sender must be disabled")
	}
	if err := c.SendWelcomeEmail(context.Background(), "devin@example.com", "Devin"); err != nil {
		t.Fatalf("disabled client should not fail: %v", err)
	}
}
