package email

import "context"

// SendWelcomeEmail greets a user who just signed up.
func (c *Client) SendWelcomeEmail(ctx context.Context, to, name string) error {
	return c.SendEmail(ctx, to, "Welcome to LightBnB!", TemplateWelcome, map[string]string{
		"UserName": name,
	})
}

// SendPropertyListedEmail confirms to an owner that a listing is live.
// price is the nightly price in currency units, e.g. "150.00".
func (c *Client) SendPropertyListedEmail(ctx context.Context, to, name, title, price string) error {
	return c.SendEmail(ctx, to, "Your property is listed on LightBnB", TemplatePropertyListed, map[string]string{
		"UserName":      name,
		"PropertyTitle": title,
		"CostPerNight":  "$" + price,
	})
}
