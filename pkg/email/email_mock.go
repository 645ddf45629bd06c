package email

import "context"

// MockMailer records emails instead of sending them
type MockMailer struct {
	Emails []*Email
	Err    error
}

// SendEmail records an email
func (m *MockMailer) SendEmail(ctx context.Context, mail *Email) error {
	if m.Err != nil {
		return m.Err
	}

	m.Emails = append(m.Emails, mail)
	return nil
}
