package notifications

import "context"

// MockNotifier records notifications instead of delivering them
type MockNotifier struct {
	Notifications []*BookingNotification
	Err           error
}

// BookingCreated records a notification
func (n *MockNotifier) BookingCreated(_ context.Context, notification *BookingNotification) error {
	if n.Err != nil {
		return n.Err
	}

	n.Notifications = append(n.Notifications, notification)
	return nil
}
