package notify

import "fyne.io/fyne/v2"

// FyneNotifier sends notifications through the fyne application.
type FyneNotifier struct {
	app fyne.App
}

// NewFyneNotifier wraps app.
func NewFyneNotifier(app fyne.App) *FyneNotifier {
	return &FyneNotifier{app: app}
}

// Notify implements Notifier.
func (notifier *FyneNotifier) Notify(title, body string) error {
	notifier.app.SendNotification(fyne.NewNotification(title, body))
	return nil
}
