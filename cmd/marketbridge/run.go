package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/marketbridge/notifykit/pkg/logger"
	"github.com/marketbridge/notifykit/pkg/notifications"
)

const (
	emailWelcome = "You've successfully joined MarketBridge via Email."
	smsWelcome   = "Thanks for joining MarketBridge! SMS alerts enabled."
	builderAlert = "Builder Email Alert"
)

// run wires one manager with an email and an SMS observer writing to out,
// then dispatches two factory-made notifications and one built notification.
func run(ctx context.Context, out io.Writer, log *slog.Logger) error {
	emailFactory := notifications.NewEmailFactory[string]()
	smsFactory := notifications.NewSMSFactory[string]()

	email := emailFactory.CreateNotification(emailWelcome)
	sms := smsFactory.CreateNotification(smsWelcome)

	manager := notifications.NewManager[string](notifications.WithLogger(log))
	manager.RegisterObserver(notifications.NewEmailObserver[string](out))
	manager.RegisterObserver(notifications.NewSMSObserver[string](out))

	built, err := notifications.NewBuilder[string]().
		SetContent(builderAlert).
		BuildEmailNotification()
	if err != nil {
		return fmt.Errorf("build notification: %w", err)
	}

	for _, n := range []notifications.Notification[string]{email, sms, built} {
		if err := manager.NotifyObservers(ctx, n); err != nil {
			return fmt.Errorf("dispatch %s notification %s: %w", n.Channel(), n.ID(), err)
		}
	}

	log.InfoContext(ctx, "welcome notifications dispatched",
		logger.Count(3),
		slog.Int("observers", manager.Len()),
	)
	return nil
}
