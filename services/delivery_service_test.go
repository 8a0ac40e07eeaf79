package services

import (
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"go.uber.org/mock/gomock"

	"chat-courier/domain"
	"chat-courier/errors"
	"chat-courier/mocks"
)

type deliveryFixture struct {
	mailbox   *mocks.MockIMailbox
	transport *mocks.MockTransport
}

func newDeliveryFixture(t *testing.T, notifySender bool) (deliveryFixture, *DeliveryService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := deliveryFixture{
		mailbox:   mocks.NewMockIMailbox(ctrl),
		transport: mocks.NewMockTransport(ctrl),
	}
	service := NewDeliveryService(logs.GetLoggerFromLevel(slog.LevelDebug),
		f.mailbox, f.transport, testGuard(t), notifySender)
	return f, service
}

func noteAt(from, body string, at time.Time) domain.PendingNote {
	return domain.PendingNote{From: from, Body: body, At: at}
}

func TestDeliverTo_PrivateFirst(t *testing.T) {
	f, service := newDeliveryFixture(t, false)

	at := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	f.mailbox.EXPECT().Drain("alex").Return([]domain.PendingNote{
		noteAt("Steve", "don't wait up", at),
	}, nil)
	f.transport.EXPECT().
		SendPrivate("Alex", "[Offline message] Steve (Mar 14 09:30): don't wait up").
		Return(nil)

	service.DeliverTo("Alex")
}

func TestDeliverTo_FallsBackToPublic(t *testing.T) {
	f, service := newDeliveryFixture(t, false)

	at := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	line := "[Offline message] Steve (Mar 14 09:30): don't wait up"
	f.mailbox.EXPECT().Drain("alex").Return([]domain.PendingNote{
		noteAt("Steve", "don't wait up", at),
	}, nil)
	f.transport.EXPECT().SendPrivate("Alex", line).Return(errors.ErrPrivateUnavailable)
	f.transport.EXPECT().SendPublic("Alex: " + line).Return(nil)

	service.DeliverTo("Alex")
}

func TestDeliverTo_NotifiesSender(t *testing.T) {
	f, service := newDeliveryFixture(t, true)

	at := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	f.mailbox.EXPECT().Drain("alex").Return([]domain.PendingNote{
		noteAt("Steve", "ping", at),
	}, nil)
	f.transport.EXPECT().SendPrivate("Alex", gomock.Any()).Return(nil)
	f.transport.EXPECT().SendPrivate("Steve", "Your note to Alex was delivered.").Return(nil)

	service.DeliverTo("Alex")
}

func TestDeliverTo_EmptyMailboxSendsNothing(t *testing.T) {
	f, service := newDeliveryFixture(t, true)

	f.mailbox.EXPECT().Drain("alex").Return(nil, nil)

	service.DeliverTo("Alex")
}

// Stored notes already carry defused braces; the composed line still goes
// through the outbound pipeline and numeric telemetry is masked there.
func TestDeliverTo_OutboundSanitizesComposedLine(t *testing.T) {
	f, service := newDeliveryFixture(t, false)

	at := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	f.mailbox.EXPECT().Drain("alex").Return([]domain.PendingNote{
		noteAt("Steve", "base is at 100, -40, 250", at),
	}, nil)
	f.transport.EXPECT().
		SendPrivate("Alex", "[Offline message] Steve (Mar 14 09:30): base is at [coords blocked]").
		Return(nil)

	service.DeliverTo("Alex")
}

func TestDeliverTo_AllNotesInOnePass(t *testing.T) {
	f, service := newDeliveryFixture(t, false)

	at := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	f.mailbox.EXPECT().Drain("alex").Return([]domain.PendingNote{
		noteAt("Steve", "one", at),
		noteAt("Bob", "two", at.Add(time.Minute)),
		noteAt("Steve", "three", at.Add(2 * time.Minute)),
	}, nil)
	f.transport.EXPECT().SendPrivate("Alex", gomock.Any()).Return(nil).Times(3)

	service.DeliverTo("Alex")
}
