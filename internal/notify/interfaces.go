package notify

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import "context"

// Mailer отправляет одно письмо.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Runner ставит задачу в фоновую очередь.
type Runner interface {
	Go(name string, fn func(ctx context.Context) error)
}
