package notify

import "context"

// Directive is the verb of a routing-control line.
type Directive string

const (
	Announce Directive = "announce"
	Withdraw Directive = "withdraw"
)

// Notifier delivers a directive for the named watchdog.
type Notifier interface {
	Send(ctx context.Context, d Directive, name string) error
}
