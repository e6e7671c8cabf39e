package worker

import (
	"context"

	"github.com/wb-go/wbf/zlog"
)

//go:generate mockgen -source=pool.go -destination=../mocks/worker/mocks.go -package=mocks

type messageSource interface {
	Consume(out chan []byte) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, body []byte)
}

// Pool runs a fixed number of worker goroutines over one queue. Each
// message is handled in isolation: a panicking handler is recovered and
// logged, and the worker moves on to the next message.
type Pool struct {
	name    string
	source  messageSource
	handler messageHandler
}

// NewPool creates a worker pool for the named queue.
func NewPool(name string, source messageSource, handler messageHandler) *Pool {
	return &Pool{
		name:    name,
		source:  source,
		handler: handler,
	}
}

// Run consumes messages until ctx is cancelled. A started message is
// always handled to completion; cancellation only stops picking up new
// messages.
func (p *Pool) Run(ctx context.Context, workerCount int) {
	msgChan := make(chan []byte)

	go func() {
		if err := p.source.Consume(msgChan); err != nil {
			zlog.Logger.Error().Err(err).Str("queue", p.name).Msg("consumer stopped")
		}
	}()

	for i := 0; i < workerCount; i++ {
		go func(id int) {
			zlog.Logger.Printf("%s worker-%d started", p.name, id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("%s worker-%d shutting down", p.name, id)
					return
				case msg := <-msgChan:
					p.handle(ctx, msg)
				}
			}
		}(i)
	}

	<-ctx.Done()
	zlog.Logger.Printf("%s pool stopped", p.name)
}

func (p *Pool) handle(ctx context.Context, msg []byte) {
	defer func() {
		if r := recover(); r != nil {
			zlog.Logger.Error().
				Str("queue", p.name).
				Interface("panic", r).
				Msg("recovered from handler panic")
		}
	}()

	p.handler.HandleMessage(ctx, msg)
}
