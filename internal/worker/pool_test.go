package worker

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	mocks "github.com/jinhanworks/board-notifier/internal/mocks/worker"
)

func TestPool_Run_HandlesMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockmessageSource(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)

	p := NewPool("test-queue", mockSource, mockHandler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msg := []byte(`{"kind":"WriteComment","payload":{"commentId":42}}`)
	handled := make(chan struct{})

	mockSource.EXPECT().Consume(gomock.Any()).DoAndReturn(
		func(out chan []byte) error {
			out <- msg
			return nil
		},
	)
	mockHandler.EXPECT().HandleMessage(gomock.Any(), msg).Do(
		func(context.Context, []byte) { close(handled) },
	)

	go p.Run(ctx, 1)

	select {
	case <-handled:
	case <-time.After(time.Second):
		t.Fatal("message was not handled")
	}

	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestPool_Run_RecoversFromPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockmessageSource(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)

	p := NewPool("test-queue", mockSource, mockHandler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	second := make(chan struct{})

	mockSource.EXPECT().Consume(gomock.Any()).DoAndReturn(
		func(out chan []byte) error {
			out <- []byte("bad")
			out <- []byte("good")
			return nil
		},
	)
	mockHandler.EXPECT().HandleMessage(gomock.Any(), []byte("bad")).Do(
		func(context.Context, []byte) { panic("boom") },
	)
	mockHandler.EXPECT().HandleMessage(gomock.Any(), []byte("good")).Do(
		func(context.Context, []byte) { close(second) },
	)

	go p.Run(ctx, 1)

	select {
	case <-second:
		// The worker survived the panic and kept consuming.
	case <-time.After(time.Second):
		t.Fatal("worker did not survive handler panic")
	}

	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestPool_Run_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockmessageSource(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)

	p := NewPool("test-queue", mockSource, mockHandler)

	ctx, cancel := context.WithCancel(context.Background())

	consuming := make(chan struct{})
	mockSource.EXPECT().Consume(gomock.Any()).DoAndReturn(
		func(chan []byte) error {
			close(consuming)
			return nil
		},
	)

	done := make(chan struct{})
	go func() {
		p.Run(ctx, 2)
		close(done)
	}()

	// Cancel only once the pool has started consuming, so the Consume
	// expectation is always met.
	select {
	case <-consuming:
	case <-time.After(time.Second):
		t.Fatal("pool never started consuming")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pool did not stop on context cancellation")
	}
}
