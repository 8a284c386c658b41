package worker

import (
	"context"
	"sync"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/morningbutler/butler/internal/model"
	"github.com/morningbutler/butler/internal/rabbitmq/queue"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/worker/mock.go -package=mocks

type noticeConsumer interface {
	Consume(out chan<- queue.NoticeMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.NoticeMessage, strategy retry.Strategy)
}

type assignmentSource interface {
	NormalizedAssignments(ctx context.Context) ([]model.AssignmentView, error)
	TokenExpiration(ctx context.Context) string
}

type notificationPolicy interface {
	Run(ctx context.Context, strategy retry.Strategy, assignments []model.AssignmentView, tokenExpiration string, now time.Time)
}

// Notifier consumes the notice queue with a pool of dispatch workers.
type Notifier struct {
	queue   noticeConsumer
	handler messageHandler
}

func NewNotifier(q noticeConsumer, h messageHandler) *Notifier {
	return &Notifier{
		queue:   q,
		handler: h,
	}
}

func (n *Notifier) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	msgChan := make(chan queue.NoticeMessage, workerCount*10)

	go func() {
		if err := n.queue.Consume(msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume messages")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Printf("worker-%d channel closed, shutting down", id)
						return
					}

					n.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("notifier stopped")
}

// Scheduler runs the notification policy on a fixed interval against a
// freshly normalized assignment set.
type Scheduler struct {
	source   assignmentSource
	policy   notificationPolicy
	interval time.Duration
}

func NewScheduler(source assignmentSource, policy notificationPolicy, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	return &Scheduler{
		source:   source,
		policy:   policy,
		interval: interval,
	}
}

func (s *Scheduler) Run(ctx context.Context, strategy retry.Strategy) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.pass(ctx, strategy)

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Print("notification scheduler stopped")
			return
		case <-ticker.C:
			s.pass(ctx, strategy)
		}
	}
}

func (s *Scheduler) pass(ctx context.Context, strategy retry.Strategy) {
	assignments, err := s.source.NormalizedAssignments(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("notification pass: failed to load assignments")
		return
	}

	s.policy.Run(ctx, strategy, assignments, s.source.TokenExpiration(ctx), time.Now())
}
