// Package notify decouples outbound email from the request path. Sends
// are queued on a bounded channel and worked off by a small pool with
// retry; a full queue drops the job with a log line rather than
// blocking a request.
package notify

import (
	"sync"
	"time"

	"plantnet/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sender is the outbound email collaborator.
type Sender interface {
	SendEmail(toEmail, subject, htmlContent string) error
}

// Job is one email to deliver.
type Job struct {
	ID      string
	To      string
	Subject string
	HTML    string
}

// Queue is a bounded asynchronous email dispatcher.
type Queue struct {
	sender     Sender
	jobs       chan Job
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
	maxRetries int
	backoff    time.Duration
}

// NewQueue starts workers draining a buffer-sized queue.
func NewQueue(sender Sender, buffer, workers int) *Queue {
	q := &Queue{
		sender:     sender,
		jobs:       make(chan Job, buffer),
		maxRetries: 3,
		backoff:    time.Second,
	}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	return q
}

// Enqueue queues an email for delivery. Returns false when the queue
// is full or already shut down; the job is dropped and logged, never
// blocking the caller.
func (q *Queue) Enqueue(to, subject, html string) bool {
	job := Job{
		ID:      uuid.NewString(),
		To:      to,
		Subject: subject,
		HTML:    html,
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		logger.Warn("notification queue closed, dropping email",
			zap.String("jobID", job.ID),
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return false
	}
	select {
	case q.jobs <- job:
		return true
	default:
		logger.Warn("notification queue full, dropping email",
			zap.String("jobID", job.ID),
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return false
	}
}

func (q *Queue) worker() {
	defer q.wg.Done()
	for job := range q.jobs {
		q.deliver(job)
	}
}

func (q *Queue) deliver(job Job) {
	var err error
	for attempt := 1; attempt <= q.maxRetries; attempt++ {
		err = q.sender.SendEmail(job.To, job.Subject, job.HTML)
		if err == nil {
			logger.Info("email sent",
				zap.String("jobID", job.ID),
				zap.String("to", job.To),
				zap.Int("attempt", attempt),
			)
			return
		}
		if attempt < q.maxRetries {
			time.Sleep(q.backoff * time.Duration(attempt))
		}
	}
	// Dead letter: failures never reach the HTTP caller.
	logger.Error("email delivery failed, giving up",
		zap.String("jobID", job.ID),
		zap.String("to", job.To),
		zap.Int("attempts", q.maxRetries),
		zap.Error(err),
	)
}

// Shutdown stops accepting work and waits for in-flight deliveries.
// Safe to call more than once; later Enqueue calls report a drop
// instead of panicking on the closed channel.
func (q *Queue) Shutdown() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	q.wg.Wait()
}
