package jobs

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Ananth-NQI/scam-honeypot/internal/models"
	"github.com/Ananth-NQI/scam-honeypot/internal/services"
)

// NotificationJob delivers scam reports in the background so the honeypot
// reply never waits on an external endpoint
type NotificationJob struct {
	notifiers []services.Notifier
	queue     chan models.CallbackPayload
	workers   int
	timeout   time.Duration

	mu        sync.Mutex
	isRunning bool
	wg        sync.WaitGroup

	// onDelivery observes every discarded result; tests hook it
	onDelivery func(services.DeliveryResult)
}

// NewNotificationJob creates a job with a bounded queue
func NewNotificationJob(notifiers []services.Notifier, queueSize, workers int, timeout time.Duration) *NotificationJob {
	if queueSize <= 0 {
		queueSize = 1
	}
	if workers <= 0 {
		workers = 1
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &NotificationJob{
		notifiers: notifiers,
		queue:     make(chan models.CallbackPayload, queueSize),
		workers:   workers,
		timeout:   timeout,
	}
}

// Start launches the delivery workers
func (n *NotificationJob) Start() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.isRunning {
		log.Println("Notification workers already running")
		return
	}
	n.isRunning = true

	for i := 0; i < n.workers; i++ {
		n.wg.Add(1)
		go n.run()
	}
	log.Printf("Started %d notification workers (%d notifiers)", n.workers, len(n.notifiers))
}

// Stop closes the queue and waits for pending reports to be delivered
func (n *NotificationJob) Stop() {
	n.mu.Lock()
	if !n.isRunning {
		n.mu.Unlock()
		return
	}
	n.isRunning = false
	close(n.queue)
	n.mu.Unlock()

	log.Println("Stopping notification workers...")
	n.wg.Wait()
}

// Submit queues a report without blocking. A full queue or a stopped job
// drops the report and returns false.
func (n *NotificationJob) Submit(payload models.CallbackPayload) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.isRunning {
		log.Printf("⚠️  Notification workers stopped, dropping report for %s", payload.SessionID)
		return false
	}

	select {
	case n.queue <- payload:
		return true
	default:
		log.Printf("⚠️  Notification queue full, dropping report for %s", payload.SessionID)
		return false
	}
}

// Pending returns the number of queued reports
func (n *NotificationJob) Pending() int {
	return len(n.queue)
}

func (n *NotificationJob) run() {
	defer n.wg.Done()

	for payload := range n.queue {
		for _, notifier := range n.notifiers {
			n.deliver(notifier, payload)
		}
	}
}

func (n *NotificationJob) deliver(notifier services.Notifier, payload models.CallbackPayload) {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	var result services.DeliveryResult
	func() {
		defer func() {
			if r := recover(); r != nil {
				result = services.DeliveryResult{Notifier: notifier.Name(), SessionID: payload.SessionID}
				result.Err = panicError{value: r}
			}
		}()
		result = notifier.Notify(ctx, payload)
	}()

	n.discardDelivery(result)
}

// discardDelivery is where delivery outcomes end. Failures are logged and
// dropped: reporting must never affect the reply already sent.
func (n *NotificationJob) discardDelivery(result services.DeliveryResult) {
	if result.OK() {
		log.Printf("📤 %s report for %s delivered (%d) in %v", result.Notifier, result.SessionID, result.StatusCode, result.Duration)
	} else {
		log.Printf("❌ %s report for %s failed: %v", result.Notifier, result.SessionID, result.Err)
	}

	if n.onDelivery != nil {
		n.onDelivery(result)
	}
}
