// Package worker persists generated insights off the request path. Saving an
// analysis is fire-and-forget: the response never waits on the log write, and
// a failed write costs only a log entry, not the request.
package worker

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tohidkhanbagani/expense-tracker/logger"
	"github.com/tohidkhanbagani/expense-tracker/models"
)

// Writer is the subset of the store the pool needs.
type Writer interface {
	SaveFinancialInsights(ctx context.Context, rec *models.InsightsRecord) error
}

type Pool struct {
	writer     Writer
	workers    int
	partitions []chan *models.InsightsRecord
	wg         sync.WaitGroup

	mu             sync.RWMutex
	recordsWritten uint64
	recordsDropped uint64
	writeDuration  uint64
}

// NewPool builds a pool of `workers` goroutines, each draining its own
// buffered partition. Records for the same user hash to the same partition,
// so one user's log entries stay in generation order.
func NewPool(writer Writer, workers int) *Pool {
	partitions := make([]chan *models.InsightsRecord, workers)
	for i := range partitions {
		partitions[i] = make(chan *models.InsightsRecord, 100)
	}
	return &Pool{
		writer:     writer,
		workers:    workers,
		partitions: partitions,
	}
}

func (p *Pool) Start() {
	logger.Get().Info("starting insights writer pool", zap.Int("workers", p.workers))
	for i := range p.partitions {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Stop closes the partitions and waits until every queued record has been
// written. Records already accepted by Submit are never lost to shutdown.
func (p *Pool) Stop() {
	logger.Get().Info("stopping insights writer pool")
	for _, ch := range p.partitions {
		close(ch)
	}
	p.wg.Wait()
}

// Submit queues one insights record. A full partition drops the record
// rather than blocking the request that produced it.
func (p *Pool) Submit(rec *models.InsightsRecord) {
	partition := p.partitionFor(rec.UserID)

	select {
	case p.partitions[partition] <- rec:
		logger.Get().Debug("insights record queued",
			zap.String("user_id", rec.UserID),
			zap.String("insights_type", rec.InsightsType),
			zap.Int("partition", partition))
	default:
		p.mu.Lock()
		p.recordsDropped++
		p.mu.Unlock()
		logger.Get().Warn("insights partition full, record dropped",
			zap.String("user_id", rec.UserID),
			zap.Int("partition", partition))
	}
}

func (p *Pool) partitionFor(userID string) int {
	h := fnv.New32a()
	h.Write([]byte(userID))
	return int(h.Sum32() % uint32(len(p.partitions)))
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for rec := range p.partitions[id] {
		start := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := p.writer.SaveFinancialInsights(ctx, rec)
		cancel()

		p.mu.Lock()
		if err != nil {
			p.recordsDropped++
		} else {
			p.recordsWritten++
			p.writeDuration += uint64(time.Since(start).Milliseconds())
		}
		p.mu.Unlock()

		if err != nil {
			logger.Get().Error("failed to persist insights record",
				zap.Int("worker_id", id),
				zap.String("user_id", rec.UserID),
				zap.Error(err))
		}
	}

	logger.Get().Info("insights worker stopping", zap.Int("worker_id", id))
}

// Stats reports how the pool has fared so far.
func (p *Pool) Stats() (written, dropped uint64, avgWriteMillis float64) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.recordsWritten > 0 {
		avgWriteMillis = float64(p.writeDuration) / float64(p.recordsWritten)
	}
	return p.recordsWritten, p.recordsDropped, avgWriteMillis
}
