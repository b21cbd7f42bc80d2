package queue

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	m := NewQueueMetrics()

	m.RecordSuccess(OpPush)
	m.RecordSuccess(OpProcess)
	m.RecordError(OpProcess)
	m.RecordError(OpProcess)

	assert.Equal(t, int64(4), m.totalTasks.Load())
	assert.Equal(t, int64(2), m.successfulTasks.Load())
	assert.Equal(t, int64(2), m.failedTasks.Load())
	assert.Equal(t, int64(2), m.ErrorCount(OpProcess))
	assert.Equal(t, int64(0), m.ErrorCount(OpPush))
}

func TestLatencyStats(t *testing.T) {
	m := NewQueueMetrics()

	m.RecordProcessLatency(100 * time.Millisecond)
	m.RecordProcessLatency(300 * time.Millisecond)

	assert.Equal(t, 200*time.Millisecond, m.processLatency.Average())
	assert.Equal(t, 100*time.Millisecond, m.processLatency.min)
	assert.Equal(t, 300*time.Millisecond, m.processLatency.max)

	// 空统计不应除零
	assert.Equal(t, time.Duration(0), m.pushLatency.Average())
}

func TestMetricsConcurrent(t *testing.T) {
	m := NewQueueMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RecordError(OpPop)
			m.RecordPopLatency(time.Millisecond)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(50), m.ErrorCount(OpPop))
	assert.Equal(t, int64(50), m.popLatency.count)
}
