package queue

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"marketplace/pkg/logger"
)

func setupTestLogger(t *testing.T) {
	t.Helper()
	logger.InitLogger(filepath.Join(t.TempDir(), "logs.log"), 1, 1, 1, false, "single", "debug")
}

func TestNewWorkerDefaults(t *testing.T) {
	w := NewWorker(nil, nil, nil, WorkerConfig{})

	assert.Equal(t, 5, w.workerCount)
	assert.Equal(t, 90*time.Second, w.config.TaskTimeout)
	assert.Equal(t, 30*time.Second, w.config.ShutdownTimeout)
}

func TestWorkerStopDrainsInFlightTask(t *testing.T) {
	setupTestLogger(t)

	w := NewWorker(nil, nil, nil, WorkerConfig{ShutdownTimeout: 2 * time.Second})

	// 模拟一个正在收尾的工作器成员
	released := make(chan struct{})
	w.wg.Add(1)
	go func() {
		<-w.stopChan
		time.Sleep(50 * time.Millisecond)
		close(released)
		w.wg.Done()
	}()

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	// Stop 必须等在途任务收尾后才返回
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after workers drained")
	}

	select {
	case <-released:
	default:
		t.Fatal("Stop returned before the in-flight task finished")
	}
}
