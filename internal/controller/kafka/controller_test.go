package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/andreyxaxa/Image-Gallery/internal/entity"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})       {}
func (nopLogger) Warn(string, ...interface{})       {}
func (nopLogger) Error(interface{}, ...interface{}) {}
func (nopLogger) Fatal(interface{}, ...interface{}) {}

type fakeSource struct {
	msgs chan kafka.Message

	mu        sync.Mutex
	committed []int64
	closed    bool
}

func newFakeSource(msgs ...kafka.Message) *fakeSource {
	ch := make(chan kafka.Message, len(msgs))
	for _, m := range msgs {
		ch <- m
	}
	return &fakeSource{msgs: ch}
}

func (f *fakeSource) ReadEvent(ctx context.Context) (kafka.Message, error) {
	select {
	case m := <-f.msgs:
		return m, nil
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	}
}

func (f *fakeSource) CommitEvent(_ context.Context, m kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.committed = append(f.committed, m.Offset)
	return nil
}

func (f *fakeSource) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeSource) commits() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.committed...)
}

type fakeNotifier struct {
	mu        sync.Mutex
	published []string
	failures  int
}

func (f *fakeNotifier) NotifyUpload(_ context.Context, event entity.UploadEvent) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return "", errors.New("throttled")
	}
	f.published = append(f.published, event.ImageName)
	return "mid", nil
}

func (f *fakeNotifier) names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.published...)
}

func message(offset int64, body string) kafka.Message {
	return kafka.Message{Offset: offset, Value: []byte(body)}
}

func TestKafkaController_CommitsAfterPublish(t *testing.T) {
	src := newFakeSource(
		message(1, `{"image_name":"cat.png","file_size":1,"file_extension":"png","timestamp":"t"}`),
		message(2, `not json`),
		message(3, `{"image_name":"dog.jpg","file_size":2,"file_extension":"jpg","timestamp":"t"}`),
	)
	n := &fakeNotifier{failures: 1}

	c := New(n, src, nopLogger{}, time.Second, time.Second, time.Millisecond)
	require.NoError(t, c.Start(context.Background()))

	require.Eventually(t, func() bool {
		return len(src.commits()) == 3
	}, 2*time.Second, 5*time.Millisecond)

	assert.Equal(t, []int64{1, 2, 3}, src.commits())
	assert.Equal(t, []string{"cat.png", "dog.jpg"}, n.names())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, c.Shutdown(ctx))
	assert.True(t, src.closed)
}

func TestKafkaController_ShutdownKeepsFailingEventUncommitted(t *testing.T) {
	src := newFakeSource(message(7, `{"image_name":"cat.png","file_size":1,"file_extension":"png","timestamp":"t"}`))
	n := &fakeNotifier{failures: 1 << 30}

	c := New(n, src, nopLogger{}, time.Second, time.Second, time.Millisecond)
	require.NoError(t, c.Start(context.Background()))
	require.Error(t, c.Start(context.Background()))

	time.Sleep(20 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, c.Shutdown(ctx))

	assert.Empty(t, src.commits())
	assert.Empty(t, n.names())
}

type flakySource struct {
	*fakeSource

	mu       sync.Mutex
	failures int
	reads    int
}

func (f *flakySource) ReadEvent(ctx context.Context) (kafka.Message, error) {
	f.mu.Lock()
	f.reads++
	if f.failures > 0 {
		f.failures--
		f.mu.Unlock()
		return kafka.Message{}, errors.New("broker unavailable")
	}
	f.mu.Unlock()

	return f.fakeSource.ReadEvent(ctx)
}

func (f *flakySource) readCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reads
}

func TestKafkaController_ReadErrorBacksOff(t *testing.T) {
	src := &flakySource{
		fakeSource: newFakeSource(message(4, `{"image_name":"cat.png","file_size":1,"file_extension":"png","timestamp":"t"}`)),
		failures:   1 << 30,
	}
	n := &fakeNotifier{}

	c := New(n, src, nopLogger{}, time.Second, time.Second, 50*time.Millisecond)
	require.NoError(t, c.Start(context.Background()))

	time.Sleep(120 * time.Millisecond)
	assert.LessOrEqual(t, src.readCount(), 4)

	src.mu.Lock()
	src.failures = 0
	src.mu.Unlock()

	require.Eventually(t, func() bool {
		return len(src.commits()) == 1
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"cat.png"}, n.names())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, c.Shutdown(ctx))
}
