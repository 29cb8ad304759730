package cms_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/inkwell-io/cms-client/pkg/cms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	logs []map[string]interface{}
}

func (l *recordingLogger) log(level, msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.log("debug", msg, fields) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.log("info", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.log("warn", msg, fields) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.log("error", msg, fields) }

func TestInterceptorChain(t *testing.T) {
	t.Parallel()
	t.Run("executes request interceptors in order", func(t *testing.T) {
		t.Parallel()

		chain := cms.NewInterceptorChain()

		var order []string

		chain.AddRequestInterceptor(func(ctx context.Context, req *cms.Request) error {
			order = append(order, "first")

			return nil
		})
		chain.AddRequestInterceptor(func(ctx context.Context, req *cms.Request) error {
			order = append(order, "second")

			return nil
		})

		err := chain.ExecuteRequestInterceptors(context.Background(), &cms.Request{})

		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("stops on first failing interceptor", func(t *testing.T) {
		t.Parallel()

		chain := cms.NewInterceptorChain()
		boom := errors.New("boom")

		chain.AddRequestInterceptor(func(ctx context.Context, req *cms.Request) error {
			return boom
		})

		var reached bool

		chain.AddRequestInterceptor(func(ctx context.Context, req *cms.Request) error {
			reached = true

			return nil
		})

		err := chain.ExecuteRequestInterceptors(context.Background(), &cms.Request{})

		require.ErrorIs(t, err, boom)
		assert.False(t, reached)
	})

	t.Run("response interceptors see the classified error", func(t *testing.T) {
		t.Parallel()

		chain := cms.NewInterceptorChain()

		var seen error

		chain.AddResponseInterceptor(func(ctx context.Context, req *cms.Request, resp *cms.Response) error {
			seen = resp.Error

			return nil
		})

		classified := cms.Classify(429, nil, nil)
		err := chain.ExecuteResponseInterceptors(context.Background(),
			&cms.Request{}, &cms.Response{StatusCode: 429, Error: classified})

		require.NoError(t, err)
		assert.Same(t, classified, seen)
	})
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}

	reqInterceptor := cms.LoggingInterceptor(logger)
	err := reqInterceptor(context.Background(), &cms.Request{Method: "GET", Path: "/v1/contents/exercises"})
	require.NoError(t, err)

	respInterceptor := cms.LoggingResponseInterceptor(logger)
	err = respInterceptor(context.Background(),
		&cms.Request{Method: "GET", Path: "/v1/contents/exercises"},
		&cms.Response{StatusCode: 500, Error: cms.Classify(500, nil, nil)})
	require.NoError(t, err)

	require.Len(t, logger.logs, 2)
	assert.Equal(t, "API Request", logger.logs[0]["msg"])
	assert.Equal(t, "error", logger.logs[1]["level"])
}

func TestUserAgentInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := cms.UserAgentInterceptor("inkwell-tests/1.0")
	req := &cms.Request{Method: "GET", Path: "/v1/info"}

	err := interceptor(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "inkwell-tests/1.0", req.Headers.Get("User-Agent"))
}

func TestRequestIDInterceptor(t *testing.T) {
	t.Parallel()

	var counter int

	interceptor := cms.RequestIDInterceptor(func() string {
		counter++

		return fmt.Sprintf("req-%d", counter)
	})

	first := &cms.Request{}
	second := &cms.Request{}

	require.NoError(t, interceptor(context.Background(), first))
	require.NoError(t, interceptor(context.Background(), second))

	assert.Equal(t, "req-1", first.Headers.Get("X-Request-Id"))
	assert.Equal(t, "req-2", second.Headers.Get("X-Request-Id"))
}

func TestTimingInterceptor(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	reqInterceptor, respInterceptor := cms.TimingInterceptor(logger)

	req := &cms.Request{Method: "GET", Path: "/v1/info"}

	require.NoError(t, reqInterceptor(context.Background(), req))
	require.NoError(t, respInterceptor(context.Background(), req, &cms.Response{StatusCode: 200}))

	require.Len(t, logger.logs, 1)
	assert.Equal(t, "API Timing", logger.logs[0]["msg"])
}

func TestRetryBudgetInterceptor(t *testing.T) {
	t.Parallel()
	t.Run("counts attempts in metadata and fails once over budget", func(t *testing.T) {
		t.Parallel()

		interceptor := cms.RetryBudgetInterceptor(2)
		req := &cms.Request{Method: "GET", Path: "/v1/contents/exercises"}

		require.NoError(t, interceptor(context.Background(), req))
		assert.Equal(t, 1, req.Metadata["attempt"])

		require.NoError(t, interceptor(context.Background(), req))
		assert.Equal(t, 2, req.Metadata["attempt"])

		err := interceptor(context.Background(), req)

		require.ErrorIs(t, err, cms.ErrRetryBudgetExhausted)
		assert.Equal(t, 3, req.Metadata["attempt"])
	})

	t.Run("separate requests get separate budgets", func(t *testing.T) {
		t.Parallel()

		interceptor := cms.RetryBudgetInterceptor(1)

		first := &cms.Request{Method: "GET", Path: "/v1/info"}
		second := &cms.Request{Method: "GET", Path: "/v1/schemas"}

		require.NoError(t, interceptor(context.Background(), first))
		require.NoError(t, interceptor(context.Background(), second))
		require.ErrorIs(t, interceptor(context.Background(), first), cms.ErrRetryBudgetExhausted)
	})
}

func TestRateLimitInterceptor(t *testing.T) {
	t.Parallel()
	t.Run("allows a burst up to the bucket size", func(t *testing.T) {
		t.Parallel()

		interceptor := cms.RateLimitInterceptor(2)
		req := &cms.Request{Method: "GET", Path: "/v1/info"}

		require.NoError(t, interceptor(context.Background(), req))
		require.NoError(t, interceptor(context.Background(), req))
	})

	t.Run("blocks on an empty bucket until the context is done", func(t *testing.T) {
		t.Parallel()

		interceptor := cms.RateLimitInterceptor(2)
		req := &cms.Request{Method: "GET", Path: "/v1/info"}

		require.NoError(t, interceptor(context.Background(), req))
		require.NoError(t, interceptor(context.Background(), req))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := interceptor(ctx, req)

		require.ErrorIs(t, err, context.Canceled)
	})
}
