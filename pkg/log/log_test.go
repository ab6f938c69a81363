package log

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTestLogger(t *testing.T) *test.Hook {
	t.Helper()

	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)

	previous := L
	L = New(base)
	t.Cleanup(func() { L = previous })

	return hook
}

func TestForContext_CarriesRequestFields(t *testing.T) {
	hook := useTestLogger(t)

	ctx, correlationID := WithRequest(context.Background())
	Annotate(ctx, Fields{
		FieldAnalysis:  "abc",
		FieldKey:       "client",
		FieldDatasetID: "ds-1",
	})

	ForContext(ctx).WithField("code", "ANL_002").Warn("reporting: análise rejeitada")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, correlationID, entry.Data[FieldCorrelationID])
	assert.Equal(t, "abc", entry.Data[FieldAnalysis])
	assert.Equal(t, "client", entry.Data[FieldKey])
	assert.Equal(t, "ds-1", entry.Data[FieldDatasetID])
	assert.Equal(t, "ANL_002", entry.Data["code"])
}

func TestAnnotate_WithoutRequest(t *testing.T) {
	hook := useTestLogger(t)
	ctx := context.Background()

	Annotate(ctx, Fields{FieldAnalysis: "dashboard"})
	ForContext(ctx).Info("sem requisição")

	assert.Empty(t, RequestFields(ctx))
	assert.Empty(t, CorrelationID(ctx))
	require.NotNil(t, hook.LastEntry())
	assert.Empty(t, hook.LastEntry().Data)
}

func TestRequestFields_ReturnsCopy(t *testing.T) {
	ctx, correlationID := WithRequest(context.Background())

	fields := RequestFields(ctx)
	fields[FieldAnalysis] = "alterado"

	assert.NotContains(t, RequestFields(ctx), FieldAnalysis)
	assert.Equal(t, correlationID, CorrelationID(ctx))
}

func TestAnnotate_Concurrent(t *testing.T) {
	ctx, _ := WithRequest(context.Background())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Annotate(ctx, Fields{fmt.Sprintf("campo_%d", i): i})
		}()
	}
	wg.Wait()

	// 20 campos anotados mais o correlation id
	assert.Len(t, RequestFields(ctx), 21)
}
