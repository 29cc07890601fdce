package events

import (
	"context"
	"errors"
	"testing"

	"careervr-be/internal/pkg/logger"
	pkgEvents "careervr-be/pkg/events"
	"careervr-be/pkg/riasec"
	"careervr-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBus struct {
	got []pkgEvents.Event
	err error
}

func (b *fakeBus) Publish(ctx context.Context, event pkgEvents.Event) error {
	b.got = append(b.got, event)
	return b.err
}

func result() *riasec.Result {
	return &riasec.Result{
		Scores: riasec.Scores{riasec.Social: 30, riasec.Artistic: 20},
		Top3:   []riasec.Category{riasec.Social, riasec.Artistic, riasec.Realistic},
		Top1:   riasec.Social,
	}
}

func TestBusPublisher_AssessmentCompleted(t *testing.T) {
	bus := &fakeBus{}
	p := NewBusPublisher(bus, logger.NewNopLogger())

	p.PublishAssessmentCompleted(context.Background(), "conv-1", store.Profile{Name: "An", Class: "11B", School: "THPT B"}, result())

	require.Len(t, bus.got, 1)
	evt := bus.got[0]
	assert.Equal(t, pkgEvents.AssessmentCompleted, evt.EventType())
	assert.Equal(t, "conv-1", evt.Payload()["conversation_id"])
	assert.Equal(t, "S,A,R", evt.Payload()["top_3_types"])
	assert.Equal(t, 30, evt.Payload()["riasec_scores"].(map[string]int)["S"])
	assert.False(t, evt.Timestamp().IsZero())
}

func TestBusPublisher_NilBusAndErrors(t *testing.T) {
	NewBusPublisher(nil, logger.NewNopLogger()).
		PublishAssessmentCompleted(context.Background(), "c", store.Profile{}, result())

	bus := &fakeBus{err: errors.New("no stream")}
	NewBusPublisher(bus, logger.NewNopLogger()).
		PublishAssessmentCompleted(context.Background(), "c", store.Profile{}, result())
	assert.Len(t, bus.got, 1)
}
