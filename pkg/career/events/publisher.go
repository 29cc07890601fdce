package events

import (
	"context"
	"time"

	"careervr-be/internal/pkg/logger"
	pkgEvents "careervr-be/pkg/events"
	"careervr-be/pkg/riasec"
	"careervr-be/pkg/store"
)

// Publisher abstracts domain events of the assessment flow.
type Publisher interface {
	PublishAssessmentCompleted(ctx context.Context, conversationId string, profile store.Profile, result *riasec.Result)
}

// BusPublisher implements Publisher on top of an event bus. A nil bus turns
// every call into a no-op.
type BusPublisher struct {
	bus    pkgEvents.Publisher
	logger logger.ILogger
}

func NewBusPublisher(bus pkgEvents.Publisher, logger logger.ILogger) *BusPublisher {
	return &BusPublisher{
		bus:    bus,
		logger: logger,
	}
}

// PublishAssessmentCompleted emits ASSESSMENT_COMPLETED
func (p *BusPublisher) PublishAssessmentCompleted(ctx context.Context, conversationId string, profile store.Profile, result *riasec.Result) {
	if p.bus == nil {
		return
	}

	scores := make(map[string]int, len(result.Scores))
	for c, v := range result.Scores {
		scores[string(c)] = v
	}

	now := time.Now()
	evt := pkgEvents.BaseEvent{
		Type: pkgEvents.AssessmentCompleted,
		Data: map[string]interface{}{
			"conversation_id": conversationId,
			"name":            profile.Name,
			"class":           profile.Class,
			"school":          profile.School,
			"riasec_scores":   scores,
			"top_3_types":     riasec.Join(result.Top3, ","),
			"top_1_type":      string(result.Top1),
			"entity_type":     "conversation",
			"entity_id":       conversationId,
			"occurred_at":     now,
		},
		OccurredAt: now,
	}

	if err := p.bus.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish ASSESSMENT_COMPLETED event", map[string]interface{}{"error": err.Error()})
	}
}
