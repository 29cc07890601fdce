package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"careervr-be/internal/dto"
	"careervr-be/internal/pkg/logger"
	"careervr-be/pkg/sheet"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService delivers queued rows to the results spreadsheet. Delivery
// failures are logged and dropped; nothing is retried.
type consumerService struct {
	subscriber  message.Subscriber
	topicName   string
	sheetLogger sheet.Logger
	timeout     time.Duration
	logger      logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	sheetLogger sheet.Logger,
	timeout time.Duration,
	log logger.ILogger,
) IConsumerService {
	if timeout <= 0 {
		timeout = sheet.DefaultTimeout
	}
	return &consumerService{
		subscriber:  subscriber,
		topicName:   topicName,
		sheetLogger: sheetLogger,
		timeout:     timeout,
		logger:      log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	// Always Ack: a redelivered row would be logged twice.
	defer msg.Ack()

	var payload dto.SheetLogMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("SHEET", "Failed to unmarshal sheet log message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, cs.timeout)
	defer cancel()

	if err := cs.sheetLogger.Append(sendCtx, toSheetRow(payload)); err != nil {
		cs.logger.Error("SHEET", "Failed to log to Google Sheet", map[string]interface{}{
			"name":  payload.Name,
			"error": err.Error(),
		})
		return
	}

	cs.logger.Info("SHEET", "Logged to Google Sheet", map[string]interface{}{"name": payload.Name})
}

func toSheetRow(m dto.SheetLogMessage) sheet.Row {
	return sheet.Row{
		Name:         m.Name,
		Class:        m.Class,
		School:       m.School,
		R:            m.RiasecScores["R"],
		I:            m.RiasecScores["I"],
		A:            m.RiasecScores["A"],
		S:            m.RiasecScores["S"],
		E:            m.RiasecScores["E"],
		C:            m.RiasecScores["C"],
		TopRiasec:    strings.Join(m.Top3Types, ","),
		Recommended:  m.Recommendation,
		Combinations: m.Combinations,
	}
}
