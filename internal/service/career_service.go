package service

import (
	"context"
	"fmt"
	"time"

	"careervr-be/internal/constant"
	"careervr-be/internal/dto"
	"careervr-be/internal/pkg/logger"
	"careervr-be/internal/repository/contract"
	careerEvents "careervr-be/pkg/career/events"
	"careervr-be/pkg/llm"
	"careervr-be/pkg/riasec"
	"careervr-be/pkg/store"
)

const eventTimeout = 5 * time.Second

// ICareerService runs the three questionnaire use-cases.
type ICareerService interface {
	StartConversation(ctx context.Context, request *dto.StartConversationRequest) (*dto.StartConversationResponse, error)
	Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
	RunRiasec(ctx context.Context, request *dto.RiasecRequest) (*dto.RunRiasecResponse, error)
}

type careerService struct {
	sessionRepo    contract.SessionRepository
	gateway        llm.Gateway
	sheetPublisher IPublisherService
	eventPublisher careerEvents.Publisher
	logger         logger.ILogger
}

func NewCareerService(
	sessionRepo contract.SessionRepository,
	gateway llm.Gateway,
	sheetPublisher IPublisherService,
	eventPublisher careerEvents.Publisher,
	logger logger.ILogger,
) ICareerService {
	return &careerService{
		sessionRepo:    sessionRepo,
		gateway:        gateway,
		sheetPublisher: sheetPublisher,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// StartConversation scores the answers and asks the opening question. The
// session is only created once the chat backend has replied.
func (cs *careerService) StartConversation(ctx context.Context, request *dto.StartConversationRequest) (*dto.StartConversationResponse, error) {
	result, err := riasec.Calculate(request.Answers)
	if err != nil {
		return nil, err
	}

	profile := request.Profile()
	question := request.Question()

	reply, err := cs.gateway.Send(ctx, llm.ChatRequest{
		Profile: profile,
		Scores:  result.Scores,
		Top3:    result.Top3,
		Query:   question,
	})
	if err != nil {
		cs.logger.Warn("CAREER", "Opening question failed, no session created", map[string]interface{}{
			"name":  profile.Name,
			"error": err.Error(),
		})
		return nil, err
	}

	id, err := cs.sessionRepo.Create(ctx, &store.Session{
		Profile: profile,
		Scores:  result.Scores,
		Top3:    result.Top3,
		Top1:    result.Top1,
		Answers: request.Answers,
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if err := cs.sessionRepo.AppendMessages(ctx, id,
		store.Message{Role: store.RoleUser, Content: question},
		store.Message{Role: store.RoleAssistant, Content: reply.Answer},
	); err != nil {
		return nil, fmt.Errorf("store transcript: %w", err)
	}

	if reply.ConversationID != "" {
		if err := cs.sessionRepo.SetExternalConversation(ctx, id, reply.ConversationID); err != nil {
			return nil, fmt.Errorf("store conversation handle: %w", err)
		}
	}

	cs.logger.Info("CAREER", "Conversation started", map[string]interface{}{
		"conversation_id": id,
		"top_3_types":     riasec.Join(result.Top3, ","),
	})

	cs.queueSheetLog(ctx, profile, result)
	cs.emitCompleted(ctx, id, profile, result)

	return &dto.StartConversationResponse{
		ConversationId: id,
		RiasecScores:   result.Scores,
		Top3Types:      result.Top3,
		AiResponse:     reply.Answer,
	}, nil
}

func (cs *careerService) Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	session, err := cs.sessionRepo.Get(ctx, request.ConversationId)
	if err != nil {
		return nil, err
	}

	reply, err := cs.gateway.Send(ctx, llm.ChatRequest{
		Profile:        session.Profile,
		Scores:         session.Scores,
		Top3:           session.Top3,
		Query:          request.Message,
		ConversationID: session.ExternalConversationID,
	})
	if err != nil {
		return nil, err
	}

	if err := cs.sessionRepo.AppendMessages(ctx, session.ID,
		store.Message{Role: store.RoleUser, Content: request.Message},
		store.Message{Role: store.RoleAssistant, Content: reply.Answer},
	); err != nil {
		return nil, fmt.Errorf("store transcript: %w", err)
	}

	if session.ExternalConversationID == "" && reply.ConversationID != "" {
		if err := cs.sessionRepo.SetExternalConversation(ctx, session.ID, reply.ConversationID); err != nil {
			return nil, fmt.Errorf("store conversation handle: %w", err)
		}
	}

	updated, err := cs.sessionRepo.Get(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	return &dto.ChatResponse{
		ConversationId: session.ID,
		AiResponse:     reply.Answer,
		Messages:       updated.Messages,
	}, nil
}

// RunRiasec is the stateless one-shot analysis.
func (cs *careerService) RunRiasec(ctx context.Context, request *dto.RiasecRequest) (*dto.RunRiasecResponse, error) {
	result, err := riasec.Calculate(request.Answers)
	if err != nil {
		return nil, err
	}

	reply, err := cs.gateway.Send(ctx, llm.ChatRequest{
		Profile: request.Profile(),
		Scores:  result.Scores,
		Top3:    result.Top3,
		Query:   constant.AnalysisPrompt,
	})
	if err != nil {
		return nil, err
	}

	return &dto.RunRiasecResponse{
		Text:         reply.Answer,
		RiasecScores: result.Scores,
		Top3Types:    result.Top3,
		Top1Type:     result.Top1,
	}, nil
}

func (cs *careerService) queueSheetLog(ctx context.Context, profile store.Profile, result *riasec.Result) {
	scores := make(map[string]int, len(result.Scores))
	for c, v := range result.Scores {
		scores[string(c)] = v
	}
	top := make([]string, len(result.Top3))
	for i, c := range result.Top3 {
		top[i] = string(c)
	}

	msg := dto.SheetLogMessage{
		Name:           profile.Name,
		Class:          profile.Class,
		School:         profile.School,
		RiasecScores:   scores,
		Top3Types:      top,
		Recommendation: riasec.Recommend(result.Top3),
		Combinations:   riasec.DefaultCombinations,
	}
	if err := cs.sheetPublisher.Publish(ctx, msg); err != nil {
		cs.logger.Error("CAREER", "Failed to queue sheet log", map[string]interface{}{"error": err.Error()})
	}
}

// emitCompleted publishes on the event bus without holding up the response.
func (cs *careerService) emitCompleted(ctx context.Context, id string, profile store.Profile, result *riasec.Result) {
	go func() {
		evCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventTimeout)
		defer cancel()
		cs.eventPublisher.PublishAssessmentCompleted(evCtx, id, profile, result)
	}()
}
