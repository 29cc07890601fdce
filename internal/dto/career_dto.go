package dto

import (
	"careervr-be/pkg/riasec"
	"careervr-be/pkg/store"
)

const DefaultInitialQuestion = "Hãy giới thiệu về các hướng nghiệp phù hợp cho tôi"

// RiasecRequest is the questionnaire submission shared by /run-riasec and
// /start-conversation.
type RiasecRequest struct {
	Name    string `json:"name" validate:"notblank"`
	Class   string `json:"class" validate:"notblank"`
	School  string `json:"school" validate:"notblank"`
	Answers []int  `json:"answer" validate:"len=50,dive,min=1,max=5"`
}

// Profile returns the trimmed student metadata.
func (r *RiasecRequest) Profile() store.Profile {
	return store.Profile{
		Name:   trim(r.Name),
		Class:  trim(r.Class),
		School: trim(r.School),
	}
}

type StartConversationRequest struct {
	RiasecRequest
	InitialQuestion string `json:"initial_question"`
}

// Question returns the opening question, falling back to the default.
func (r *StartConversationRequest) Question() string {
	if trim(r.InitialQuestion) == "" {
		return DefaultInitialQuestion
	}
	return r.InitialQuestion
}

type StartConversationResponse struct {
	ConversationId string            `json:"conversation_id"`
	RiasecScores   riasec.Scores     `json:"riasec_scores"`
	Top3Types      []riasec.Category `json:"top_3_types"`
	AiResponse     string            `json:"ai_response"`
}

type ChatRequest struct {
	ConversationId string `json:"conversation_id" validate:"required"`
	Message        string `json:"message" validate:"required"`
}

type ChatResponse struct {
	ConversationId string          `json:"conversation_id"`
	AiResponse     string          `json:"ai_response"`
	Messages       []store.Message `json:"messages"`
}

type RunRiasecResponse struct {
	Text         string            `json:"text"`
	RiasecScores riasec.Scores     `json:"riasec_scores"`
	Top3Types    []riasec.Category `json:"top_3_types"`
	Top1Type     riasec.Category   `json:"top_1_type"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
