package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pranathi988/Kamadhenu-app/internal/domain/models"
)

// ErrUnsupportedLanguage is returned when the requested language is
// not one of the assistant's interaction languages.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// ErrEmptyMessage is returned when the user message is blank.
var ErrEmptyMessage = errors.New("empty message")

// languageNames maps ISO codes to the display names used in prompts.
var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"te": "Telugu",
	"ta": "Tamil",
	"gu": "Gujarati",
	"pa": "Punjabi",
}

// Languages lists the supported interaction language codes.
func Languages() []string {
	return []string{"en", "hi", "te", "ta", "gu", "pa"}
}

// Generator produces an assistant reply for a fully-assembled prompt.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Translator converts text between the supported languages.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// QueryLogger persists chat exchanges for the activity digest.
type QueryLogger interface {
	InsertUserQuery(ctx context.Context, rec models.UserQueryRecord) error
}

// Request is one inbound chat turn.
type Request struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Language  string `json:"language"`
}

// Reply is the assistant's answer in the requested language.
type Reply struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Language  string `json:"language"`
	Model     string `json:"model"`
}

// Service translates farmer questions into the model's working
// language, asks the model, and translates the answer back.
type Service struct {
	generator  Generator
	translator Translator
	queries    QueryLogger
	sessions   *SessionManager
	model      string
	logger     *zap.Logger
}

// NewService wires a new chat service. The translator may be nil, in
// which case only English interaction is available.
func NewService(generator Generator, translator Translator, queries QueryLogger, model string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		generator:  generator,
		translator: translator,
		queries:    queries,
		sessions:   NewSessionManager(),
		model:      model,
		logger:     logger.Named("chat"),
	}
}

// History exposes the stored turns for a session.
func (s *Service) History(sessionID string) []models.ChatMessage {
	return s.sessions.History(sessionID)
}

// Ask handles one chat turn end to end.
func (s *Service) Ask(ctx context.Context, req Request) (Reply, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return Reply{}, ErrEmptyMessage
	}

	lang := req.Language
	if lang == "" {
		lang = "en"
	}
	langName, ok := languageNames[lang]
	if !ok {
		return Reply{}, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}
	if lang != "en" && s.translator == nil {
		return Reply{}, fmt.Errorf("%w: translation not configured for %s", ErrUnsupportedLanguage, lang)
	}

	// The model works in English. Translate inbound text when needed,
	// falling back to the original on translation failure.
	messageEN := message
	if lang != "en" {
		translated, err := s.translator.Translate(ctx, message, lang, "en")
		if err != nil {
			s.logger.Warn("inbound translation failed, using original text",
				zap.String("language", lang), zap.Error(err))
		} else {
			messageEN = translated
		}
	}

	prompt := buildPrompt(langName, messageEN)

	answerEN, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return Reply{}, fmt.Errorf("generate reply: %w", err)
	}

	answer := answerEN
	if lang != "en" {
		translated, err := s.translator.Translate(ctx, answerEN, "en", lang)
		if err != nil {
			s.logger.Warn("outbound translation failed, replying in English",
				zap.String("language", lang), zap.Error(err))
		} else {
			answer = translated
		}
	}

	s.sessions.Append(req.SessionID, models.ChatMessage{Role: "user", Content: message})
	s.sessions.Append(req.SessionID, models.ChatMessage{Role: "assistant", Content: answer})

	if s.queries != nil {
		rec := models.UserQueryRecord{
			SessionID:        req.SessionID,
			Input:            message,
			Language:         lang,
			Response:         answer,
			ResponseLanguage: lang,
			Model:            s.model,
		}
		if messageEN != message {
			rec.TranslatedInput = messageEN
		}
		if err := s.queries.InsertUserQuery(ctx, rec); err != nil {
			s.logger.Error("failed to log user query", zap.Error(err))
		}
	}

	return Reply{
		SessionID: req.SessionID,
		Message:   answer,
		Language:  lang,
		Model:     s.model,
	}, nil
}

func buildPrompt(langName, questionEN string) string {
	return fmt.Sprintf(`You are 'Kamdhenu Sahayak', an AI assistant for Indian farmers and cattle rearers. Focus specifically on:
1. Indigenous Indian cattle breeds (like Gir, Sahiwal, Ongole, Tharparkar, Kankrej, Rathi, Hallikar, etc.): their care, characteristics, milk yield, draft power, climate suitability, and conservation status.
2. Sustainable and eco-friendly farming practices relevant to India, especially those involving cattle: manure management (composting, biogas), rotational grazing, water conservation for livestock, agroforestry for fodder and shade, organic farming principles for fodder crops.
3. Common cattle diseases in India: recognizing symptoms and basic preventive measures (vaccination schedules, deworming), but always strongly emphasize consulting a qualified veterinarian for actual diagnosis and treatment. Do not provide specific drug dosages. Mention diseases like FMD, HS, BQ, Mastitis, Scours, Bloat.
4. Indian government schemes for agriculture and animal husbandry: briefly explain purpose, key benefits, and general eligibility for major central schemes (RGM, NLM, KCC, PM-KUSUM for biogas). Direct users to official portals for details.
5. General cattle lifecycle management: key nutritional needs and care during different stages (calf, heifer, pregnant, lactating, dry cow, bull).
6. Basic factors affecting cattle price and valuation (breed, age, health, milk yield, pregnancy status, pedigree), but state that actual market prices vary greatly. Avoid giving specific price predictions.

Answer the following user question concisely and helpfully in a friendly, respectful tone appropriate for farmers.
Use simple language. If the question is completely unrelated to these topics, politely state that you specialize in Indian farming, particularly cattle care and sustainable practices, and cannot answer the unrelated query.
User question (potentially translated from %s): %s
Respond only in English. Ensure the response is well-formatted, using bullet points or short paragraphs for clarity.`, langName, questionEN)
}
