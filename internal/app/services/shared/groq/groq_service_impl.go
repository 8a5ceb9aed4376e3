// Package groq implements contracts.AIProvider over Groq's
// OpenAI-compatible REST API. Envelope probing stays inside this
// adapter; callers only ever see text or an error.
package groq

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"precharting-service/internal/app/config"
	"precharting-service/internal/app/contracts"
	"precharting-service/internal/pkg/constvars"
	"precharting-service/internal/pkg/exceptions"
	"strconv"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	groqServiceInstance contracts.AIProvider
	onceGroqService     sync.Once
)

type groqService struct {
	BaseUrl             string
	APIKey              string
	TranscribeModel     string
	ChatModel           string
	Language            string
	Temperature         float64
	CompletionMaxTokens int
	Log                 *zap.Logger
}

func NewGroqService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.AIProvider {
	onceGroqService.Do(func() {
		instance := &groqService{
			BaseUrl:             internalConfig.Groq.BaseUrl,
			APIKey:              internalConfig.Groq.APIKey,
			TranscribeModel:     internalConfig.Groq.TranscribeModel,
			ChatModel:           internalConfig.Groq.ChatModel,
			Language:            internalConfig.Groq.Language,
			Temperature:         internalConfig.Groq.Temperature,
			CompletionMaxTokens: internalConfig.Groq.CompletionMaxTokens,
			Log:                 logger,
		}
		groqServiceInstance = instance
	})
	return groqServiceInstance
}

func (s *groqService) Transcribe(ctx context.Context, upload *contracts.AudioUpload) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("groqService.Transcribe called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingModelKey, s.TranscribeModel),
		zap.String(constvars.LoggingFilenameKey, upload.Filename),
	)

	filename := upload.Filename
	if filename == "" {
		filename = constvars.DefaultAudioFileName
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(constvars.FormFieldAudioFile, filename)
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	if _, err = part.Write(upload.Data); err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	writer.WriteField("model", s.TranscribeModel)
	writer.WriteField("language", s.Language)
	writer.WriteField("temperature", strconv.FormatFloat(s.Temperature, 'f', -1, 64))
	writer.WriteField("response_format", "json")
	if err = writer.Close(); err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, s.BaseUrl+"/audio/transcriptions", &body)
	if err != nil {
		s.Log.Error("groqService.Transcribe error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.APIKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		s.Log.Error("groqService.Transcribe error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrTranscriptionProvider(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		providerErr := fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(bodyBytes))
		s.Log.Error("groqService.Transcribe provider error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(providerErr),
		)
		return "", exceptions.ErrTranscriptionProvider(providerErr)
	}

	text, err := extractTranscriptText(resp.Body)
	if err != nil {
		s.Log.Error("groqService.Transcribe error extracting transcript",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrTranscriptionEnvelope(err)
	}

	s.Log.Info("groqService.Transcribe succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return text, nil
}

// extractTranscriptText accepts both the plain json envelope ({"text":
// ...}) and the verbose_json envelope, which nests the same field next
// to segment metadata. Some proxies rename the field to "transcript".
func extractTranscriptText(body io.Reader) (string, error) {
	var envelope map[string]interface{}
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return "", err
	}
	if text, ok := envelope["text"].(string); ok {
		return text, nil
	}
	if text, ok := envelope["transcript"].(string); ok {
		return text, nil
	}
	return "", fmt.Errorf("unparseable response shape: no text field")
}

type chatCompletionRequest struct {
	Model               string                  `json:"model"`
	Messages            []contracts.ChatMessage `json:"messages"`
	Temperature         float64                 `json:"temperature"`
	MaxCompletionTokens int                     `json:"max_completion_tokens"`
	Stream              bool                    `json:"stream"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		Text string `json:"text"`
	} `json:"choices"`
}

func (s *groqService) Complete(ctx context.Context, messages []contracts.ChatMessage) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("groqService.Complete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingModelKey, s.ChatModel),
	)

	requestJSON, err := json.Marshal(chatCompletionRequest{
		Model:               s.ChatModel,
		Messages:            messages,
		Temperature:         s.Temperature,
		MaxCompletionTokens: s.CompletionMaxTokens,
		Stream:              false,
	})
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, s.BaseUrl+"/chat/completions", bytes.NewBuffer(requestJSON))
	if err != nil {
		s.Log.Error("groqService.Complete error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.APIKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		s.Log.Error("groqService.Complete error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrCompletionProvider(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		providerErr := fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(bodyBytes))
		s.Log.Error("groqService.Complete provider error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(providerErr),
		)
		return "", exceptions.ErrCompletionProvider(providerErr)
	}

	var envelope chatCompletionResponse
	if err = json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		s.Log.Error("groqService.Complete error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrCompletionEnvelope(err)
	}

	if len(envelope.Choices) == 0 {
		return "", exceptions.ErrCompletionEnvelope(fmt.Errorf("unparseable response shape: no choices"))
	}
	content := envelope.Choices[0].Message.Content
	if content == "" {
		// Older completion-style envelopes put the text on the choice
		// itself.
		content = envelope.Choices[0].Text
	}
	if content == "" {
		return "", exceptions.ErrCompletionEnvelope(fmt.Errorf("unparseable response shape: no content"))
	}

	s.Log.Info("groqService.Complete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return content, nil
}
