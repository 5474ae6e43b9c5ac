package models

import "time"

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// UserQueryRecord logs one chatbot exchange for later review.
type UserQueryRecord struct {
	ID               int64     `json:"id"`
	SessionID        string    `json:"session_id"`
	Input            string    `json:"user_input"`
	Language         string    `json:"user_language"`
	TranslatedInput  string    `json:"translated_input,omitempty"`
	Response         string    `json:"bot_response"`
	ResponseLanguage string    `json:"response_language"`
	Model            string    `json:"model_used"`
	CreatedAt        time.Time `json:"created_at"`
}

// ImageAnalysisRecord logs one breed-identification run against the hosted
// detection model.
type ImageAnalysisRecord struct {
	ID            int64     `json:"id"`
	ImagePath     string    `json:"image_path"`
	Filename      string    `json:"uploaded_filename"`
	DetectedBreed string    `json:"detected_breed"`
	Confidence    float64   `json:"confidence_score"`
	Backend       string    `json:"analysis_backend"`
	CreatedAt     time.Time `json:"created_at"`
}

// Detection is a single bounding-box prediction from the detection model.
type Detection struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}
