package models

// ClipStatus is the library's view of a source clip.
type ClipStatus string

const (
	ClipReady      ClipStatus = "ready"
	ClipProcessing ClipStatus = "processing"
	ClipFailed     ClipStatus = "failed"
)

// Clip is a source video in the remote clip library.
type Clip struct {
	ClipID        string     `json:"clip_id"`
	Channel       string     `json:"channel"`
	CreatedBy     string     `json:"created_by"`
	CreatedAt     string     `json:"created_at"`
	Duration      float64    `json:"duration"`
	Resolution    string     `json:"resolution"`
	Direction     string     `json:"direction"`
	Status        ClipStatus `json:"status"`
	DownloadURL   string     `json:"download_url"`
	ThumbnailPath string     `json:"thumbnail_path,omitempty"`
	StreamTitle   string     `json:"stream_title,omitempty"`
	StreamGame    string     `json:"stream_game,omitempty"`
	FileSize      int64      `json:"file_size,omitempty"`
}

// ClipsResponse is the clip library's list envelope.
type ClipsResponse struct {
	Clips []Clip `json:"clips"`
	Total int    `json:"total"`
}
