package renderapi

// Wire types for the render service's edit/poll endpoints. Field names
// are the service's contract; positions are denormalized percentages and
// times are seconds.

// TextOverlayPayload is one text overlay in an edit request.
type TextOverlayPayload struct {
	Text            string  `json:"text"`
	Font            string  `json:"font"`
	FontSize        float64 `json:"font_size"`
	Color           string  `json:"color"`
	BackgroundColor string  `json:"background_color,omitempty"`
	HasBackground   bool    `json:"has_background"`
	HasOutline      bool    `json:"has_outline"`
	OutlineColor    string  `json:"outline_color"`
	HasShadow       bool    `json:"has_shadow"`
	Alignment       string  `json:"alignment"`
	PositionX       float64 `json:"position_x"`
	PositionY       float64 `json:"position_y"`
	StartTime       float64 `json:"start_time"`
	EndTime         float64 `json:"end_time"`
}

// MemeOverlayPayload is one meme overlay in an edit request.
type MemeOverlayPayload struct {
	URL       string  `json:"url"`
	PositionX float64 `json:"position_x"`
	PositionY float64 `json:"position_y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
}

// ExportSettingsPayload selects platform and encoding options.
type ExportSettingsPayload struct {
	Platform   string `json:"platform"`
	Resolution string `json:"resolution"`
	Quality    string `json:"quality"`
}

// EditRequest is the submission payload for a render job.
type EditRequest struct {
	ClipID         string                `json:"clip_id"`
	TrimStart      float64               `json:"trim_start"`
	TrimEnd        float64               `json:"trim_end"`
	TextOverlays   []TextOverlayPayload  `json:"text_overlays"`
	MemeOverlays   []MemeOverlayPayload  `json:"meme_overlays"`
	ExportSettings ExportSettingsPayload `json:"export_settings"`
}

// EditResponse is the service's acceptance of an edit request.
type EditResponse struct {
	JobID   string `json:"job_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// JobStatusResponse is one poll result for a render job.
type JobStatusResponse struct {
	JobID       string  `json:"job_id"`
	Status      string  `json:"status"`
	Progress    float64 `json:"progress"`
	DownloadURL string  `json:"download_url,omitempty"`
	Error       string  `json:"error,omitempty"`
}
