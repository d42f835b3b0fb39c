package dto

// ResumeUpload is the body of POST /resume; the text replaces the stored
// resume wholesale.
type ResumeUpload struct {
	ResumeText string `json:"resumeText"`
}

type ResumeResponse struct {
	ResumeText string `json:"resumeText"`
}

type TrackApplicationRequest struct {
	JobID    int    `json:"jobId"`
	Status   string `json:"status"`
	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`
}

type ChatRequest struct {
	Query string `json:"query"`
}
