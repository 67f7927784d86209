package dto

// AnnouncementDTO carries the generated multi-platform announcement
// strings. All fields are plain text destined for the operator's
// clipboard.
type AnnouncementDTO struct {
	VideoTitle       string `json:"video_title"`
	Facebook         string `json:"facebook"`
	Instagram        string `json:"instagram"`
	FacebookResults  string `json:"facebook_results"`
	InstagramResults string `json:"instagram_results"`
}
