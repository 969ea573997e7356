package insight

// GetInsightsRequest selects the meeting to summarize and, optionally, whose question set to use
type GetInsightsRequest struct {
	MeetingID string `param:"id"`
	UserID    string `query:"userId"`
}
