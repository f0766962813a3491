package request

// SubmitScoreRequest is the request body for submitting a score.
//
// The field set is the explicit allow-list for this endpoint: decoding is
// done with DisallowUnknownFields, so anything outside it is rejected.
// Score is a pointer so that an absent score can be told apart from a
// legitimate zero.
type SubmitScoreRequest struct {
	Name       string `json:"name"`
	Score      *int   `json:"score"`
	Difficulty string `json:"difficulty"`
	ScoreToken string `json:"scoreToken"`
	Token      string `json:"token"`
}

// CheckInRequest is the request body for a session check-in
type CheckInRequest struct {
	Token string `json:"token"`
}

// ContactRequest is the request body for the contact form
type ContactRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}
