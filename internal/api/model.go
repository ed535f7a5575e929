package api

type evaluateRequest struct {
	// pointer so an empty password still binds
	Password *string `json:"password" binding:"required"`
}

type generateRequest struct {
	Length *int `json:"length" binding:"required"`
}

type zxcvbnResponse struct {
	Score            int    `json:"score"`
	CrackTimeDisplay string `json:"crack_time_display"`
}

type evaluateResponse struct {
	Score     int             `json:"score"`
	MaxScore  int             `json:"max_score"`
	Band      string          `json:"band"`
	Verdict   string          `json:"verdict"`
	Hints     []string        `json:"hints"`
	Checks    map[string]bool `json:"checks"`
	CrackTime string          `json:"crack_time"`
	Zxcvbn    *zxcvbnResponse `json:"zxcvbn,omitempty"`
}

type generateResponse struct {
	Password string `json:"password"`
	evaluateResponse
}
