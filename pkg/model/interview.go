package model

// InterviewQuestion is a single generated question. Six are produced per
// role, one for each question type, and handed straight to the UI; nothing
// is stored server-side.
type InterviewQuestion struct {
	Type     string `json:"type"`
	Question string `json:"question"`
}

// Evaluation is the graded result for one answer.
type Evaluation struct {
	Feedback string `json:"feedback"`
	Score    int    `json:"score"`
}

type GenerateQuestionsReq struct {
	Role string `json:"role"`
}

type EvaluateReq struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
