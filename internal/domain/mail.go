package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type CreateOperatorMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type PlanningMailData struct {
	Date      string         `json:"date"`
	Absentees []string       `json:"absentees"`
	Zones     []PlanningZone `json:"zones"`
	SplitPool []string       `json:"splitPool"`
}
