package domain

// Receipt is a pending payment request as returned by the parent API.
type Receipt struct {
	ReceiptID     int64  `json:"receiptId"`
	StudentID     int64  `json:"studentId"`
	StudentName   string `json:"studentName"`
	ClassID       int64  `json:"classId"`
	ClassName     string `json:"className"`
	AcademyName   string `json:"academyName"`
	Amount        int64  `json:"amount"`
	ReceiptDate   string `json:"receiptDate"`
	ReceiptStatus string `json:"receiptStatus"`
}

// LoginResult is the payload of a successful login.
type LoginResult struct {
	ParentID    int64  `json:"parentId"`
	AccessToken string `json:"accessToken"`
	ParentName  string `json:"parentName"`
}
