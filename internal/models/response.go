package models

// Response represents a row in the iceberg_responses table: one survey
// submission against an iceberg, with eight free-text answers.
type Response struct {
	ID        int    `json:"id" db:"id"`
	UserID    int    `json:"userid" db:"userid"`
	IcebergID int    `json:"icebergid" db:"icebergid"`
	Q1        string `json:"q1" db:"q1"`
	Q2        string `json:"q2" db:"q2"`
	Q3        string `json:"q3" db:"q3"`
	Q4        string `json:"q4" db:"q4"`
	Q5        string `json:"q5" db:"q5"`
	Q6        string `json:"q6" db:"q6"`
	Q7        string `json:"q7" db:"q7"`
	Q8        string `json:"q8" db:"q8"`
}

// NewResponse carries the fields a client supplies when creating a response.
type NewResponse struct {
	UserID    int
	IcebergID int
	Q1        string
	Q2        string
	Q3        string
	Q4        string
	Q5        string
	Q6        string
	Q7        string
	Q8        string
}

// ResponseUpdate carries the updatable response fields; nil means "leave unchanged".
type ResponseUpdate struct {
	IcebergID *int
	Q1        *string
	Q2        *string
	Q3        *string
	Q4        *string
	Q5        *string
	Q6        *string
	Q7        *string
	Q8        *string
}
