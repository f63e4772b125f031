package models

import "time"

// Payment is one recorded amount against a student's total fee. Payments are
// embedded on the student document and never referenced on their own.
type Payment struct {
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
	Note   string    `json:"note,omitempty"`
}

// Student represents a billable enrollee tracked by class and fee history.
type Student struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Class     string    `json:"class"`
	Contact   string    `json:"contact"`
	TotalFee  float64   `json:"total_fee"`
	Payments  []Payment `json:"payments"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Paid returns the sum of all recorded payments.
func (s *Student) Paid() float64 {
	var total float64
	for _, p := range s.Payments {
		total += p.Amount
	}
	return total
}

// Unpaid returns the outstanding balance. Overpayment yields a negative
// value; no clamping is applied.
func (s *Student) Unpaid() float64 {
	return s.TotalFee - s.Paid()
}
