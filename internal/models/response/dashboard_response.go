package response

// DashboardSummaryResponse represents the admin dashboard summary
type DashboardSummaryResponse struct {
	TotalResidents   int64   `json:"total_residents" example:"120"`
	TotalCollectors  int64   `json:"total_collectors" example:"4"`
	TotalUnpaidBills int64   `json:"total_unpaid_bills" example:"35"`
	TotalPaidBills   int64   `json:"total_paid_bills" example:"310"`
	UnpaidAmount     float64 `json:"unpaid_amount" example:"15230.50"`
	TotalDeposits    float64 `json:"total_deposits" example:"98200.00"`
	TotalWithdrawals float64 `json:"total_withdrawals" example:"40120.00"`
}
