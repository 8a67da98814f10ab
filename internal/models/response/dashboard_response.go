package response

// CommunitySummaryResponse aggregates community-wide counts for the dashboard
type CommunitySummaryResponse struct {
	TotalResidents     int64   `json:"total_residents"`
	TotalHouses        int64   `json:"total_houses"`
	TotalVendors       int64   `json:"total_vendors"`
	TotalVehiclePasses int64   `json:"total_vehicle_passes"`
	TotalAlerts        int64   `json:"total_alerts"`
	TotalComplaints    int64   `json:"total_complaints"`
	UnpaidDues         int64   `json:"unpaid_dues"`
	OutstandingAmount  float64 `json:"outstanding_amount"`
}
