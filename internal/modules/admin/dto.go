package admin

type BanRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type FeatureRequest struct {
	Featured bool `json:"featured"`
}

// PlatformStats is the admin dashboard summary.
type PlatformStats struct {
	Users        int64   `json:"users"`
	Properties   int64   `json:"properties"`
	Bookings     int64   `json:"bookings"`
	GrossRevenue float64 `json:"gross_revenue"`
}
