package domain

// CategoryStock is one bar of the stock-by-category chart.
type CategoryStock struct {
	Category   string  `json:"category"`
	TotalStock float64 `json:"total_stock"`
}

// MovementPoint is one day of the movements timeline.
type MovementPoint struct {
	Date    string  `json:"date"`
	Entries float64 `json:"entries"`
	Exits   float64 `json:"exits"`
}

// LowStockAlert flags a product at or below the warning threshold.
type LowStockAlert struct {
	Product string `json:"product"`
	Country string `json:"country"`
	Stock   int    `json:"stock"`
}

// CountrySummary aggregates one country's inventory for the dashboard.
type CountrySummary struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Products   int     `json:"products"`
	Movements  int     `json:"movements"`
	TotalStock float64 `json:"total_stock"`
}

// PurgeResult reports what a country-scoped purge removed.
type PurgeResult struct {
	DeletedProducts  int `json:"deleted_products"`
	DeletedMovements int `json:"deleted_movements"`
}
