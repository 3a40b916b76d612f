package models

// ChartPoint is one day's bucket in the admin chart series
type ChartPoint struct {
	Date    string  `bson:"date" json:"date"`
	Orders  int64   `bson:"orders" json:"orders"`
	Revenue float64 `bson:"revenue" json:"revenue"`
}

// AdminStats is the aggregate snapshot served to the admin dashboard
type AdminStats struct {
	TotalUsers   int64        `json:"totalUsers"`
	TotalPlants  int64        `json:"totalPlants"`
	TotalOrders  int64        `json:"totalOrders"`
	TotalRevenue float64      `json:"totalRevenue"`
	ChartData    []ChartPoint `json:"chartData"`
}
