package ingest

// RawStore 原始门店记录，保留数据源的旧字段名（type/status/ChangOpenDate/contract）
type RawStore struct {
	ID            string        `yaml:"id" json:"id"`
	Name          string        `yaml:"name" json:"name"`
	Brand         string        `yaml:"brand" json:"brand"`
	Type          string        `yaml:"type" json:"type"`
	Location      RawLocation   `yaml:"location" json:"location"`
	Size          string        `yaml:"size,omitempty" json:"size,omitempty"`
	Area          *float64      `yaml:"area,omitempty" json:"area,omitempty"`
	Status        string        `yaml:"status" json:"status"`
	StatusYear    *int          `yaml:"statusYear,omitempty" json:"statusYear,omitempty"`
	BrandCategory string        `yaml:"brandCategory,omitempty" json:"brandCategory,omitempty"`
	OpenDate      string        `yaml:"openDate,omitempty" json:"openDate,omitempty"`
	ChangOpenDate string        `yaml:"ChangOpenDate,omitempty" json:"ChangOpenDate,omitempty"`
	Contract      *RawContract  `yaml:"contract,omitempty" json:"contract,omitempty"`
	Financial     *RawFinancial `yaml:"financial,omitempty" json:"financial,omitempty"`
}

// RawLocation 原始位置
type RawLocation struct {
	City    string  `yaml:"city" json:"city"`
	Country string  `yaml:"country" json:"country"`
	Lat     float64 `yaml:"lat" json:"lat"`
	Lng     float64 `yaml:"lng" json:"lng"`
}

// RawContract 原始合同信息
type RawContract struct {
	StartDate     string `yaml:"startDate" json:"startDate"`
	EndDate       string `yaml:"endDate" json:"endDate"`
	RenewalOption bool   `yaml:"renewalOption" json:"renewalOption"`
}

// RawFinancial 原始财务信息
type RawFinancial struct {
	MonthlyRent     float64          `yaml:"monthlyRent" json:"monthlyRent"`
	Currency        string           `yaml:"currency" json:"currency"`
	MonthlySales    float64          `yaml:"monthlySales" json:"monthlySales"`
	SalesPerSqm     float64          `yaml:"salesPerSqm,omitempty" json:"salesPerSqm,omitempty"`
	Investment      float64          `yaml:"investment" json:"investment"`
	Deposit         float64          `yaml:"deposit,omitempty" json:"deposit,omitempty"`
	RentType        string           `yaml:"rentType,omitempty" json:"rentType,omitempty"`
	EstimatedSales  float64          `yaml:"estimatedSales,omitempty" json:"estimatedSales,omitempty"`
	EstimatedMargin float64          `yaml:"estimatedMargin,omitempty" json:"estimatedMargin,omitempty"`
	YearlySales     []RawYearlySales `yaml:"yearlySales,omitempty" json:"yearlySales,omitempty"`
}

// RawYearlySales 原始年度销售额
type RawYearlySales struct {
	Year   int     `yaml:"year" json:"year"`
	Amount float64 `yaml:"amount" json:"amount"`
}
