package domain

// Sentinel values substituted when a stage cannot produce a real value.
// They are stable strings, distinct from absent/null fields.
const (
	UnknownSupplier = "Unknown Supplier"
	UnknownLocation = "Unknown Location"
	RegionGlobal    = "Global"
	SummaryFailed   = "LLM summarization failed."
)

// RiskLevel buckets a risk score into the dashboard's three bands.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Coordinates is a resolved geographic point.
type Coordinates struct {
	Lat float64
	Lng float64
}

// SupplierRecord is the central enriched entity, serialized as one element
// of suppliers.json. Optional pointer fields stay null until a future
// scoring model populates them.
type SupplierRecord struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Region           string    `json:"region"`
	Location         string    `json:"location"`
	RiskScore        float64   `json:"riskScore"`
	RiskLevel        RiskLevel `json:"riskLevel"`
	FinancialScore   *float64  `json:"financialScore"`
	GeopoliticalRisk *float64  `json:"geopoliticalRisk"`
	ESGCompliance    *float64  `json:"esgCompliance"`
	RecentNews       string    `json:"recentNews"`
	Action           *string   `json:"action"`
	Category         string    `json:"category"`
	LastUpdated      string    `json:"lastUpdated"`
	Trend            string    `json:"trend"`
	Lat              *float64  `json:"lat"`
	Lng              *float64  `json:"lng"`
	PredictedRisk    *float64  `json:"predictedRisk"`
	LLMSummary       *string   `json:"llmSummary"`
}

// Alert is a 1:1 projection of a SupplierRecord for the alert feed.
type Alert struct {
	ID        int       `json:"id"`
	Supplier  string    `json:"supplier"`
	Type      string    `json:"type"`
	Severity  RiskLevel `json:"severity"`
	Message   string    `json:"message"`
	Timestamp string    `json:"timestamp"`
	Impact    string    `json:"impact"`
}

// NewsItem is a 1:1 projection of a SupplierRecord for the news feed.
type NewsItem struct {
	ID                int      `json:"id"`
	Headline          string   `json:"headline"`
	Source            string   `json:"source"`
	Timestamp         string   `json:"timestamp"`
	RelevantSuppliers []string `json:"relevantSuppliers"`
	Impact            string   `json:"impact"`
	Date              string   `json:"date"`
}

// Snapshot groups the three derived collections written at the end of a run.
type Snapshot struct {
	Suppliers []SupplierRecord
	Alerts    []Alert
	News      []NewsItem
}
