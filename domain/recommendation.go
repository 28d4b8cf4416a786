package domain

type Vehicle struct {
	Type  string  `json:"type"`
	Year  int     `json:"year"`
	Model string  `json:"model"`
	Cost  float64 `json:"cost"`
}

type UserLocation struct {
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	CityRegion string   `json:"city_region"`
}

type UserProfile struct {
	CreditScoreTier           string  `json:"creditScoreTier,omitempty"`
	AnnualIncome              float64 `json:"annualIncome,omitempty"`
	AnnualIncomeRange         string  `json:"annualIncomeRange,omitempty"`
	DesiredDownPaymentPercent float64 `json:"desiredDownPaymentPercent,omitempty"`
	DriversLicenseAgeYears    int     `json:"driversLicenseAgeYears,omitempty"`
	DesiredLoanTermYears      int     `json:"desiredLoanTermYears,omitempty"`
}

type UserPreferences struct {
	// "lowest_rate", "lowest_monthly_payment", "shortest_term" o "none"
	Prioritize string `json:"prioritize,omitempty"`
}

type UserContext struct {
	Country  string       `json:"country"`
	Location UserLocation `json:"location"`
	Profile  *UserProfile `json:"profile,omitempty"`
}

// UserInput is the full advisory request: the vehicle being financed
// plus where and by whom.
type UserInput struct {
	Vehicle     Vehicle          `json:"vehicle"`
	UserContext UserContext      `json:"userContext"`
	Preferences *UserPreferences `json:"preferences,omitempty"`
}

type LoanDetails struct {
	LoanAmount              float64 `json:"loanAmount"`
	Currency                string  `json:"currency"`
	InterestRate            float64 `json:"interestRate"` // % anual
	LoanTerm                int     `json:"loanTerm"`     // años
	EstimatedMonthlyPayment float64 `json:"estimatedMonthlyPayment"`
}

type VehicleInfo struct {
	FuelEfficiency string `json:"fuelEfficiency"`
}

type InsuranceRecommendation struct {
	ProviderName           string  `json:"providerName"`
	PolicyType             string  `json:"policyType"`
	EstimatedAnnualPremium float64 `json:"estimatedAnnualPremium"`
	Currency               string  `json:"currency"`
	Rationale              string  `json:"rationale"`
}

// Recommendation is one ranked loan offer from the advisor.
type Recommendation struct {
	Rank                    int                      `json:"rank"`
	BankName                string                   `json:"bankName"`
	ProductName             string                   `json:"productName"`
	LoanDetails             LoanDetails              `json:"loanDetails"`
	VehicleInfo             VehicleInfo              `json:"vehicleInfo"`
	RequiredDocuments       []string                 `json:"requiredDocuments"`
	Rationale               string                   `json:"rationale"`
	ApplyLink               string                   `json:"applyLink,omitempty"`
	OwnershipBreakdown      *RawOwnershipBreakdown   `json:"ownershipBreakdown,omitempty"`
	InsuranceRecommendation *InsuranceRecommendation `json:"insuranceRecommendation,omitempty"`
}

// AdvisorResponse is the structured result of one advisory call:
// an ordered set of recommendations plus free-text advisory messages.
type AdvisorResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
	Messages        []string         `json:"messages"`
}
