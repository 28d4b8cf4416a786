package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"google.golang.org/genai"

	"car-loan-advisor/domain"
	"car-loan-advisor/repository"
)

var (
	// ErrNoAPIKey: sin credencial no hay nada que hacer.
	ErrNoAPIKey = errors.New("GEMINI_API_KEY no está configurada")

	// ErrMalformedResponse: the model's output could not be parsed as
	// the expected JSON shape, even after repair.
	ErrMalformedResponse = errors.New("la respuesta del modelo no tiene el formato esperado")
)

const advisorCacheTTL = 1 * time.Hour

const advisorSystemPrompt = `Goal: Act as a Smart Car Loan Recommendation Engine to analyze user inputs and recommend suitable car loans, including ownership cost breakdown and insurance suggestions. Use plausible local bank/insurer names for the user's country.

User Input will be provided as a JSON object with 'vehicle', 'userContext' (country, location, profile), and optional 'preferences'.

Your Recommendation Logic:
1. Geo-Filter: Use 'userContext.country' and 'userContext.location.city_region' for relevant local banks/products.
2. Eligibility: Use 'profile.annualIncome' (number) if provided, else 'profile.annualIncomeRange' (tier), considering 'userContext.country'.
3. Scoring & Ranking: Consider 'profile.desiredLoanTermYears'. Choose closest available term if exact match is not possible, note in rationale.
4. Result Generation: Provide 3-6 top loan recommendations, mixing traditional banks and credit unions where plausible for the region, ranked by overall suitability. For each loan fill 'loanDetails', 'vehicleInfo', 'requiredDocuments', 'rationale', 'ownershipBreakdown' and 'insuranceRecommendation'.
   Ownership breakdown rules:
   - 'totalLoanPrincipal' equals 'loanDetails.loanAmount'.
   - 'totalEstimatedInterestPaid' is the sum of 'interestPaid' from 'yearlyBreakdown', rounded to 2 decimals.
   - 'totalEstimatedLoanCost' = 'totalLoanPrincipal' + 'totalEstimatedInterestPaid'.
   - 'totalOutOfPocketForVehicle' = 'estimatedDownPaymentAmount' + 'totalEstimatedLoanCost'.
   - 'yearlyBreakdown' has one object per year of 'loanTerm': { "year": number, "principalPaid": number, "interestPaid": number, "remainingBalance": number }. Perform standard loan amortization; sum of 'principalPaid' must match 'totalLoanPrincipal' within rounding; 'remainingBalance' is 0 at the end of the final year.
   - 'recurringFeeDetails' lists estimated annual running costs (licensing, registration, basic maintenance) excluding loan payments and primary insurance, with 'estimatedAnnualRecurringFeesTotal' as their sum.
5. Overall 'messages': helpful info; remind the user about recurring fees; state any limitation found.

Output (JSON format ONLY - NO markdown fences):
{ "recommendations": [ { "rank": 1, "bankName": "string", "productName": "string", "loanDetails": {...}, "vehicleInfo": {...}, "requiredDocuments": ["string"], "rationale": "string", "applyLink": "string", "ownershipBreakdown": {...}, "insuranceRecommendation": {...} } ], "messages": ["string"] }

If crucial info is missing (e.g. cost, location), state it in 'messages'. Respond with only the JSON object.`

// AdvisorService calls the generative model to produce loan
// recommendations for a user input. Responses are cached by request
// hash and recorded for diagnostics.
type AdvisorService struct {
	apiKey string
	model  string
	cache  repository.CacheRepository
	repo   repository.AdvisorRepository
}

func NewAdvisorService(
	model string,
	cache repository.CacheRepository,
	repo repository.AdvisorRepository,
) *AdvisorService {
	return &AdvisorService{
		apiKey: os.Getenv("GEMINI_API_KEY"),
		model:  model,
		cache:  cache,
		repo:   repo,
	}
}

// Enabled reports whether a credential is available.
func (s *AdvisorService) Enabled() bool {
	return s.apiKey != ""
}

// FetchRecommendations runs one advisory request against the model.
// The returned response is already shape-validated; a cached response
// is served when the same input was seen before.
func (s *AdvisorService) FetchRecommendations(
	ctx context.Context,
	input domain.UserInput,
) (domain.AdvisorResponse, error) {

	if s.apiKey == "" {
		return domain.AdvisorResponse{}, ErrNoAPIKey
	}

	enrichIncomeTier(&input)

	payload, err := json.Marshal(input)
	if err != nil {
		return domain.AdvisorResponse{}, fmt.Errorf("serializando la solicitud: %w", err)
	}

	cacheKey := advisorCacheKey(payload)
	if cached, ok := s.cache.Get(cacheKey); ok {
		var resp domain.AdvisorResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return resp, nil
		}
		log.Printf("Warning: discarding unreadable cached advisor response for %s", cacheKey)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return domain.AdvisorResponse{}, fmt.Errorf("creando el cliente GenAI: %w", err)
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: advisorSystemPrompt}},
		},
	}

	prompt := string(payload) + "\nYou must respond with only the JSON object."
	result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), config)
	if err != nil {
		return domain.AdvisorResponse{}, fmt.Errorf("llamada al modelo falló: %w", err)
	}

	resp, err := DecodeAdvisorResponse(result.Text())
	if err != nil {
		return domain.AdvisorResponse{}, err
	}

	if blob, err := json.Marshal(resp); err == nil {
		if err := s.cache.Set(cacheKey, string(blob), advisorCacheTTL); err != nil {
			log.Printf("Warning: failed to cache advisor response: %v", err)
		}
	}

	// Guardar el intercambio (no crítico si falla)
	if s.repo != nil {
		if err := s.repo.Save(input, resp); err != nil {
			log.Printf("Warning: failed to save advisor exchange: %v", err)
		}
	}

	return resp, nil
}

// DecodeAdvisorResponse parses the model's text output into the
// structured response, tolerating markdown fences, BOMs and the
// near-JSON the model occasionally emits.
func DecodeAdvisorResponse(text string) (domain.AdvisorResponse, error) {
	text = strings.TrimSpace(strings.TrimPrefix(text, "\ufeff"))
	text = stripMarkdownFences(text)

	var resp domain.AdvisorResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		repaired, repErr := jsonrepair.RepairJSON(text)
		if repErr != nil {
			return domain.AdvisorResponse{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		if err := json.Unmarshal([]byte(repaired), &resp); err != nil {
			return domain.AdvisorResponse{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	}

	if resp.Recommendations == nil && resp.Messages == nil {
		return domain.AdvisorResponse{}, ErrMalformedResponse
	}
	if len(resp.Recommendations) > MaxRecommendations {
		log.Printf("Warning: model returned %d recommendations, keeping %d",
			len(resp.Recommendations), MaxRecommendations)
		resp.Recommendations = resp.Recommendations[:MaxRecommendations]
	}
	return resp, nil
}

func stripMarkdownFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		text = text[idx+1:] // descarta el identificador de lenguaje
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// enrichIncomeTier fills the derived tier when only a numeric income
// was given. Works on a copy so the caller's profile is untouched.
func enrichIncomeTier(input *domain.UserInput) {
	profile := input.UserContext.Profile
	if profile == nil || profile.AnnualIncome <= 0 || profile.AnnualIncomeRange != "" {
		return
	}
	enriched := *profile
	enriched.AnnualIncomeRange = DeriveIncomeTier(profile.AnnualIncome, input.UserContext.Country)
	input.UserContext.Profile = &enriched
}

func advisorCacheKey(payload []byte) string {
	sum := sha256.Sum256(payload)
	return "advisor:" + hex.EncodeToString(sum[:])
}
