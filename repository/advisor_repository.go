package repository

import "car-loan-advisor/domain"

// AdvisorRepository records advisory calls for diagnostics. Saving is
// best-effort; callers log failures and move on.
type AdvisorRepository interface {
	Save(input domain.UserInput, response domain.AdvisorResponse) error
}
