package repository

import "car-loan-advisor/domain"

type advisorRecord struct {
	Input    domain.UserInput
	Response domain.AdvisorResponse
}

// AdvisorRepositoryMemory is an in-memory implementation of
// AdvisorRepository.
type AdvisorRepositoryMemory struct {
	records []advisorRecord
}

// NewAdvisorRepositoryMemory creates a new in-memory advisor repository.
func NewAdvisorRepositoryMemory() *AdvisorRepositoryMemory {
	return &AdvisorRepositoryMemory{
		records: []advisorRecord{},
	}
}

// Save stores the advisory exchange in memory.
func (r *AdvisorRepositoryMemory) Save(
	input domain.UserInput,
	response domain.AdvisorResponse,
) error {
	r.records = append(r.records, advisorRecord{Input: input, Response: response})
	return nil
}

// Len reports how many exchanges were recorded.
func (r *AdvisorRepositoryMemory) Len() int {
	return len(r.records)
}
