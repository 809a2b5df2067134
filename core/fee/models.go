package fee

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/trezcool/feeflow/core"
)

type (
	Category  string
	Frequency string
)

const (
	CategoryTuition    Category = "Tuition"
	CategoryBooks      Category = "Books"
	CategoryActivities Category = "Activities"
	CategoryEquipment  Category = "Equipment"
	CategoryOther      Category = "Other"

	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyAnnually  Frequency = "annually"
)

var (
	Categories  = []Category{CategoryTuition, CategoryBooks, CategoryActivities, CategoryEquipment, CategoryOther}
	Frequencies = []Frequency{FrequencyMonthly, FrequencyQuarterly, FrequencyAnnually}
)

type Fee struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Category  Category        `json:"category"`
	DueDate   core.Date       `json:"due_date"`
	Recurring bool            `json:"recurring"`
	Frequency Frequency       `json:"frequency,omitempty"` // only set when Recurring
}

// NewFee contains information needed to create a new Fee.
type NewFee struct {
	Name      string          `json:"name" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"gte=0"`
	Category  Category        `json:"category" validate:"required,oneof=Tuition Books Activities Equipment Other"`
	DueDate   core.Date       `json:"due_date" validate:"required"`
	Recurring bool            `json:"recurring"`
	Frequency Frequency       `json:"frequency" validate:"required_if=Recurring true,omitempty,oneof=monthly quarterly annually"`
}

func (nf *NewFee) Validate(validate *validator.Validate) error {
	nf.Name = core.CleanString(nf.Name)
	if !nf.Recurring {
		nf.Frequency = ""
	}
	return validate.Struct(nf)
}

// UpdateFee defines what information may be provided to modify an existing Fee.
// Nil fields are left untouched.
type UpdateFee struct {
	Name      *string          `json:"name"`
	Amount    *decimal.Decimal `json:"amount"`
	Category  *Category        `json:"category"`
	DueDate   *core.Date       `json:"due_date"`
	Recurring *bool            `json:"recurring"`
	Frequency *Frequency       `json:"frequency"`
}

// Validate cleans the provided fields and validates them merged over origFee.
func (uf *UpdateFee) Validate(validate *validator.Validate, origFee Fee) error {
	if uf.Name != nil {
		name := core.CleanString(*uf.Name)
		uf.Name = &name
	}

	merged := origFee
	uf.Apply(&merged)
	return validate.Struct(NewFee{
		Name:      merged.Name,
		Amount:    merged.Amount,
		Category:  merged.Category,
		DueDate:   merged.DueDate,
		Recurring: merged.Recurring,
		Frequency: merged.Frequency,
	})
}

// Apply merges the provided fields into f.
// A fee that is not recurring carries no frequency.
func (uf UpdateFee) Apply(f *Fee) {
	if uf.Name != nil {
		f.Name = *uf.Name
	}
	if uf.Amount != nil {
		f.Amount = *uf.Amount
	}
	if uf.Category != nil {
		f.Category = *uf.Category
	}
	if uf.DueDate != nil {
		f.DueDate = *uf.DueDate
	}
	if uf.Recurring != nil {
		f.Recurring = *uf.Recurring
	}
	if uf.Frequency != nil {
		f.Frequency = *uf.Frequency
	}
	if !f.Recurring {
		f.Frequency = ""
	}
}

type QueryFilter struct {
	Search   string   `query:"search"`
	Category Category `query:"category"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Category == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

// Match does a case-insensitive search on Name or Category, AND-ed with the category.
func (qf QueryFilter) Match(f Fee) bool {
	if qf.Category != "" && f.Category != qf.Category {
		return false
	}
	return core.ContainsFold(qf.Search, f.Name, string(f.Category))
}
