package dto

// --- Job posting requests ---

type CreateJobPostingRequest struct {
	Title        string `json:"title" validate:"required,min=1,max=200"`
	Description  string `json:"description" validate:"omitempty,max=10000"`
	Requirements string `json:"requirements" validate:"omitempty,max=10000"`
}

type UpdateJobPostingRequest struct {
	Title        *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=10000"`
	Requirements *string `json:"requirements,omitempty" validate:"omitempty,max=10000"`
}
