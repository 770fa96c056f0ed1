package request

type CreateRoomRequest struct {
	Name  string `json:"name" validate:"required,max=250"`
	Price *int   `json:"price" validate:"required,min=0,max=2147483647"`
}

type CreateExperienceRequest struct {
	Name  string  `json:"name" validate:"required,max=250"`
	Price *int    `json:"price" validate:"required,min=0,max=2147483647"`
	Start *string `json:"start" validate:"required,datetime=15:04"`
	End   *string `json:"end" validate:"required,datetime=15:04"`
}
