package types

import "encoding/json"

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignUpRequest struct {
	Firstname       string `json:"firstname"`
	Lastname        string `json:"lastname"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Role            string `json:"role"`
	Nid             string `json:"nid"`
	FamilyInfo      string `json:"familyinfo"`
	Gender          string `json:"gender"`
	Address         string `json:"address"`
	ProvinceId      int    `json:"province_id"`
	DistrictId      int    `json:"district_id"`
	SectorId        int    `json:"sector_id"`
	CellId          int    `json:"cell_id"`
	VillageId       int    `json:"village_id"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type CreateCommentRequest struct {
	Comment string `json:"comment"`
	PostId  int    `json:"postID"`
}

type PayPenaltyRequest struct {
	PenaltyId int    `json:"penaltyID"`
	Number    string `json:"number"`
}

// SessionResponse is what login and signup return on success.
type SessionResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Envelope is the business-flag wrapper most endpoints reply with: an
// HTTP 2xx carrying a present-and-false Success flag is a domain failure,
// not a success. Not every endpoint sends the flag, so its absence is
// judged by HTTP status alone. Data holds the endpoint-specific payload.
type Envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}
