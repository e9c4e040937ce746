package types

import "time"

// User is the profile record the server returns on sign in and sign up.
// Address fields reference the national hierarchy by id.
type User struct {
	Id         int    `json:"id"`
	Firstname  string `json:"firstname"`
	Lastname   string `json:"lastname"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Nid        string `json:"nid"`
	Gender     string `json:"gender"`
	FamilyInfo string `json:"familyinfo"`
	Image      string `json:"image,omitempty"`
	ProvinceId int    `json:"province_id,omitempty"`
	DistrictId int    `json:"district_id,omitempty"`
	SectorId   int    `json:"sector_id,omitempty"`
	CellId     int    `json:"cell_id,omitempty"`
	VillageId  int    `json:"village_id,omitempty"`
}

func (u *User) FullName() string {
	return u.Firstname + " " + u.Lastname
}

// ClientAuth is the session persisted in auth.json: the bearer token and
// the profile it was issued for. The token and user are written together
// and cleared together.
type ClientAuth struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type Post struct {
	Id          int           `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	CreatedAt   time.Time     `json:"createdAt"`
	Attendances []*Attendance `json:"attendances"`
	Penalties   []*Penalty    `json:"penalties"`
	Comments    []*Comment    `json:"comments"`
}

type Attendance struct {
	Id        int       `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type Comment struct {
	Id        int       `json:"id"`
	Comment   string    `json:"comment"`
	User      *User     `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

// Penalty statuses as the server spells them.
const (
	PenaltyStatusUnpaid = "un paid"
	PenaltyStatusPaid   = "paid"
)

// Penalty is a fine tied to a missed post. "penarity" is the server's
// field name for the amount.
type Penalty struct {
	Id        int       `json:"id"`
	Penarity  string    `json:"penarity"`
	Status    string    `json:"status"`
	Post      *Post     `json:"post,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p *Penalty) IsPaid() bool {
	return p.Status == PenaltyStatusPaid
}

type Notification struct {
	Id        int       `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// Address hierarchy: province > district > sector > cell > village.
// The server returns the whole tree in one call.
type Province struct {
	Id        int         `json:"id"`
	Name      string      `json:"name"`
	Districts []*District `json:"districts"`
}

type District struct {
	Id      int       `json:"id"`
	Name    string    `json:"name"`
	Sectors []*Sector `json:"sectors"`
}

type Sector struct {
	Id    int     `json:"id"`
	Name  string  `json:"name"`
	Cells []*Cell `json:"cells"`
}

type Cell struct {
	Id       int        `json:"id"`
	Name     string     `json:"name"`
	Villages []*Village `json:"villages"`
}

type Village struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}
