package board

import "math"

// Role is the account role returned by the auth API.
type Role string

const (
	RoleUnknown   Role = ""
	RoleUser      Role = "user"
	RoleRecruiter Role = "recruiter"
)

// ParseRole maps an API role string to a Role, unknown values included.
func ParseRole(s string) Role {
	switch s {
	case "user":
		return RoleUser
	case "recruiter":
		return RoleRecruiter
	}
	return RoleUnknown
}

// User is the record returned by GET /auth/me.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Company is a recruiter-owned company record. All fields besides id and
// name are optional on the API side.
type Company struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	HQCity      *string `json:"hq_city,omitempty"`
	Sector      *string `json:"sector,omitempty"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty"`
	Headcount   *string `json:"headcount,omitempty"`
	BannerURL   *string `json:"banner_url,omitempty"`
}

// CandidateProfile is a candidate's public profile. One profile per user
// account; the owner is located by user_id since there is no
// lookup-by-owner endpoint.
type CandidateProfile struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"user_id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	City            string  `json:"city"`
	Skills          *string `json:"skills,omitempty"`
	JobTarget       *string `json:"job_target,omitempty"`
	Motivation      *string `json:"motivation,omitempty"`
	AvatarURL       *string `json:"avatar_url,omitempty"`
	Diplomas        *string `json:"diplomas,omitempty"`
	Languages       *string `json:"languages,omitempty"`
	ExperienceYears *int    `json:"experience_years,omitempty"`
}

// JobPosting is a read-only job offer.
type JobPosting struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	CompanyName      string  `json:"company_name"`
	CompanyBannerURL *string `json:"company_banner_url,omitempty"`
	ContractType     *string `json:"contract_type,omitempty"`
	Location         *string `json:"location,omitempty"`
	WorkMode         *string `json:"work_mode,omitempty"`
	ShortDesc        *string `json:"short_desc,omitempty"`
	FullDesc         *string `json:"full_desc,omitempty"`
}

// Page is one slice of a paginated listing. Total is nil when the server
// did not report a count; callers then infer "more pages" from whether
// the slice is full.
type Page[T any] struct {
	Items    []T  `json:"items"`
	PageNum  int  `json:"page"`
	PageSize int  `json:"page_size"`
	Total    *int `json:"total"`
}

// TotalPages computes the page count when the server reported a total,
// never below 1. Returns 0 when no total is known.
func (p Page[T]) TotalPages(pageSize int) int {
	if p.Total == nil || pageSize <= 0 {
		return 0
	}
	n := int(math.Ceil(float64(*p.Total) / float64(pageSize)))
	if n < 1 {
		n = 1
	}
	return n
}

// FacetOptions are the selectable filter values for the candidate search,
// served by GET /api/candidate_filters.
type FacetOptions struct {
	Skills      []string `json:"skills"`
	Degrees     []string `json:"degrees"`
	Languages   []string `json:"languages"`
	Experiences []int    `json:"experiences"`
}
