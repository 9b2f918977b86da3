package screens

import (
	"context"
	"io"
	"strings"

	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/api"
	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/board"
	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/session"
)

// StatusView shows inline status and guard messages on an editor screen.
type StatusView interface {
	SetMessage(msg string, ok bool)
	SetGuard(msg string)
}

// ProfileForm mirrors the candidate profile's editable fields.
type ProfileForm struct {
	FirstName  string
	LastName   string
	City       string
	Skills     string
	JobTarget  string
	Motivation string
	AvatarPath string
}

func (f ProfileForm) missingMandatory() bool {
	return strings.TrimSpace(f.FirstName) == "" ||
		strings.TrimSpace(f.LastName) == "" ||
		strings.TrimSpace(f.City) == ""
}

// ProfileEditor loads, edits and saves the current user's candidate
// profile, including the avatar upload.
type ProfileEditor struct {
	client *api.Client
	store  *session.Store
	auth   *Auth
	status StatusView

	profileID int64
	Form      ProfileForm
}

// NewProfileEditor wires the editor over an authenticated client.
func NewProfileEditor(client *api.Client, store *session.Store, auth *Auth, status StatusView) *ProfileEditor {
	return &ProfileEditor{client: client, store: store, auth: auth, status: status}
}

// ProfileID returns the loaded record's id, 0 before Load.
func (e *ProfileEditor) ProfileID() int64 { return e.profileID }

// Load locates the current user's profile and fills the form. When no
// profile exists yet one is created with placeholder values derived from
// the account email.
func (e *ProfileEditor) Load(ctx context.Context) error {
	if e.store.Token() == "" {
		e.status.SetGuard("not logged in")
		return &ValidationError{Msg: "not logged in"}
	}
	e.status.SetGuard("loading profile…")

	me, err := e.client.Me(ctx)
	if err != nil {
		e.status.SetMessage(err.Error(), false)
		return err
	}

	mine, err := e.auth.findOwnedProfile(ctx, me.ID)
	if err != nil {
		e.status.SetMessage(err.Error(), false)
		return err
	}
	if mine == nil {
		guess := strings.SplitN(me.Email, "@", 2)[0]
		if guess == "" {
			guess = "User"
		}
		created, err := e.client.CreateProfile(ctx, api.ProfileCreate{
			FirstName: guess,
			LastName:  "Profile",
			City:      "—",
		})
		if err != nil {
			e.status.SetMessage(err.Error(), false)
			return err
		}
		mine = &created
	}

	e.profileID = mine.ID
	e.fill(*mine)
	return nil
}

func (e *ProfileEditor) fill(p board.CandidateProfile) {
	e.Form = ProfileForm{
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		City:       p.City,
		Skills:     deref(p.Skills),
		JobTarget:  deref(p.JobTarget),
		Motivation: deref(p.Motivation),
		AvatarPath: board.NormalizeUploadPath(deref(p.AvatarURL)),
	}
	if e.Form.AvatarPath != "" {
		_ = e.store.SetAvatarPath(e.Form.AvatarPath)
	}
	if e.Form.missingMandatory() {
		e.status.SetGuard("please fill in first name, last name and city")
	} else {
		e.status.SetGuard("")
	}
}

// Save validates the required fields, then persists the whole form.
// Blank required inputs block the save with an inline message; nothing
// is sent to the API in that case.
func (e *ProfileEditor) Save(ctx context.Context) error {
	if e.profileID == 0 {
		return &ValidationError{Msg: "no profile loaded"}
	}
	if e.Form.missingMandatory() {
		e.status.SetMessage("first name, last name and city are required", false)
		return &ValidationError{Msg: "first name, last name and city are required"}
	}

	payload := api.ProfileUpdate{
		FirstName:  &e.Form.FirstName,
		LastName:   &e.Form.LastName,
		City:       &e.Form.City,
		Skills:     &e.Form.Skills,
		JobTarget:  &e.Form.JobTarget,
		Motivation: &e.Form.Motivation,
	}
	if e.Form.AvatarPath != "" {
		payload.AvatarURL = &e.Form.AvatarPath
	}
	updated, err := e.client.UpdateProfile(ctx, e.profileID, payload)
	if err != nil {
		e.status.SetMessage(err.Error(), false)
		return err
	}
	e.fill(updated)
	e.status.SetMessage("profile saved", true)
	return nil
}

// UploadAvatar posts the image, normalizes the returned URL to its
// path-only form and immediately persists it onto the profile record and
// the cached session avatar.
func (e *ProfileEditor) UploadAvatar(ctx context.Context, filename string, r io.Reader) error {
	if e.profileID == 0 {
		return &ValidationError{Msg: "no profile loaded"}
	}
	raw, err := e.client.UploadImage(ctx, filename, r)
	if err != nil {
		e.status.SetMessage(err.Error(), false)
		return err
	}
	path := board.NormalizeUploadPath(raw)

	updated, err := e.client.UpdateProfile(ctx, e.profileID, api.ProfileUpdate{AvatarURL: &path})
	if err != nil {
		e.status.SetMessage(err.Error(), false)
		return err
	}
	if err := e.store.SetAvatarPath(path); err != nil {
		return err
	}
	e.fill(updated)
	e.status.SetMessage("avatar uploaded and saved", true)
	return nil
}

// CompanyForm mirrors the company record's editable fields.
type CompanyForm struct {
	Name        string
	HQCity      string
	Sector      string
	Description string
	Website     string
	Headcount   string
	BannerPath  string
}

// CompanyEditor loads, edits and saves the recruiter's company record,
// including the banner upload.
type CompanyEditor struct {
	client *api.Client
	store  *session.Store
	status StatusView

	companyID int64
	Form      CompanyForm
}

// NewCompanyEditor wires the editor over an authenticated client.
func NewCompanyEditor(client *api.Client, store *session.Store, status StatusView) *CompanyEditor {
	return &CompanyEditor{client: client, store: store, status: status}
}

// CompanyID returns the loaded record's id, 0 before Load or when the
// recruiter has no company yet.
func (e *CompanyEditor) CompanyID() int64 { return e.companyID }

// Load takes the recruiter's company (first directory entry) and fills
// the form. With no company yet, the form stays blank and Save creates
// one.
func (e *CompanyEditor) Load(ctx context.Context) error {
	if e.store.Token() == "" {
		e.status.SetGuard("not logged in")
		return &ValidationError{Msg: "not logged in"}
	}
	list, err := e.client.ListCompanies(ctx, 1, 1)
	if err != nil {
		e.status.SetMessage(err.Error(), false)
		return err
	}
	if len(list.Items) == 0 {
		e.status.SetGuard("no company yet — fill in the name and save to create one")
		return nil
	}
	e.fill(list.Items[0])
	return nil
}

func (e *CompanyEditor) fill(c board.Company) {
	e.companyID = c.ID
	e.Form = CompanyForm{
		Name:        c.Name,
		HQCity:      deref(c.HQCity),
		Sector:      deref(c.Sector),
		Description: deref(c.Description),
		Website:     deref(c.Website),
		Headcount:   deref(c.Headcount),
		BannerPath:  deref(c.BannerURL),
	}
	e.status.SetGuard("")
}

// Save validates the name, then creates the company when none is loaded
// or applies a full update otherwise.
func (e *CompanyEditor) Save(ctx context.Context) error {
	name := strings.TrimSpace(e.Form.Name)
	if name == "" {
		e.status.SetMessage("company name is required", false)
		return &ValidationError{Msg: "company name is required"}
	}

	if e.companyID == 0 {
		payload := api.CompanyCreate{Name: name}
		if web := strings.TrimSpace(e.Form.Website); web != "" {
			payload.Website = &web
		}
		if banner := strings.TrimSpace(e.Form.BannerPath); banner != "" {
			payload.BannerURL = &banner
		}
		created, err := e.client.CreateCompany(ctx, payload)
		if err != nil {
			e.status.SetMessage(err.Error(), false)
			return err
		}
		e.companyID = created.ID
		e.status.SetMessage("company created — you can now fill in the other fields", true)
		return nil
	}

	payload := api.CompanyUpdate{
		Name:        &name,
		HQCity:      optional(e.Form.HQCity),
		Sector:      optional(e.Form.Sector),
		Description: optional(e.Form.Description),
		Website:     optional(e.Form.Website),
		Headcount:   optional(e.Form.Headcount),
		BannerURL:   optional(e.Form.BannerPath),
	}
	updated, err := e.client.UpdateCompany(ctx, e.companyID, payload)
	if err != nil {
		e.status.SetMessage(err.Error(), false)
		return err
	}
	e.fill(updated)
	e.status.SetMessage("company saved", true)
	return nil
}

// UploadBanner posts the image, normalizes the returned URL and
// immediately persists it onto the company record when one is loaded.
func (e *CompanyEditor) UploadBanner(ctx context.Context, filename string, r io.Reader) error {
	raw, err := e.client.UploadImage(ctx, filename, r)
	if err != nil {
		e.status.SetMessage(err.Error(), false)
		return err
	}
	path := board.NormalizeUploadPath(raw)
	e.Form.BannerPath = path

	if e.companyID != 0 {
		if _, err := e.client.UpdateCompany(ctx, e.companyID, api.CompanyUpdate{BannerURL: &path}); err != nil {
			e.status.SetMessage(err.Error(), false)
			return err
		}
	}
	e.status.SetMessage("banner uploaded and saved", true)
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// optional maps "" to nil so blank form fields clear nothing.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
