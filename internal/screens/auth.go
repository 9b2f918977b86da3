package screens

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cheggaaa/pb/v3"

	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/api"
	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/board"
	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/session"
)

// HeaderView adapts the header to login state: the login control becomes
// an avatar with the account menu when a session exists.
type HeaderView interface {
	SetLoggedIn(mode Mode, loggedIn bool)
	SetAvatar(path string)
	Reset()
}

// ScreenNavigator moves between screens. Navigate receives a screen
// identity such as "profile" or "company_profile".
type ScreenNavigator interface {
	Navigate(screen string)
}

// ValidationError is a client-side required-field failure, reported
// inline before any network call is issued.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// SignupForm is the signup modal's input. Which fields are required
// depends on the active side.
type SignupForm struct {
	Email          string
	Password       string
	FirstName      string
	LastName       string
	City           string
	CompanyName    string
	CompanyWebsite string
}

// Auth owns the login/signup modal and the session lifecycle. Role is
// re-derived from the who-am-I endpoint when not cached, and cached
// until logout or a forced refresh.
type Auth struct {
	client *api.Client
	store  *session.Store
	header HeaderView
	nav    ScreenNavigator
}

// NewAuth wires the auth controller. header and nav may be no-op
// implementations in headless use.
func NewAuth(client *api.Client, store *session.Store, header HeaderView, nav ScreenNavigator) *Auth {
	return &Auth{client: client, store: store, header: header, nav: nav}
}

// LoggedIn reports whether a bearer token is stored.
func (a *Auth) LoggedIn() bool { return a.store.Token() != "" }

// Role returns the account role, calling the who-am-I endpoint only when
// no role is cached. Logged-out sessions yield RoleUnknown without a
// network call.
func (a *Auth) Role(ctx context.Context) (board.Role, error) {
	if a.store.Token() == "" {
		return board.RoleUnknown, nil
	}
	if cached := a.store.Role(); cached != board.RoleUnknown {
		return cached, nil
	}
	return a.RefreshRole(ctx)
}

// RefreshRole re-derives the role from the who-am-I endpoint and caches
// it. A failed lookup clears the cached role.
func (a *Auth) RefreshRole(ctx context.Context) (board.Role, error) {
	me, err := a.client.Me(ctx)
	if err != nil {
		_ = a.store.SetRole(board.RoleUnknown)
		return board.RoleUnknown, err
	}
	role := board.ParseRole(me.Role)
	if err := a.store.SetRole(role); err != nil {
		return role, err
	}
	return role, nil
}

// Mode resolves the active side for this screen, pinning recruiters to
// the company side.
func (a *Auth) Mode(explicit string, override bool, screenIdentity string) Mode {
	return ResolveMode(explicit, override, screenIdentity, a.store.Role())
}

// Login posts credentials, stores the bearer token, re-derives the role,
// adapts the header and loads the candidate avatar.
func (a *Auth) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return &ValidationError{Msg: "email and password are required"}
	}

	token, err := a.client.Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		return err
	}
	if err := a.store.SetToken(token); err != nil {
		return err
	}
	board.IncrLogins()

	role, err := a.RefreshRole(ctx)
	if err != nil {
		slog.Warn("login: role lookup failed", slog.Any("error", err))
	}
	a.header.SetLoggedIn(a.Mode("", false, ""), true)
	if role != board.RoleRecruiter {
		if err := a.LoadAvatar(ctx); err != nil {
			slog.Debug("login: avatar bootstrap failed", slog.Any("error", err))
		}
	}
	return nil
}

// Signup validates the side-dependent required fields, creates the
// account, logs in, creates the matching company or profile record, and
// navigates to the corresponding editor screen.
func (a *Auth) Signup(ctx context.Context, form SignupForm, mode Mode) error {
	form.Email = strings.TrimSpace(form.Email)
	if form.Email == "" || form.Password == "" {
		return &ValidationError{Msg: "email and password are required"}
	}
	if mode == ModeCompany {
		if strings.TrimSpace(form.CompanyName) == "" {
			return &ValidationError{Msg: "company name is required"}
		}
	} else {
		if strings.TrimSpace(form.FirstName) == "" ||
			strings.TrimSpace(form.LastName) == "" ||
			strings.TrimSpace(form.City) == "" {
			return &ValidationError{Msg: "first name, last name and city are required"}
		}
	}

	role := board.RoleUser
	if mode == ModeCompany {
		role = board.RoleRecruiter
	}
	creds := api.Credentials{Email: form.Email, Password: form.Password}
	if err := a.client.Signup(ctx, creds, role); err != nil {
		return err
	}
	board.IncrSignups()

	token, err := a.client.Login(ctx, creds)
	if err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	if err := a.store.SetToken(token); err != nil {
		return err
	}
	if err := a.store.SetRole(role); err != nil {
		return err
	}
	a.header.SetLoggedIn(mode, true)

	if mode == ModeCompany {
		payload := api.CompanyCreate{Name: strings.TrimSpace(form.CompanyName)}
		if web := strings.TrimSpace(form.CompanyWebsite); web != "" {
			payload.Website = &web
		}
		if _, err := a.client.CreateCompany(ctx, payload); err != nil {
			return fmt.Errorf("signup: %w", err)
		}
		a.nav.Navigate("company_profile")
		return nil
	}

	_, err = a.client.CreateProfile(ctx, api.ProfileCreate{
		FirstName: strings.TrimSpace(form.FirstName),
		LastName:  strings.TrimSpace(form.LastName),
		City:      strings.TrimSpace(form.City),
	})
	if err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	if err := a.LoadAvatar(ctx); err != nil {
		slog.Debug("signup: avatar bootstrap failed", slog.Any("error", err))
	}
	a.nav.Navigate("profile")
	return nil
}

// Logout clears the persisted token, cached role and cached avatar, and
// resets the header to its pre-login appearance.
func (a *Auth) Logout() error {
	if err := a.store.Clear(); err != nil {
		return err
	}
	a.header.Reset()
	return nil
}

// LoadAvatar shows the cached avatar optimistically, then walks the
// paginated profile listing for the record owned by the current user and
// refreshes the cached path. Linear in the total profile count; a
// progress bar tracks the walk in interactive runs.
func (a *Auth) LoadAvatar(ctx context.Context) error {
	if a.store.Token() == "" || a.store.Role() == board.RoleRecruiter {
		return nil
	}
	if cached := a.store.AvatarPath(); cached != "" {
		a.header.SetAvatar(cached)
	}

	me, err := a.client.Me(ctx)
	if err != nil {
		return err
	}
	mine, err := a.findOwnedProfile(ctx, me.ID)
	if err != nil || mine == nil {
		return err
	}
	if mine.AvatarURL == nil || *mine.AvatarURL == "" {
		return nil
	}
	path := board.NormalizeUploadPath(*mine.AvatarURL)
	if err := a.store.SetAvatarPath(path); err != nil {
		return err
	}
	a.header.SetAvatar(path)
	return nil
}

// findOwnedProfile scans profile pages for the record whose user_id
// matches userID. There is no lookup-by-owner endpoint; the scan stops
// on a match or when pages are exhausted.
func (a *Auth) findOwnedProfile(ctx context.Context, userID int64) (*board.CandidateProfile, error) {
	pageSize := board.Cfg.AvatarScanPageSize
	var bar *pb.ProgressBar
	if board.Cfg.Interactive {
		bar = pb.New(0)
		bar.Start()
		defer bar.Finish()
	}

	for page := 1; ; page++ {
		list, err := a.client.ListProfiles(ctx, page, pageSize, api.ProfileFilter{})
		if err != nil {
			return nil, err
		}
		board.IncrAvatarScanPages()
		if bar != nil {
			if list.Total != nil {
				bar.SetTotal(int64((*list.Total + pageSize - 1) / pageSize))
			}
			bar.Increment()
		}

		for i := range list.Items {
			if list.Items[i].UserID == userID {
				p := list.Items[i]
				return &p, nil
			}
		}

		if list.Total != nil && page*pageSize >= *list.Total {
			return nil, nil
		}
		if list.Total == nil && len(list.Items) < pageSize {
			return nil, nil
		}
	}
}
