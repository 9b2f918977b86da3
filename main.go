// adopte-un-dev — terminal client for the Adopte un Dev job board.
//
// Drives the board's screens (job listing, company directory, candidate
// search, auth, profile and company editors) against the board's REST
// API, one subcommand per screen action.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/env"

	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/api"
	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/board"
	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/render"
	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/screens"
	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/session"
)

var version = "dev"

const usage = `adopte-un-dev <command> [flags]

Browsing
  jobs        list job offers           (-page, -q, -contract, -mode, -open, -suggest)
  companies   list companies            (-page, -open)
  profiles    search candidate profiles (-page, -q, -city, -skill, -diploma, -language, -exp, -open)
  filters     show the candidate search facets
  menu        show the navigation drawer and account entries
  info        open a static page popup (mentions|contact|apropos)

Account
  login       log in                    (-email, -password)
  signup      create an account         (-side, -email, -password, ...)
  logout      end the session
  me          show the logged-in account

Editing
  profile-edit edit my candidate profile (-first, -last, -city, -skills, -target, -motivation, -avatar)
  company-edit edit my company           (-name, -hq, -sector, -desc, -website, -headcount, -banner)

Misc
  ping        check the API
  metrics     show client counters
  version     print the version
`

func main() {
	initBoard()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	store, err := session.Open(env.Str("SESSION_PATH", ""))
	if err != nil {
		slog.Error("session store init failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer store.Close()

	client := api.New(board.Cfg.APIBaseURL, store)
	console := render.NewConsole(os.Stdout)
	auth := screens.NewAuth(client, store, console, console)

	ctx, cancel := context.WithTimeout(context.Background(), env.Duration("COMMAND_TIMEOUT", 2*time.Minute))
	defer cancel()

	app := &app{ctx: ctx, client: client, store: store, console: console, auth: auth}

	cmd, args := os.Args[1], os.Args[2:]
	if err := app.run(cmd, args); err != nil {
		if screens.IsValidation(err) {
			console.SetMessage(err.Error(), false)
			os.Exit(2)
		}
		slog.Error("command failed", slog.String("command", cmd), slog.Any("error", err))
		os.Exit(1)
	}
}

func initBoard() {
	board.Init(board.Config{
		APIBaseURL:           env.Str("API_BASE_URL", "http://127.0.0.1:8000"),
		PageSize:             env.Int("PAGE_SIZE", 9),
		AvatarScanPageSize:   env.Int("AVATAR_SCAN_PAGE_SIZE", 100),
		FetchTimeout:         env.Duration("FETCH_TIMEOUT", 15*time.Second),
		UploadMaxBytes:       int64(env.Int("UPLOAD_MAX_BYTES", 8<<20)),
		CacheTTL:             env.Duration("CACHE_TTL", 15*time.Minute),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		Interactive:          env.Str("NO_PROGRESS", "") == "",
		HTTPClient: &http.Client{
			Timeout: env.Duration("FETCH_TIMEOUT", 15*time.Second),
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	})
	board.InitCache(env.Str("REDIS_URL", ""),
		board.Cfg.CacheTTL, board.Cfg.CacheMaxEntries, board.Cfg.CacheCleanupInterval)
}

type app struct {
	ctx     context.Context
	client  *api.Client
	store   *session.Store
	console *render.Console
	auth    *screens.Auth
}

func (a *app) run(cmd string, args []string) error {
	switch cmd {
	case "jobs":
		return a.jobs(args)
	case "companies":
		return a.companies(args)
	case "profiles":
		return a.profiles(args)
	case "filters":
		return a.filters()
	case "menu":
		return a.menu()
	case "info":
		return a.info(args)
	case "login":
		return a.login(args)
	case "signup":
		return a.signup(args)
	case "logout":
		return a.auth.Logout()
	case "me":
		return a.me()
	case "profile-edit":
		return a.profileEdit(args)
	case "company-edit":
		return a.companyEdit(args)
	case "ping":
		return a.ping()
	case "metrics":
		fmt.Println(board.FormatMetrics())
		return nil
	case "version":
		fmt.Println(version)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) jobs(args []string) error {
	fs := flag.NewFlagSet("jobs", flag.ExitOnError)
	page := fs.Int("page", 1, "page to show")
	q := fs.String("q", "", "title search")
	contract := fs.String("contract", "", "contract type filter (client-side)")
	workMode := fs.String("mode", "", "work mode filter (client-side)")
	city := fs.String("city", "", "location filter (client-side)")
	open := fs.Int64("open", 0, "open the detail view of this job id")
	suggest := fs.String("suggest", "", "show title suggestions for this input instead of the listing")
	fs.Parse(args)

	if *suggest != "" {
		typeahead := screens.NewSuggest(a.client, a.console)
		return typeahead.Type(a.ctx, *suggest)
	}

	jf := screens.JobFilter{
		Query:         *q,
		City:          *city,
		ContractTypes: splitCSV(*contract),
		WorkModes:     splitCSV(*workMode),
	}

	// City, contract and work mode narrow the loaded page client-side,
	// like the original screen filtering its in-memory array.
	view := &render.JobList{Out: os.Stdout}
	listing := screens.NewListing(func(ctx context.Context, page, pageSize int, filters url.Values) (board.Page[board.JobPosting], error) {
		result, err := a.client.ListJobs(ctx, page, pageSize, filters.Get("q"))
		if err != nil {
			return result, err
		}
		result.Items = jf.Apply(result.Items)
		return result, nil
	}, view, board.Cfg.PageSize)

	filters := url.Values{}
	if q := strings.TrimSpace(jf.Query); q != "" {
		filters.Set("q", q)
	}
	listing.SetFilters(filters)
	if err := listing.LoadPage(a.ctx, *page); err != nil {
		return err
	}

	if *open != 0 {
		popup := screens.NewFetchPopup(a.client.GetJob, &render.JobPopup{Out: os.Stdout}, a.console, "#popup-offre")
		return popup.Open(a.ctx, *open)
	}
	return nil
}

func (a *app) companies(args []string) error {
	fs := flag.NewFlagSet("companies", flag.ExitOnError)
	page := fs.Int("page", 1, "page to show")
	open := fs.Int64("open", 0, "open the detail view of this company id")
	fs.Parse(args)

	view := &render.CompanyList{Out: os.Stdout}
	var loaded []board.Company
	listing := screens.NewListing(func(ctx context.Context, page, pageSize int, _ url.Values) (board.Page[board.Company], error) {
		result, err := a.client.ListCompanies(ctx, page, pageSize)
		if err == nil {
			loaded = result.Items
		}
		return result, err
	}, view, board.Cfg.PageSize)

	if err := listing.LoadPage(a.ctx, *page); err != nil {
		return err
	}

	if *open != 0 {
		popup := screens.NewIndexPopup(&render.CompanyPopup{Out: os.Stdout}, a.console, "#popup-entreprise")
		popup.Index(loaded, func(c board.Company) int64 { return c.ID })
		return popup.Open(*open)
	}
	return nil
}

func (a *app) profiles(args []string) error {
	fs := flag.NewFlagSet("profiles", flag.ExitOnError)
	page := fs.Int("page", 1, "page to show")
	q := fs.String("q", "", "free-text search")
	city := fs.String("city", "", "city filter")
	skill := fs.String("skill", "", "comma-separated skill facets")
	diploma := fs.String("diploma", "", "comma-separated degree facets")
	language := fs.String("language", "", "comma-separated language facets")
	exp := fs.String("exp", "", "comma-separated experience-year facets")
	open := fs.Int64("open", 0, "open the detail view of this profile id")
	fs.Parse(args)

	panel := screens.NewFilterPanel(a.client)
	panel.Query = *q
	panel.City = *city
	panel.Skills = splitCSV(*skill)
	panel.Diplomas = splitCSV(*diploma)
	panel.Languages = splitCSV(*language)
	panel.ExperienceYears = strings.Join(splitCSV(*exp), ",")

	view := &render.ProfileList{Out: os.Stdout}
	listing := screens.NewListing(func(ctx context.Context, page, pageSize int, filters url.Values) (board.Page[board.CandidateProfile], error) {
		return a.client.ListProfiles(ctx, page, pageSize, api.FilterFromValues(filters))
	}, view, board.Cfg.PageSize)

	listing.SetFilters(panel.Collect())
	if err := listing.LoadPage(a.ctx, *page); err != nil {
		return err
	}

	if *open != 0 {
		popup := screens.NewFetchPopup(a.client.GetProfile, &render.ProfilePopup{Out: os.Stdout}, a.console, "#popup-profil")
		return popup.Open(a.ctx, *open)
	}
	return nil
}

func (a *app) filters() error {
	panel := screens.NewFilterPanel(a.client)
	opts, err := panel.Facets(a.ctx)
	if err != nil {
		return err
	}
	fmt.Println("skills:    " + board.Escape(strings.Join(opts.Skills, ", ")))
	fmt.Println("degrees:   " + board.Escape(strings.Join(opts.Degrees, ", ")))
	fmt.Println("languages: " + board.Escape(strings.Join(opts.Languages, ", ")))
	years := make([]string, len(opts.Experiences))
	for i, n := range opts.Experiences {
		years[i] = strconv.Itoa(n)
	}
	fmt.Println("years:     " + strings.Join(years, ", "))
	return nil
}

func (a *app) login(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)
	if err := a.auth.Login(a.ctx, *email, *password); err != nil {
		return err
	}
	a.accountEntries()
	return nil
}

func (a *app) signup(args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	side := fs.String("side", "candidate", "candidate or company")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	first := fs.String("first", "", "first name (candidate)")
	last := fs.String("last", "", "last name (candidate)")
	city := fs.String("city", "", "city (candidate)")
	company := fs.String("company", "", "company name (company side)")
	website := fs.String("website", "", "company website (company side)")
	fs.Parse(args)

	mode := screens.ModeCandidate
	if *side == "company" {
		mode = screens.ModeCompany
	}
	return a.auth.Signup(a.ctx, screens.SignupForm{
		Email:          *email,
		Password:       *password,
		FirstName:      *first,
		LastName:       *last,
		City:           *city,
		CompanyName:    *company,
		CompanyWebsite: *website,
	}, mode)
}

func (a *app) me() error {
	me, err := a.client.Me(a.ctx)
	if err != nil {
		return err
	}
	fmt.Printf("#%d %s (%s)\n", me.ID, board.Escape(me.Email), board.Escape(me.Role))
	a.accountEntries()
	return nil
}

// accountEntries prints the header dropdown as it stands for the
// current session: login link when logged out, profile-or-company plus
// logout when logged in.
func (a *app) accountEntries() {
	menu := screens.NewAccountMenu(a.console, a.console, a.auth)
	menu.Toggle()
	for _, e := range menu.Entries() {
		fmt.Println("  " + e.Label)
	}
	menu.DismissOutside(false)
}

func (a *app) menu() error {
	drawer := screens.NewBurgerMenu(a.console)
	drawer.Toggle()
	for _, link := range []string{"Accueil", "Offres", "Entreprises", "Candidats"} {
		fmt.Println("  " + link)
	}
	a.accountEntries()
	drawer.DismissOutside(false)
	return nil
}

func (a *app) info(args []string) error {
	name := "mentions"
	if len(args) > 0 {
		name = args[0]
	}
	pages := screens.NewPopupRegistry(a.console, "mentions", "contact", "apropos")
	pages.OpenPopup(name)
	if pages.OpenName() != name {
		return fmt.Errorf("unknown page %q", name)
	}
	return nil
}

func (a *app) profileEdit(args []string) error {
	fs := flag.NewFlagSet("profile-edit", flag.ExitOnError)
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	city := fs.String("city", "", "city")
	skills := fs.String("skills", "", "skills")
	target := fs.String("target", "", "job target")
	motivation := fs.String("motivation", "", "motivation text")
	avatar := fs.String("avatar", "", "path of an avatar image to upload")
	fs.Parse(args)

	editor := screens.NewProfileEditor(a.client, a.store, a.auth, a.console)
	if err := editor.Load(a.ctx); err != nil {
		return err
	}

	setIf(&editor.Form.FirstName, *first)
	setIf(&editor.Form.LastName, *last)
	setIf(&editor.Form.City, *city)
	setIf(&editor.Form.Skills, *skills)
	setIf(&editor.Form.JobTarget, *target)
	setIf(&editor.Form.Motivation, *motivation)

	if *avatar != "" {
		f, err := os.Open(*avatar)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := editor.UploadAvatar(a.ctx, filepath.Base(*avatar), f); err != nil {
			return err
		}
	}
	return editor.Save(a.ctx)
}

func (a *app) companyEdit(args []string) error {
	fs := flag.NewFlagSet("company-edit", flag.ExitOnError)
	name := fs.String("name", "", "company name")
	hq := fs.String("hq", "", "headquarters city")
	sector := fs.String("sector", "", "sector")
	desc := fs.String("desc", "", "description")
	website := fs.String("website", "", "website url")
	headcount := fs.String("headcount", "", "headcount")
	banner := fs.String("banner", "", "path of a banner image to upload")
	fs.Parse(args)

	editor := screens.NewCompanyEditor(a.client, a.store, a.console)
	if err := editor.Load(a.ctx); err != nil {
		return err
	}

	setIf(&editor.Form.Name, *name)
	setIf(&editor.Form.HQCity, *hq)
	setIf(&editor.Form.Sector, *sector)
	setIf(&editor.Form.Description, *desc)
	setIf(&editor.Form.Website, *website)
	setIf(&editor.Form.Headcount, *headcount)

	if err := editor.Save(a.ctx); err != nil {
		return err
	}
	if *banner != "" {
		f, err := os.Open(*banner)
		if err != nil {
			return err
		}
		defer f.Close()
		return editor.UploadBanner(a.ctx, filepath.Base(*banner), f)
	}
	return nil
}

func (a *app) ping() error {
	health, err := a.client.Health(a.ctx)
	if err != nil {
		return err
	}
	fmt.Printf("API up: %v\n", health)
	return nil
}

func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
