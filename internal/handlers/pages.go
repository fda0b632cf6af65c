package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"opsboard/internal/constants"
	"opsboard/internal/dto"
	"opsboard/internal/middleware"
	"opsboard/internal/models"
	"opsboard/internal/revalidate"
	"opsboard/internal/services"
)

// PageHandler renders the server-side pages. Every protected page carries an
// ETag derived from its route's revalidation version, so a browser re-uses
// its cached render until a mutation bumps the version.
type PageHandler struct {
	auth      *services.AuthService
	dashboard *services.DashboardService
	clients   *services.ClientService
	tasks     *services.TaskService
	team      *services.TeamService
	rev       revalidate.Invalidator
	log       *logrus.Logger
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(
	auth *services.AuthService,
	dashboard *services.DashboardService,
	clients *services.ClientService,
	tasks *services.TaskService,
	team *services.TeamService,
	rev revalidate.Invalidator,
	log *logrus.Logger,
) *PageHandler {
	return &PageHandler{
		auth:      auth,
		dashboard: dashboard,
		clients:   clients,
		tasks:     tasks,
		team:      team,
		rev:       rev,
		log:       log,
	}
}

// Home renders the landing page with links depending on session state.
func (h *PageHandler) Home(c *gin.Context) {
	session := sessions.Default(c)
	_, loggedIn := session.Get(constants.ContextKeyUserID).(string)

	c.HTML(http.StatusOK, "home.tmpl", gin.H{
		"LoggedIn": loggedIn,
	})
}

// Login renders the login/signup page.
func (h *PageHandler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", nil)
}

// Dashboard renders the overview page with stats and session-user details.
func (h *PageHandler) Dashboard(c *gin.Context) {
	if h.notModified(c, constants.RouteDashboard) {
		return
	}

	userID, _ := middleware.GetUserID(c)
	user, err := h.auth.GetUser(userID)
	if err != nil {
		// Session points at a deleted user; treat as signed out.
		c.Redirect(http.StatusFound, "/login")
		return
	}

	stats, err := h.dashboard.Stats()
	if err != nil {
		h.log.WithError(err).Error("failed to load dashboard stats")
		stats = &services.DashboardStats{}
	}

	c.HTML(http.StatusOK, "dashboard.tmpl", gin.H{
		"User":  dto.ToUserDTO(*user),
		"Stats": stats,
	})
}

// Clients renders the client list + form page.
func (h *PageHandler) Clients(c *gin.Context) {
	if h.notModified(c, constants.RouteClients) {
		return
	}

	clients, err := h.clients.List()
	if err != nil {
		h.log.WithError(err).Error("failed to load clients")
		clients = []models.Client{}
	}

	c.HTML(http.StatusOK, "clients.tmpl", gin.H{
		"Clients": clients,
	})
}

// Tasks renders the task list + form page. The three independent reads are
// issued concurrently and the page renders once all complete; a failed read
// degrades to an empty list rather than failing the page.
func (h *PageHandler) Tasks(c *gin.Context) {
	if h.notModified(c, constants.RouteTasks) {
		return
	}

	var (
		tasks         []models.Task
		clientOptions []models.Client
		teamOptions   []models.TeamMember
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		if tasks, err = h.tasks.List(); err != nil {
			h.log.WithError(err).Error("failed to load tasks")
			tasks = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if clientOptions, err = h.clients.Options(); err != nil {
			h.log.WithError(err).Error("failed to load client options")
			clientOptions = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if teamOptions, err = h.team.Options(); err != nil {
			h.log.WithError(err).Error("failed to load team options")
			teamOptions = nil
		}
		return nil
	})
	_ = g.Wait()

	c.HTML(http.StatusOK, "tasks.tmpl", gin.H{
		"Tasks":       dto.ToTaskDTOs(tasks),
		"Clients":     dto.ClientOptions(clientOptions),
		"TeamMembers": dto.TeamMemberOptions(teamOptions),
	})
}

// Team renders the team-member list + form page.
func (h *PageHandler) Team(c *gin.Context) {
	if h.notModified(c, constants.RouteTeam) {
		return
	}

	members, err := h.team.List()
	if err != nil {
		h.log.WithError(err).Error("failed to load team members")
		members = []models.TeamMember{}
	}

	c.HTML(http.StatusOK, "team.tmpl", gin.H{
		"Members": members,
	})
}

// notModified sets the route's ETag and answers 304 when the client's cached
// render is still current. Returns true when the response is already written.
func (h *PageHandler) notModified(c *gin.Context, route string) bool {
	version, err := h.rev.Version(c.Request.Context(), route)
	if err != nil {
		h.log.WithError(err).WithField("path", route).Warn("failed to read route version")
		return false
	}

	etag := fmt.Sprintf(`W/"%s.%d"`, route, version)
	c.Header("Cache-Control", "no-cache")
	c.Header("ETag", etag)

	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return true
	}
	return false
}
