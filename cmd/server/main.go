package main

import (
	"context"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"opsboard/internal/config"
	"opsboard/internal/constants"
	"opsboard/internal/database"
	"opsboard/internal/handlers"
	"opsboard/internal/logging"
	"opsboard/internal/middleware"
	"opsboard/internal/models"
	"opsboard/internal/repository"
	"opsboard/internal/revalidate"
	"opsboard/internal/services"
)

func main() {
	cfg := config.Load()

	gin.SetMode(cfg.GinMode)
	log := logging.New(cfg.GinMode)

	db, err := database.Connect(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}
	if err := database.AddIndexes(db); err != nil {
		log.WithError(err).Fatal("failed to create indexes")
	}

	// Session store and route invalidator share the Redis instance. Without
	// one, sessions go to a signed cookie and invalidation stays in-process.
	var (
		store       sessions.Store
		invalidator revalidate.Invalidator
	)
	if addr := cfg.RedisAddr(); addr != "" {
		store, err = redisStore.NewStore(10, "tcp", addr, "", []byte(cfg.SessionSecret))
		if err != nil {
			log.WithError(err).Fatal("failed to create Redis session store")
		}

		client := redis.NewClient(&redis.Options{Addr: addr})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			log.WithError(err).Fatal("failed to connect to Redis")
		}
		invalidator = revalidate.NewRedisInvalidator(client)
	} else {
		store = cookie.NewStore([]byte(cfg.SessionSecret))
		invalidator = revalidate.NewMemoryInvalidator()
		log.Info("Redis not configured, using cookie sessions and in-memory revalidation")
	}

	isProduction := cfg.GinMode == gin.ReleaseMode
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})

	// Repositories and services
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	teamRepo := repository.NewTeamMemberRepository(db)

	authService := services.NewAuthService(userRepo)
	clientService := services.NewClientService(clientRepo, invalidator, log)
	taskService := services.NewTaskService(taskRepo, invalidator, log)
	teamService := services.NewTeamService(teamRepo, invalidator, log)
	dashboardService := services.NewDashboardService(taskRepo, clientRepo, teamRepo, log)

	authHandler := handlers.NewAuthHandler(authService)
	clientHandler := handlers.NewClientHandler(clientService)
	taskHandler := handlers.NewTaskHandler(taskService)
	teamHandler := handlers.NewTeamHandler(teamService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	pageHandler := handlers.NewPageHandler(authService, dashboardService, clientService, taskService, teamService, invalidator, log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.RequestLogger(log))
	r.Use(sessions.Sessions(constants.SessionName, store))

	r.SetFuncMap(template.FuncMap{
		"statusLabel": statusLabel,
		"fmtDate": func(t time.Time) string {
			return t.Format("2006-01-02")
		},
	})
	r.LoadHTMLGlob("web/templates/*.tmpl")
	r.Static("/static", "web/static")

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Pages
	r.GET("/", pageHandler.Home)
	r.GET("/login", pageHandler.Login)

	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.RequirePageAuth())
	{
		dashboard.GET("", pageHandler.Dashboard)
		dashboard.GET("/clients", pageHandler.Clients)
		dashboard.GET("/tasks", pageHandler.Tasks)
		dashboard.GET("/team", pageHandler.Team)
	}

	// Action API
	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		clients := api.Group("/clients")
		clients.Use(middleware.RequireAuth())
		{
			clients.GET("", clientHandler.ListClients)
			clients.GET("/options", clientHandler.ClientOptions)
			clients.POST("", clientHandler.CreateClient)
			clients.PUT("/:id", clientHandler.UpdateClient)
			clients.DELETE("/:id", clientHandler.DeleteClient)
		}

		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth())
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		team := api.Group("/team")
		team.Use(middleware.RequireAuth())
		{
			team.GET("", teamHandler.ListTeamMembers)
			team.GET("/options", teamHandler.TeamMemberOptions)
			team.POST("", teamHandler.CreateTeamMember)
			team.PUT("/:id", teamHandler.UpdateTeamMember)
			team.DELETE("/:id", teamHandler.DeleteTeamMember)
		}

		api.GET("/dashboard/stats", middleware.RequireAuth(), dashboardHandler.GetStats)
	}

	log.WithField("addr", cfg.ListenAddr).Info("server starting")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

// statusLabel renders a status value for display: "in_progress" -> "In Progress".
func statusLabel(status models.TaskStatus) string {
	words := strings.Split(string(status), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
