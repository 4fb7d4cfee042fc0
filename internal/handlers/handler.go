package handlers

import (
	"github.com/paingnyinyikhant1810/noc-members/internal/logger"
	"github.com/paingnyinyikhant1810/noc-members/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), corsMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Live updates-feed push (HTTP upgrade), same session auth as the feed
	router.GET("/ws", h.authMiddleware, h.wsConnect)

	api := router.Group("/api")
	api.POST("/login", h.login)

	authed := api.Group("", h.authMiddleware)
	authed.GET("/getData", h.getData)

	admin := authed.Group("", h.adminOnly)
	// Legacy generic {action, table, data, id} endpoint
	admin.POST("", h.legacyDispatch)

	h.registerUpdateRoutes(authed, admin)
	h.registerFileRoutes(authed, admin)
	h.registerInfoRoutes(authed, admin)
	h.registerUserRoutes(admin)
	h.registerCategoryRoutes(authed, admin)

	return router
}

func (h *Handler) registerUpdateRoutes(authed, admin *gin.RouterGroup) {
	authed.GET("/updates", h.listUpdates)
	authed.GET("/updates/:id", h.getUpdate)
	admin.POST("/updates", h.createUpdate)
	admin.PUT("/updates/:id", h.updateUpdate)
	admin.DELETE("/updates/:id", h.deleteUpdate)
}

func (h *Handler) registerFileRoutes(authed, admin *gin.RouterGroup) {
	authed.GET("/files", h.listFiles)
	authed.GET("/files/:id", h.getFile)
	authed.GET("/files/:id/path", h.getFilePath)
	authed.GET("/folders", h.listFolders)
	authed.GET("/folders/:id", h.getFolder)
	admin.POST("/files", h.createFile)
	admin.PUT("/files/:id", h.updateFile)
	admin.DELETE("/files/:id", h.deleteFile)
	admin.POST("/files/:id/mark", h.markFile)
	admin.POST("/folders", h.createFolder)
	admin.PUT("/folders/:id", h.updateFolder)
	admin.DELETE("/folders/:id", h.deleteFolder)
}

func (h *Handler) registerInfoRoutes(authed, admin *gin.RouterGroup) {
	authed.GET("/info", h.listInfoCards)
	authed.GET("/info/:id", h.getInfoCard)
	admin.POST("/info", h.createInfoCard)
	admin.PUT("/info/:id", h.updateInfoCard)
	admin.DELETE("/info/:id", h.deleteInfoCard)
}

func (h *Handler) registerUserRoutes(admin *gin.RouterGroup) {
	admin.GET("/users", h.listUsers)
	admin.GET("/users/:id", h.getUser)
	admin.POST("/users", h.createUser)
	admin.PUT("/users/:id", h.updateUser)
	admin.DELETE("/users/:id", h.deleteUser)
}

func (h *Handler) registerCategoryRoutes(authed, admin *gin.RouterGroup) {
	authed.GET("/categories", h.listCategories)
	authed.GET("/categories/:id", h.getCategory)
	admin.POST("/categories", h.createCategory)
	admin.PUT("/categories/:id", h.updateCategory)
	admin.DELETE("/categories/:id", h.deleteCategory)
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
