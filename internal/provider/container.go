package provider

import (
	"github.com/paikari-bazar/internal/authz"
	"github.com/paikari-bazar/internal/cache"
	"github.com/paikari-bazar/internal/config"
	"github.com/paikari-bazar/internal/logger"
	"github.com/paikari-bazar/internal/models"
	"github.com/paikari-bazar/internal/queue"
	"github.com/paikari-bazar/internal/repository"
	"github.com/paikari-bazar/internal/service"
)

// Container wires repositories and services together.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo        repository.AdminRepository
	UserRepo         repository.UserRepository
	ProfileRepo      repository.ProfileRepository
	SuspensionRepo   repository.SuspensionRepository
	CategoryRepo     repository.CategoryRepository
	ProductRepo      repository.ProductRepository
	ItemRepo         repository.ItemRepository
	CartRepo         repository.CartRepository
	OrderRepo        repository.OrderRepository
	TicketRepo       repository.TicketRepository
	ConversationRepo repository.ConversationRepository
	SettingRepo      repository.SettingRepository
	DashboardRepo    repository.DashboardRepository

	// Services
	AuthzService      *authz.Service
	AuthService       *service.AuthService
	UserAuthService   *service.UserAuthService
	UserAdminService  *service.UserAdminService
	SuspensionService *service.SuspensionService
	ProfileService    *service.ProfileService
	EmailService      *service.EmailService
	UploadService     *service.UploadService
	SettingService    *service.SettingService
	CategoryService   *service.CategoryService
	ProductService    *service.ProductService
	ItemService       *service.ItemService
	CartService       *service.CartService
	OrderService      *service.OrderService
	TicketService     *service.TicketService
	ChatService       *service.ChatService
	DashboardService  *service.DashboardService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.ProfileRepo = repository.NewProfileRepository(db)
	c.SuspensionRepo = repository.NewSuspensionRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.ItemRepo = repository.NewItemRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.TicketRepo = repository.NewTicketRepository(db)
	c.ConversationRepo = repository.NewConversationRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.SettingService = service.NewSettingService(c.Config, c.SettingRepo)
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo, c.SuspensionRepo)
	c.UserAdminService = service.NewUserAdminService(c.Config, c.UserRepo, c.ProfileRepo, c.SuspensionRepo)
	c.SuspensionService = service.NewSuspensionService(c.SuspensionRepo, c.UserRepo)
	c.ProfileService = service.NewProfileService(c.ProfileRepo, c.UserRepo)
	c.UploadService = service.NewUploadService(c.Config)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.ItemService = service.NewItemService(c.ItemRepo, c.ProductRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ItemRepo)
	c.OrderService = service.NewOrderService(c.Config, c.OrderRepo, c.CartRepo, c.ItemRepo, c.SettingService, c.QueueClient)
	c.TicketService = service.NewTicketService(c.TicketRepo, c.QueueClient)
	c.ChatService = service.NewChatService(c.ConversationRepo, c.UserRepo)
	c.DashboardService = service.NewDashboardService(c.DashboardRepo)
}
