package router

import (
	"fmt"
	"sort"
	"strings"

	"github.com/paikari-bazar/internal/authz"
	"github.com/paikari-bazar/internal/cache"
	"github.com/paikari-bazar/internal/config"
	"github.com/paikari-bazar/internal/constants"
	adminhandlers "github.com/paikari-bazar/internal/http/handlers/admin"
	publichandlers "github.com/paikari-bazar/internal/http/handlers/public"
	wholesalerhandlers "github.com/paikari-bazar/internal/http/handlers/wholesaler"
	"github.com/paikari-bazar/internal/http/response"
	"github.com/paikari-bazar/internal/logger"
	"github.com/paikari-bazar/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires middleware and routes onto a gin engine.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	wholesalerHandler := wholesalerhandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "pb"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "too many login attempts",
	}
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "too many login attempts",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Uploaded catalog images.
	r.Static("/uploads", "./uploads")

	apiV1 := r.Group("/api/v1")
	{
		// Storefront browsing, no account needed.
		apiV1.GET("/categories", publicHandler.ListCategories)
		apiV1.GET("/categories/:id", publicHandler.GetCategory)
		apiV1.GET("/products", publicHandler.ListProducts)
		apiV1.GET("/products/:id", publicHandler.GetProduct)
		apiV1.GET("/products/:id/items", publicHandler.ListProductItems)
		apiV1.GET("/items/:id", publicHandler.GetItem)
		apiV1.GET("/search", publicHandler.SearchItems)
		apiV1.GET("/shops/:id", publicHandler.GetWholesalerShop)
		apiV1.GET("/settings/payment", publicHandler.GetPaymentInfo)

		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
		}

		// Customer routes.
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo, c.SuspensionRepo))
		{
			user.GET("/me", publicHandler.GetProfile)
			user.POST("/logout", publicHandler.Logout)
			user.PUT("/me/profile", publicHandler.UpdateProfile)
			user.PUT("/me/password", publicHandler.ChangePassword)

			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart/items", publicHandler.AddCartItem)
			user.PUT("/cart/items/:item_id", publicHandler.SetCartItem)
			user.DELETE("/cart/items/:item_id", publicHandler.RemoveCartItem)
			user.DELETE("/cart", publicHandler.ClearCart)

			user.GET("/checkout", publicHandler.GetCheckoutInfo)
			user.POST("/orders", publicHandler.CreateOrder)
			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:id", publicHandler.GetOrder)
			user.POST("/orders/:id/cancel", publicHandler.CancelOrder)

			user.POST("/tickets", publicHandler.CreateTicket)
			user.GET("/tickets", publicHandler.ListTickets)
			user.GET("/tickets/:id", publicHandler.GetTicket)
			user.POST("/tickets/:id/replies", publicHandler.ReplyTicket)

			user.POST("/conversations", publicHandler.OpenConversation)
			user.GET("/conversations", publicHandler.ListConversations)
			user.GET("/conversations/:id/messages", publicHandler.ListMessages)
			user.POST("/conversations/:id/messages", publicHandler.SendMessage)
		}

		// Wholesaler catalog management.
		wholesaler := apiV1.Group("/wholesaler")
		wholesaler.Use(
			UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo, c.SuspensionRepo),
			RequireRole(constants.RoleWholesaler),
		)
		{
			wholesaler.GET("/profile", wholesalerHandler.GetProfile)
			wholesaler.PUT("/profile", wholesalerHandler.UpdateProfile)

			wholesaler.GET("/products", wholesalerHandler.ListProducts)
			wholesaler.POST("/products", wholesalerHandler.CreateProduct)
			wholesaler.GET("/products/:id", wholesalerHandler.GetProduct)
			wholesaler.PUT("/products/:id", wholesalerHandler.UpdateProduct)
			wholesaler.DELETE("/products/:id", wholesalerHandler.DeleteProduct)

			wholesaler.GET("/products/:id/items", wholesalerHandler.ListItems)
			wholesaler.POST("/products/:id/items", wholesalerHandler.CreateItem)
			wholesaler.PUT("/items/:id", wholesalerHandler.UpdateItem)
			wholesaler.DELETE("/items/:id", wholesalerHandler.DeleteItem)

			wholesaler.GET("/orders", wholesalerHandler.ListOrders)
			wholesaler.GET("/orders/:id", wholesalerHandler.GetOrder)

			wholesaler.GET("/conversations", wholesalerHandler.ListConversations)
			wholesaler.GET("/conversations/:id/messages", wholesalerHandler.ListMessages)
			wholesaler.POST("/conversations/:id/messages", wholesalerHandler.SendMessage)

			wholesaler.POST("/upload", wholesalerHandler.Upload)
		}

		// Moderation panel.
		admin := apiV1.Group("/admin")
		{
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIP), adminHandler.Login)

			authorized := admin.Use(
				AdminJWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo),
				AdminRBACMiddleware(c.AuthzService),
			)
			{
				authorized.GET("/me", adminHandler.GetProfile)
				authorized.PUT("/password", adminHandler.ChangePassword)

				authorized.GET("/dashboard", adminHandler.GetDashboard)
				authorized.GET("/dashboard/recent-orders", adminHandler.GetRecentOrders)

				authorized.GET("/categories", adminHandler.ListCategories)
				authorized.POST("/categories", adminHandler.CreateCategory)
				authorized.PUT("/categories/:id", adminHandler.UpdateCategory)
				authorized.DELETE("/categories/:id", adminHandler.DeleteCategory)

				authorized.GET("/products", adminHandler.ListProducts)
				authorized.GET("/products/:id", adminHandler.GetProduct)
				authorized.POST("/products/:id/approve", adminHandler.ApproveProduct)
				authorized.POST("/products/:id/reject", adminHandler.RejectProduct)
				authorized.DELETE("/products/:id", adminHandler.DeleteProduct)

				authorized.GET("/items/:id", adminHandler.GetItem)
				authorized.PATCH("/items/:id/stock", adminHandler.SetItemStock)

				authorized.GET("/orders", adminHandler.ListOrders)
				authorized.GET("/orders/:id", adminHandler.GetOrder)
				authorized.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)

				authorized.GET("/users", adminHandler.ListUsers)
				authorized.GET("/users/:id", adminHandler.GetUser)
				authorized.POST("/users/wholesalers", adminHandler.ProvisionWholesaler)
				authorized.PATCH("/users/:id/status", adminHandler.SetUserStatus)

				authorized.GET("/suspensions", adminHandler.ListSuspensions)
				authorized.POST("/suspensions", adminHandler.SuspendUser)
				authorized.DELETE("/suspensions/:id", adminHandler.LiftSuspension)

				authorized.GET("/tickets", adminHandler.ListTickets)
				authorized.GET("/tickets/:id", adminHandler.GetTicket)
				authorized.POST("/tickets/:id/replies", adminHandler.ReplyTicket)
				authorized.POST("/tickets/:id/resolve", adminHandler.ResolveTicket)
				authorized.POST("/tickets/:id/reopen", adminHandler.ReopenTicket)

				authorized.GET("/settings", adminHandler.GetSettings)
				authorized.PUT("/settings", adminHandler.UpdateSettings)
				authorized.POST("/settings/email/test", adminHandler.SendTestEmail)

				authorized.GET("/staff", adminHandler.ListStaff)
				authorized.POST("/staff", adminHandler.CreateStaff)
				authorized.PUT("/staff/:id", adminHandler.UpdateStaff)
				authorized.DELETE("/staff/:id", adminHandler.DeleteStaff)
				authorized.GET("/staff/:id/permissions", adminHandler.GetStaffPermissions)

				authorized.GET("/roles", adminHandler.ListRoles)
				authorized.POST("/roles", adminHandler.CreateRole)
				authorized.DELETE("/roles/:role", adminHandler.DeleteRole)
				authorized.POST("/roles/:role/policies", adminHandler.GrantRolePolicy)
				authorized.DELETE("/roles/:role/policies", adminHandler.RevokeRolePolicy)
				authorized.GET("/permissions/catalog", func(ctx *gin.Context) {
					response.Success(ctx, buildAdminPermissionCatalog(r))
				})

				authorized.POST("/upload", adminHandler.Upload)
			}
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

type adminPermissionCatalogItem struct {
	Module     string `json:"module"`
	Method     string `json:"method"`
	Object     string `json:"object"`
	Permission string `json:"permission"`
}

// buildAdminPermissionCatalog lists every guarded panel route so the
// role editor can offer real permissions instead of free text.
func buildAdminPermissionCatalog(engine *gin.Engine) []adminPermissionCatalogItem {
	if engine == nil {
		return []adminPermissionCatalogItem{}
	}

	routes := engine.Routes()
	seen := make(map[string]struct{}, len(routes))
	items := make([]adminPermissionCatalogItem, 0, len(routes))

	for _, item := range routes {
		method := strings.ToUpper(strings.TrimSpace(item.Method))
		if method == "" || method == "OPTIONS" || method == "HEAD" {
			continue
		}
		if !strings.HasPrefix(item.Path, "/api/v1/admin/") {
			continue
		}
		if item.Path == "/api/v1/admin/login" {
			continue
		}
		object := authz.NormalizeObject(item.Path)
		permission := method + ":" + object
		if _, exists := seen[permission]; exists {
			continue
		}
		seen[permission] = struct{}{}
		items = append(items, adminPermissionCatalogItem{
			Module:     deriveAdminPermissionModule(object),
			Method:     method,
			Object:     object,
			Permission: permission,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Module == items[j].Module {
			if items[i].Object == items[j].Object {
				return items[i].Method < items[j].Method
			}
			return items[i].Object < items[j].Object
		}
		return items[i].Module < items[j].Module
	})

	return items
}

func deriveAdminPermissionModule(object string) string {
	normalized := strings.TrimPrefix(strings.TrimSpace(object), "/")
	if normalized == "" {
		return "system"
	}
	segments := strings.Split(normalized, "/")
	if len(segments) <= 1 {
		return segments[0]
	}
	if segments[0] != "admin" {
		return segments[0]
	}
	return segments[1]
}
