package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
)

type Router struct {
	productHandler  *ProductHandler
	categoryHandler *CategoryHandler
	colorHandler    *ColorHandler
	authHandler     *AuthHandler
	tokens          usecase.TokenManager
	logger          logger.Logger
}

func NewRouter(
	productUsecase usecase.ProductUC,
	categoryUsecase usecase.CategoryUC,
	colorUsecase usecase.ColorUC,
	authUsecase usecase.AuthUC,
	tokens usecase.TokenManager,
	logger logger.Logger,
) *Router {
	return &Router{
		productHandler:  NewProductHandler(productUsecase, logger),
		categoryHandler: NewCategoryHandler(categoryUsecase, logger),
		colorHandler:    NewColorHandler(colorUsecase, logger),
		authHandler:     NewAuthHandler(authUsecase, logger),
		tokens:          tokens,
		logger:          logger,
	}
}

func (rt *Router) Init() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", rt.authHandler.register)
			r.Post("/login", rt.authHandler.login)

			r.Group(func(r chi.Router) {
				r.Use(Auth(rt.tokens, rt.logger))

				r.Get("/profile", rt.authHandler.getProfile)

				r.With(RequireRole(domain.RoleAdmin)).Get("/users", rt.authHandler.getUsers)
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Use(Auth(rt.tokens, rt.logger))

			r.Get("/", rt.categoryHandler.getCategories)
			r.Get("/{id}", rt.categoryHandler.getCategory)
			r.Get("/{id}/products", rt.categoryHandler.getCategoryProducts)

			r.Group(func(r chi.Router) {
				r.Use(RequireRole(domain.RoleAdmin))

				r.Post("/", rt.categoryHandler.createCategory)
				r.Put("/{id}", rt.categoryHandler.updateCategory)
				r.Delete("/{id}", rt.categoryHandler.deleteCategory)
			})
		})

		r.Route("/colors", func(r chi.Router) {
			r.Use(Auth(rt.tokens, rt.logger))

			r.Get("/", rt.colorHandler.getColors)
			r.Get("/{id}", rt.colorHandler.getColor)

			r.Group(func(r chi.Router) {
				r.Use(RequireRole(domain.RoleAdmin))

				r.Post("/", rt.colorHandler.createColor)
				r.Put("/{id}", rt.colorHandler.updateColor)
				r.Delete("/{id}", rt.colorHandler.deleteColor)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Use(Auth(rt.tokens, rt.logger))

			r.Get("/", rt.productHandler.getProducts)
			r.Get("/paginated", rt.productHandler.getPaginatedProducts)
			r.Get("/{id}", rt.productHandler.getProduct)

			r.Group(func(r chi.Router) {
				r.Use(RequireRole(domain.RoleAdmin))

				r.Post("/", rt.productHandler.createProduct)
				r.Put("/{id}", rt.productHandler.updateProduct)
				r.Delete("/{id}", rt.productHandler.deleteProduct)
			})
		})
	})

	return r
}
