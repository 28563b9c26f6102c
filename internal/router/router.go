package router

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	mem "barkly-backend/internal/adapters/storage/memory"
	pg "barkly-backend/internal/adapters/storage/postgres"
	"barkly-backend/internal/domain/customevents"
	"barkly-backend/internal/domain/dogs"
	"barkly-backend/internal/domain/events"
	"barkly-backend/internal/domain/medicineevents"
	"barkly-backend/internal/domain/medicines"
	"barkly-backend/internal/domain/uploads"
	"barkly-backend/internal/domain/users"
	"barkly-backend/internal/domain/vets"
	"barkly-backend/internal/domain/vetvisits"
	"barkly-backend/internal/middleware"
	"barkly-backend/internal/platform/httpjson"
	"barkly-backend/internal/platform/logger"
	"barkly-backend/internal/ports/auth"
	"barkly-backend/internal/ports/storage"
)

type Options struct {
	AuthVerifier auth.Verifier         // puede ser nil (modo dev)
	Identity     auth.IdentityProvider // nil deshabilita /auth/google
	Issuer       auth.Issuer

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Log            logger.Logger
	AllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Debug-User-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	if opts.Log != nil {
		r.Use(middleware.RequestLogger(opts.Log))
	}
	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpjson.Write(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		httpjson.Write(w, http.StatusOK, map[string]string{"message": "Welcome to the Barkly API"})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		txm storage.TxManager

		userRepo          users.Repository
		dogRepo           dogs.Repository
		vetRepo           vets.Repository
		medicineRepo      medicines.Repository
		customEventRepo   customevents.Repository
		eventRepo         events.Repository
		vetVisitRepo      vetvisits.Repository
		medicineEventRepo medicineevents.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		store := pg.NewStore(db)
		txm = store
		userRepo = store.Users()
		dogRepo = store.Dogs()
		vetRepo = store.Vets()
		medicineRepo = store.Medicines()
		customEventRepo = store.CustomEvents()
		eventRepo = store.Events()
		vetVisitRepo = store.VetVisits()
		medicineEventRepo = store.MedicineEvents()
	} else {
		store := mem.NewStore()
		txm = store
		userRepo = store.Users()
		dogRepo = store.Dogs()
		vetRepo = store.Vets()
		medicineRepo = store.Medicines()
		customEventRepo = store.CustomEvents()
		eventRepo = store.Events()
		vetVisitRepo = store.VetVisits()
		medicineEventRepo = store.MedicineEvents()
	}

	// Services por módulo
	usersSvc := users.NewService(userRepo, txm)
	dogsSvc := dogs.NewService(dogRepo, txm)
	vetsSvc := vets.NewService(vetRepo, txm)
	medicinesSvc := medicines.NewService(medicineRepo, txm)
	customEventsSvc := customevents.NewService(customEventRepo, txm)
	eventsSvc := events.NewService(eventRepo, dogsSvc, customEventsSvc, txm)
	vetVisitsSvc := vetvisits.NewService(vetVisitRepo, dogsSvc, vetsSvc, txm)
	medicineEventsSvc := medicineevents.NewService(medicineEventRepo, dogsSvc, medicinesSvc, txm)
	uploadValidator := uploads.NewValidator()

	// Rutas por módulo, bajo /api
	r.Route("/api", func(api chi.Router) {
		users.RegisterRoutes(api, usersSvc, opts.Identity, opts.Issuer)
		dogs.RegisterRoutes(api, dogsSvc)
		vets.RegisterRoutes(api, vetsSvc)
		medicines.RegisterRoutes(api, medicinesSvc)
		customevents.RegisterRoutes(api, customEventsSvc)
		events.RegisterRoutes(api, eventsSvc)
		vetvisits.RegisterRoutes(api, vetVisitsSvc)
		medicineevents.RegisterRoutes(api, medicineEventsSvc)
		uploads.RegisterRoutes(api, uploadValidator)
	})

	return r
}
