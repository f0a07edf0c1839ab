package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nexora-labs/website-backend/handlers"
	"github.com/nexora-labs/website-backend/middleware"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	Registration *handlers.RegistrationHandler
	Career       *handlers.CareerHandler
	Contact      *handlers.ContactHandler
	Inquiry      *handlers.InquiryHandler
	MOU          *handlers.MOUHandler
	Gallery      *handlers.GalleryHandler
	Project      *handlers.ProjectHandler
	Community    *handlers.CommunityHandler
	Admin        *handlers.AdminHandler
}

func SetupRoutes(router *chi.Mux, h Handlers, jwtSecret string, corsOrigins []string) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public form submissions.
	router.Post("/teams/register", h.Registration.RegisterTeam)
	router.Post("/hackathon/register", h.Registration.RegisterHackathonTeam)
	router.Post("/careers/apply", h.Career.SubmitApplication)
	router.Post("/contact", h.Contact.SubmitMessage)
	router.Post("/cpu-inquiries", h.Inquiry.SubmitInquiry)
	router.Get("/cpu-inquiries/{inquiryID}", h.Inquiry.GetInquiry)

	// Public catalog.
	router.Get("/mous", h.MOU.ListMOUs)
	router.Get("/gallery", h.Gallery.ListImages)
	router.Get("/projects", h.Project.ListProjects)
	router.Get("/projects/{projectID}", h.Project.GetProject)
	router.Get("/community", h.Community.ListItems)

	router.Route("/admin", func(r chi.Router) {
		r.Post("/login", h.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))

			r.Get("/dashboard", h.Admin.DashboardStats)
			r.Get("/teams", h.Admin.ListTeams)
			r.Get("/teams/{teamID}", h.Registration.GetTeam)
			r.Get("/hackathon-teams", h.Admin.ListHackathonTeams)
			r.Get("/hackathon-teams/{teamID}", h.Registration.GetHackathonTeam)
			r.Get("/careers", h.Career.ListApplications)
			r.Get("/contacts", h.Contact.ListMessages)
			r.Get("/cpu-inquiries", h.Inquiry.ListInquiries)

			r.Post("/mous", h.MOU.CreateMOU)
			r.Put("/mous/{mouID}", h.MOU.UpdateMOU)
			r.Delete("/mous/{mouID}", h.MOU.DeleteMOU)

			r.Post("/gallery", h.Gallery.AddImage)
			r.Delete("/gallery/{imageID}", h.Gallery.DeleteImage)

			r.Post("/projects", h.Project.CreateProject)
			r.Put("/projects/{projectID}", h.Project.UpdateProject)
			r.Delete("/projects/{projectID}", h.Project.DeleteProject)

			r.Post("/community", h.Community.AddItem)
			r.Delete("/community/{itemID}", h.Community.DeleteItem)
		})
	})
}
