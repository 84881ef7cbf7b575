package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/granger49/Protocol/internal/service"
)

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	templateService    service.TemplateServiceI
	workoutService     service.WorkoutServiceI
	libraryService     service.LibraryServiceI
	recordService      service.RecordServiceI
	preferencesService service.PreferencesServiceI
	jwtService         JWTServiceI
}

type ServicesList struct {
	UserService        service.UserServiceI
	TemplateService    service.TemplateServiceI
	WorkoutService     service.WorkoutServiceI
	LibraryService     service.LibraryServiceI
	RecordService      service.RecordServiceI
	PreferencesService service.PreferencesServiceI
	JwtService         JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		templateService:    servicesOptions.TemplateService,
		workoutService:     servicesOptions.WorkoutService,
		libraryService:     servicesOptions.LibraryService,
		recordService:      servicesOptions.RecordService,
		preferencesService: servicesOptions.PreferencesService,
		jwtService:         servicesOptions.JwtService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/templates", s.GetTemplates)
			r.Post("/templates", s.CreateTemplate)
			r.Get("/templates/active", s.GetActiveTemplate)
			r.Put("/templates/{id}/activate", s.ActivateTemplate)
			r.Delete("/templates/{id}", s.DeleteTemplate)
			r.Get("/workouts/{date}", s.GetWorkout)
			r.Post("/workouts", s.SubmitWorkout)
			r.Get("/exercises/library", s.GetLibrary)
			r.Post("/exercises/library", s.CreateLibraryEntry)
			r.Put("/exercises/library/{id}", s.UpdateLibraryEntry)
			r.Delete("/exercises/library/{id}", s.DeleteLibraryEntry)
			r.Post("/exercises/push", s.PushExercise)
			r.Get("/exercises/pushed/{date}", s.GetPushedExercises)
			r.Get("/prs", s.GetRecords)
			r.Post("/prs", s.UpsertRecord)
			r.Get("/preferences", s.GetPreferences)
			r.Put("/preferences", s.UpdatePreferences)
		})
	})
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.mx)
}

// Handler exposes the configured mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}
