// @title Protocol API
// @description API for the personal workout-tracking app "Protocol"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/granger49/Protocol/internal/api"
	"github.com/granger49/Protocol/internal/repository"
	"github.com/granger49/Protocol/internal/service"
	"github.com/granger49/Protocol/pkg/cleanup"
	"github.com/granger49/Protocol/pkg/config"
	jwtservice "github.com/granger49/Protocol/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	userService := service.NewUserService(repository.NewUsersRepo(&dbCfg))
	templateService := service.NewTemplateService(repository.NewTemplatesRepo(&dbCfg))
	workoutService := service.NewWorkoutService(repository.NewWorkoutsRepo(&dbCfg), repository.NewPushesRepo(&dbCfg))
	libraryService := service.NewLibraryService(repository.NewLibraryRepo(&dbCfg))
	recordService := service.NewRecordService(repository.NewRecordsRepo(&dbCfg))
	preferencesService := service.NewPreferencesService(repository.NewPreferencesRepo(&dbCfg))
	serv := api.New(&api.ServicesList{
		UserService:        userService,
		TemplateService:    templateService,
		WorkoutService:     workoutService,
		LibraryService:     libraryService,
		RecordService:      recordService,
		PreferencesService: preferencesService,
		JwtService:         jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
