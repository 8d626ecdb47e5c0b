package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/clientforge/agencymail-backend/internal/config"
	"github.com/clientforge/agencymail-backend/internal/controller"
	"github.com/clientforge/agencymail-backend/internal/db"
	"github.com/clientforge/agencymail-backend/internal/llm"
	"github.com/clientforge/agencymail-backend/internal/queue"
	"github.com/clientforge/agencymail-backend/internal/repository"
	"github.com/clientforge/agencymail-backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on OS environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}

	conn, err := db.Open(cfg.DB)
	if err != nil {
		log.Fatal("failed to connect to DB:", err)
	}
	defer conn.Close()

	if cfg.DB.RunMigrations {
		if err := db.Migrate(cfg.DB.DSN()); err != nil {
			log.Fatal("failed to run migrations:", err)
		}
		log.Println("migrations applied")
	}

	workspaceRepo := &repository.WorkspaceRepository{DB: conn}
	knowledgeRepo := &repository.KnowledgeBaseRepository{DB: conn}
	campaignRepo := &repository.CampaignRepository{DB: conn}
	emailRepo := &repository.EmailRepository{DB: conn}
	scheduleRepo := &repository.ScheduledEmailRepository{DB: conn}
	activityRepo := &repository.ActivityLogRepository{DB: conn}

	activityService := &service.ActivityService{
		WorkspaceRepo: workspaceRepo,
		ActivityRepo:  activityRepo,
	}

	// Prefer RabbitMQ so the worker records events; without a broker the
	// in-process queue keeps the audit trail alive.
	var q queue.Queue
	rabbit, err := queue.NewRabbitQueue(cfg.AMQP.URL)
	if err != nil {
		log.Println("RabbitMQ unavailable, recording campaign events in process:", err)
		memory := queue.NewInMemoryQueue()
		if err := memory.Subscribe(queue.EventsTopic, func(payload any) error {
			event, ok := payload.(queue.Event)
			if !ok {
				return fmt.Errorf("unexpected event payload type %T", payload)
			}
			return activityService.Record(event)
		}); err != nil {
			log.Fatal("failed to subscribe to in-memory queue:", err)
		}
		q = memory
	} else {
		defer rabbit.Close()
		q = rabbit
	}

	generator := service.NewEmailGenerator(llm.NewClient(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.BaseURL))

	campaignService := &service.CampaignService{
		WorkspaceRepo: workspaceRepo,
		KnowledgeRepo: knowledgeRepo,
		CampaignRepo:  campaignRepo,
		EmailRepo:     emailRepo,
		ScheduleRepo:  scheduleRepo,
		Generator:     generator,
		Queue:         q,
	}
	emailService := &service.EmailService{
		WorkspaceRepo: workspaceRepo,
		KnowledgeRepo: knowledgeRepo,
		CampaignRepo:  campaignRepo,
		EmailRepo:     emailRepo,
		Generator:     generator,
		Queue:         q,
	}
	knowledgeBaseService := &service.KnowledgeBaseService{
		WorkspaceRepo: workspaceRepo,
		KnowledgeRepo: knowledgeRepo,
	}

	campaignController := &controller.CampaignController{CampaignService: campaignService}
	emailController := &controller.EmailController{EmailService: emailService}
	knowledgeBaseController := &controller.KnowledgeBaseController{KnowledgeBaseService: knowledgeBaseService}
	activityController := &controller.ActivityController{ActivityService: activityService}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(controller.RequireUser)

		r.Route("/workspaces/{workspaceID}", func(r chi.Router) {
			r.Get("/knowledge-base", knowledgeBaseController.GetKnowledgeBase)
			r.Put("/knowledge-base", knowledgeBaseController.UpdateKnowledgeBase)
			r.Get("/campaigns", campaignController.ListCampaigns)
			r.Post("/campaigns", campaignController.CreateCampaign)
			r.Get("/activity", activityController.ListActivity)
		})

		r.Get("/campaigns/{id}", campaignController.GetCampaignDetail)
		r.Patch("/campaigns/{id}/status", campaignController.UpdateStatus)

		r.Patch("/emails/{id}", emailController.UpdateEmail)
		r.Post("/emails/{id}/regenerate", emailController.RegenerateEmail)
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	log.Println("server running on", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
