// The seeder creates a demo workspace with an admin member and a populated
// knowledge base for local development.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/clientforge/agencymail-backend/internal/config"
	"github.com/clientforge/agencymail-backend/internal/db"
	"github.com/clientforge/agencymail-backend/internal/model"
	"github.com/clientforge/agencymail-backend/internal/repository"
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

	workspaceRepo := &repository.WorkspaceRepository{DB: conn}
	knowledgeRepo := &repository.KnowledgeBaseRepository{DB: conn}

	workspace := &model.Workspace{
		Name:        "Acme Pottery",
		Description: "Demo client workspace",
		Industry:    "Retail",
		CreatedBy:   1,
	}
	if err := workspaceRepo.Create(workspace); err != nil {
		log.Fatal("failed to create workspace:", err)
	}

	if err := workspaceRepo.AddMember(&model.WorkspaceMember{
		UserID:      1,
		WorkspaceID: workspace.ID,
		Role:        model.RoleAdmin,
	}); err != nil {
		log.Fatal("failed to add workspace member:", err)
	}

	kb := &model.KnowledgeBase{
		WorkspaceID:     workspace.ID,
		ToneOfVoice:     "Warm and artisanal",
		Products:        "Handmade pottery, ceramic tableware",
		Services:        "Custom commissions, pottery workshops",
		BusinessContext: "Sells handmade pottery from a small studio",
		TargetAudience:  "Home decor enthusiasts aged 25-55",
		CampaignGoals:   "Grow repeat purchases from the newsletter list",
	}
	if err := knowledgeRepo.Create(kb); err != nil {
		log.Fatal("failed to create knowledge base:", err)
	}

	log.Printf("seeded workspace %d with knowledge base %d\n", workspace.ID, kb.ID)
}
