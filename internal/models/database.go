package models

import (
	"fmt"

	"github.com/draftwise/draftwise/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(cfg *config.DatabaseConfig) error {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	DB = db
	return nil
}

func AutoMigrate() error {
	return DB.AutoMigrate(
		&Category{},
		&EmailTemplate{},
	)
}

func GetDB() *gorm.DB {
	return DB
}

// SeedDefaultData creates starter templates on an empty database.
func SeedDefaultData() error {
	var templateCount int64
	DB.Model(&EmailTemplate{}).Count(&templateCount)
	if templateCount > 0 {
		return nil
	}

	starters := []EmailTemplate{
		{
			Name:    "Meeting Follow-up",
			Subject: "Following up on our meeting",
			Content: `Hi {name},

Thank you for taking the time to meet today. I wanted to follow up on the points we discussed and confirm the next steps:

1. {action_item_1}
2. {action_item_2}

Please let me know if I missed anything. Looking forward to moving ahead.

Best regards,
{sender}`,
			Tags:     "follow-up,meeting,work",
			IsPublic: true,
		},
		{
			Name:    "Thank You Note",
			Subject: "Thank you!",
			Content: `Hi {name},

I just wanted to say thank you for {reason}. It made a real difference and I truly appreciate it.

Warm regards,
{sender}`,
			Tags:     "thanks,personal",
			IsPublic: true,
		},
	}

	for _, t := range starters {
		if err := DB.Create(&t).Error; err != nil {
			return err
		}
	}

	return nil
}
