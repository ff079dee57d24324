package database

import (
	"business_health_backend/internal/config"
	"business_health_backend/internal/model"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.AssessmentRecord{},
		&model.ChatSession{},
		&model.ChatMessage{},
		&model.PaymentRequest{},
		&model.Subscription{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Bootstrap admin account so payment review works on a fresh install.
	// Password must be changed after first login.
	var adminCount int64
	db.Model(&model.User{}).Where("role = ?", model.Admin).Count(&adminCount)
	if adminCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		admin := &model.User{
			Name:     "Administrator",
			Phone:    "0000000000",
			Password: string(hashed),
			Role:     model.Admin,
			Language: "en",
		}
		db.Create(admin)
	}

	return db, nil
}
